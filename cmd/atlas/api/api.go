// Copyright (C) 2025 the op-atlas authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Pranay-Bhilare/op-atlas/middlewares"
	"github.com/Pranay-Bhilare/op-atlas/utils"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var StartedAt = time.Now()

type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo instance with all base middlewares registered and
// hooks start/stop into the fx lifecycle.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()

	listen := utils.OrDefault(utils.EmptyThenNil(os.Getenv("LISTEN_ADDR")), ":8080")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "addr", listen)
				if err := e.Start(listen); err != nil && err != http.ErrServerClosed {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
