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

package router

import (
	"github.com/Pranay-Bhilare/op-atlas/cmd/atlas/api"
	"github.com/Pranay-Bhilare/op-atlas/controllers"
	"github.com/Pranay-Bhilare/op-atlas/middlewares"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server,
	db shared.DB,
	pool *pgxpool.Pool,
	oryAdmin shared.AdminClient,
	userRepository shared.UserRepository,
	userController *controllers.UserController,
	roundController *controllers.RoundController,
) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			// set the ory admin client to the context
			shared.SetAuthAdminClient(ctx, oryAdmin)
			return next(ctx)
		}
	})

	apiV1Router.Use(middlewares.SessionMiddleware(oryAdmin, userRepository))

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		// Check database connectivity
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.Ping(); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		status := map[string]any{"status": "healthy"}
		if pool != nil {
			stats := pool.Stat()
			status["pool"] = map[string]int{
				"total":    int(stats.TotalConns()),
				"idle":     int(stats.IdleConns()),
				"acquired": int(stats.AcquiredConns()),
				"max":      int(stats.MaxConns()),
			}
		}
		return ctx.JSON(200, status)
	})

	apiV1Router.GET("/whoami/", userController.Whoami)

	apiV1Router.GET("/rounds/", roundController.List)
	apiV1Router.GET("/rounds/:roundID/", roundController.Read)

	return APIV1Router{Group: apiV1Router}
}
