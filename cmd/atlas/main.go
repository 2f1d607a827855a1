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

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/Pranay-Bhilare/op-atlas/cmd/atlas/api"
	"github.com/Pranay-Bhilare/op-atlas/controllers"
	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/Pranay-Bhilare/op-atlas/database/repositories"
	"github.com/Pranay-Bhilare/op-atlas/router"
	"github.com/Pranay-Bhilare/op-atlas/services"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

//	@title			op-atlas API
//	@version		v1
//	@description	project and retro funding API

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	disableAutoMigrate := os.Getenv("DISABLE_AUTOMIGRATE")
	if disableAutoMigrate != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(pool),
		fx.Supply(db),
		fx.Provide(api.NewServer),
		api.AuthModule,
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(apiV1Router router.APIV1Router) {}),
		fx.Invoke(func(projectRouter router.ProjectRouter) {}),
		fx.Invoke(func(dashboardRouter router.DashboardRouter) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		AttachStacktrace: true,

		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("failed to init sentry", "err", err)
	}
}
