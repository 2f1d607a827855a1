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

package middlewares

import (
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/labstack/echo/v4"
)

// all middlewares which modify the current request context and fetch some data from the database

// ProjectMiddleware loads the project addressed by the :projectID param into
// the request context. Soft-deleted projects resolve too - the access control
// middleware decides what the caller may do with them.
func ProjectMiddleware(projectRepository shared.ProjectRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			projectID, err := shared.GetProjectID(ctx)
			if err != nil {
				return echo.NewHTTPError(400, "invalid project id").WithInternal(err)
			}

			project, err := projectRepository.Read(projectID)
			if err != nil {
				return echo.NewHTTPError(404, "could not find project").WithInternal(err)
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}

// SessionRequiredMiddleware rejects requests without an authenticated session.
func SessionRequiredMiddleware() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if _, err := shared.GetSessionUserID(ctx); err != nil {
				return echo.NewHTTPError(401, "no authenticated session").WithInternal(err)
			}
			return next(ctx)
		}
	}
}
