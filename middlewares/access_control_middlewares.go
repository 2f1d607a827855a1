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
	"log/slog"

	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/labstack/echo/v4"
)

// ProjectAccessControlFactory builds a middleware requiring the session user
// to hold at least the given role in the loaded project. Missing membership
// answers 404, not 403 - project ids of foreign projects stay unguessable.
func ProjectAccessControlFactory(memberRepository shared.MemberRepository) func(requiredRole models.TeamRole) shared.MiddlewareFunc {
	return func(requiredRole models.TeamRole) shared.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				userID, err := shared.GetSessionUserID(ctx)
				if err != nil {
					return echo.NewHTTPError(401, "no authenticated session").WithInternal(err)
				}

				project := shared.GetProject(ctx)
				membership, err := memberRepository.GetByUserAndProject(userID, project.ID)
				if err != nil {
					slog.Warn("access denied", "user", userID, "project", project.ID)
					return echo.NewHTTPError(404, "could not find project")
				}

				if requiredRole == models.TeamRoleAdmin && membership.Role != models.TeamRoleAdmin {
					return echo.NewHTTPError(403, "admin role required")
				}

				shared.SetMembership(ctx, membership)
				return next(ctx)
			}
		}
	}
}
