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
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Pranay-Bhilare/op-atlas/auth"
	"github.com/Pranay-Bhilare/op-atlas/database/models"
	"github.com/Pranay-Bhilare/op-atlas/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	client "github.com/ory/client-go"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, oryAPIClient shared.AdminClient, oryKratosSessionCookie string) (client.Identity, error) {
	unescaped, err := url.QueryUnescape(oryKratosSessionCookie)
	if err != nil {
		return client.Identity{}, err
	}

	return oryAPIClient.GetIdentityFromCookie(ctx, unescaped)
}

// SessionMiddleware resolves the kratos session cookie to an identity and
// keeps the local user row in sync with the identity traits. An invalid or
// missing cookie yields the NoSession sentinel - public routes still work,
// authenticated ones reject later.
func SessionMiddleware(oryAPIClient shared.AdminClient, userRepository shared.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			oryKratosSessionCookie := getCookie("ory_kratos_session", ctx.Cookies())

			if oryKratosSessionCookie == nil {
				ctx.Set("session", auth.NoSession)
				return next(ctx)
			}

			identity, err := cookieAuth(ctx.Request().Context(), oryAPIClient, oryKratosSessionCookie.String())
			if err != nil {
				// user is not authenticated - it might be that the route is
				// public, so do not fail here
				slog.Warn("could not get user ID from cookie", "err", err)
				ctx.Set("session", auth.NoSession)
				return next(ctx)
			}

			if err := syncUser(userRepository, identity); err != nil {
				return echo.NewHTTPError(500, "could not sync user").WithInternal(err)
			}

			ctx.Set("session", auth.NewSession(identity.Id))
			return next(ctx)
		}
	}
}

// syncUser upserts the local user row from the identity traits on every
// authenticated request. Identity ids double as user primary keys.
func syncUser(userRepository shared.UserRepository, identity client.Identity) error {
	userID, err := uuid.Parse(identity.Id)
	if err != nil {
		return err
	}

	user := models.User{
		Model: models.Model{ID: userID},
		Name:  identityName(identity),
	}

	existing, err := userRepository.Read(userID)
	if err == nil {
		// keep profile fields the user maintains locally
		user.FarcasterID = existing.FarcasterID
		user.Username = existing.Username
		user.ImageURL = existing.ImageURL
		user.Bio = existing.Bio
		user.CreatedAt = existing.CreatedAt
	}

	return userRepository.Save(nil, &user)
}

func identityName(identity client.Identity) string {
	traits, ok := identity.Traits.(map[string]any)
	if !ok {
		return ""
	}
	nameMap, ok := traits["name"].(map[string]any)
	if !ok {
		return ""
	}
	var name string
	if first, ok := nameMap["first"].(string); ok {
		name = first
	}
	if last, ok := nameMap["last"].(string); ok {
		if name != "" {
			name += " "
		}
		name += last
	}
	return name
}
