// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ory/client-go"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, oryApiClient *client.APIClient, oryKratosSessionCookie string) (string, error) {
	// check if we have a session
	session, _, err := oryApiClient.FrontendAPI.ToSession(ctx).Cookie(oryKratosSessionCookie).Execute()
	if err != nil {
		return "", err
	}
	return session.Identity.Id, nil
}

// SessionMiddleware resolves the caller identity from the kratos session
// cookie. Requests without a valid session still pass through with
// NoSession set - public endpoints and anonymous reporting depend on that,
// the protected routes reject NoSession further down the chain.
func SessionMiddleware(oryApiClient *client.APIClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			oryKratosSessionCookie := getCookie("ory_kratos_session", c.Cookies())

			if oryKratosSessionCookie == nil {
				c.Set("session", NoSession)
				return next(c)
			}

			userID, err := cookieAuth(c.Request().Context(), oryApiClient, oryKratosSessionCookie.String())
			if err != nil {
				// user is not authenticated
				c.Set("session", NoSession)
				return next(c)
			}

			c.Set("session", NewSession(userID))

			return next(c)
		}
	}
}
