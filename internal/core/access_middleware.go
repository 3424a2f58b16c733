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

package core

import (
	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/accesscontrol"
)

// SessionRequiredMiddleware rejects requests that carry no valid session.
func SessionRequiredMiddleware() MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c Context) error {
			if _, ok := GetSessionUserID(c); !ok {
				return echo.NewHTTPError(401, "you need to be signed in")
			}
			return next(c)
		}
	}
}

// AccessControlMiddleware gates an endpoint on a role from the profiles
// table. Unauthenticated callers get a 401, authenticated callers without
// the role a 403.
func AccessControlMiddleware(authority accesscontrol.RoleAuthority, role string) MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c Context) error {
			userID, ok := GetSessionUserID(c)
			if !ok {
				return echo.NewHTTPError(401, "you need to be signed in")
			}

			// check if the user has the required role
			if !authority.HasRole(userID.String(), role) {
				return echo.NewHTTPError(403, "forbidden")
			}

			return next(c)
		}
	}
}
