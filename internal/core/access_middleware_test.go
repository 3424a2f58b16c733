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

package core_test

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/accesscontrol"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database/models"
	"github.com/minimaply/minimaply/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func newTestContext() echo.Context {
	e := echo.New()
	return e.NewContext(httptest.NewRequest(echo.GET, "/", nil), httptest.NewRecorder())
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.String(200, "ok")
	}
}

func TestSessionRequiredMiddleware(t *testing.T) {
	t.Run("rejects requests without a session", func(t *testing.T) {
		called := false
		c := newTestContext()

		err := core.SessionRequiredMiddleware()(okHandler(&called))(c)

		assert.False(t, called)
		if assert.Error(t, err) {
			assert.Equal(t, 401, err.(*echo.HTTPError).Code)
		}
	})

	t.Run("passes authenticated requests through", func(t *testing.T) {
		called := false
		c := newTestContext()
		c.Set("session", testutils.NewSessionMock(uuid.New().String()))

		err := core.SessionRequiredMiddleware()(okHandler(&called))(c)

		assert.NoError(t, err)
		assert.True(t, called)
	})
}

func TestAccessControlMiddleware(t *testing.T) {
	profiles := testutils.NewProfileRepositoryMock()
	adminID := uuid.New()
	familyID := uuid.New()
	profiles.Roles[adminID] = models.RoleAdmin
	profiles.Roles[familyID] = models.RoleFamily
	authority := accesscontrol.NewProfileRoleAuthority(profiles)

	sut := core.AccessControlMiddleware(authority, accesscontrol.RoleAdmin)

	t.Run("401 without a session", func(t *testing.T) {
		called := false
		c := newTestContext()

		err := sut(okHandler(&called))(c)

		assert.False(t, called)
		if assert.Error(t, err) {
			assert.Equal(t, 401, err.(*echo.HTTPError).Code)
		}
	})

	t.Run("403 without the role", func(t *testing.T) {
		called := false
		c := newTestContext()
		c.Set("session", testutils.NewSessionMock(familyID.String()))

		err := sut(okHandler(&called))(c)

		assert.False(t, called)
		if assert.Error(t, err) {
			assert.Equal(t, 403, err.(*echo.HTTPError).Code)
		}
	})

	t.Run("lets the role holder through", func(t *testing.T) {
		called := false
		c := newTestContext()
		c.Set("session", testutils.NewSessionMock(adminID.String()))

		err := sut(okHandler(&called))(c)

		assert.NoError(t, err)
		assert.True(t, called)
	})
}

func TestGetClientIP(t *testing.T) {
	t.Run("prefers the forwarded header", func(t *testing.T) {
		c := newTestContext()
		c.Request().Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		assert.Equal(t, "203.0.113.7", core.GetClientIP(c))
	})

	t.Run("falls back to the remote address", func(t *testing.T) {
		c := newTestContext()
		c.Request().RemoteAddr = "192.0.2.1:51234"

		assert.Equal(t, "192.0.2.1", core.GetClientIP(c))
	})
}
