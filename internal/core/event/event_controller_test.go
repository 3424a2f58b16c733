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

package event_test

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/core/event"
	"github.com/minimaply/minimaply/internal/database/models"
	"github.com/minimaply/minimaply/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func setupEventController(events []models.Event, target string) (*event.HTTPController, echo.Context, *httptest.ResponseRecorder) {
	sut := event.NewHTTPController(&testutils.EventRepositoryMock{Events: events})

	e := echo.New()
	rec := httptest.NewRecorder()

	return sut, e.NewContext(httptest.NewRequest(echo.GET, target, nil), rec), rec
}

func TestListEvents(t *testing.T) {
	events := []models.Event{
		{ID: uuid.New(), Title: "Puppet theatre", Slug: "puppet-theatre", IsActive: true},
		{ID: uuid.New(), Title: "Closed museum tour", Slug: "closed-museum-tour", IsActive: false},
	}

	sut, c, rec := setupEventController(events, "/events")

	err := sut.List(c)

	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "puppet-theatre")
	// inactive listings never show up
	assert.NotContains(t, rec.Body.String(), "closed-museum-tour")
}

func TestReadEventBySlug(t *testing.T) {
	events := []models.Event{
		{ID: uuid.New(), Title: "Puppet theatre", Slug: "puppet-theatre", IsActive: true},
	}

	sut, c, rec := setupEventController(events, "/events/puppet-theatre")
	c.SetParamNames("slug")
	c.SetParamValues("puppet-theatre")

	err := sut.Read(c)

	assert.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "Puppet theatre")
}

func TestReadUnknownEvent(t *testing.T) {
	sut, c, _ := setupEventController(nil, "/events/nope")
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	if err := sut.Read(c); assert.Error(t, err) {
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)
	}
}
