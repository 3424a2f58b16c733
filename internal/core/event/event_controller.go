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

package event

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/core"
	"gorm.io/gorm"
)

// read-only surface over the event listing. All writes to events happen
// as side effects of the claim/report workflows.
type HTTPController struct {
	eventRepository core.EventRepository
}

func NewHTTPController(eventRepository core.EventRepository) *HTTPController {
	return &HTTPController{
		eventRepository: eventRepository,
	}
}

func (ctrl *HTTPController) List(c core.Context) error {
	events, err := ctrl.eventRepository.ListActive(filterFromQuery(c))
	if err != nil {
		return echo.NewHTTPError(500, "could not list events").WithInternal(err)
	}

	return c.JSON(200, events)
}

func (ctrl *HTTPController) Read(c core.Context) error {
	slug := core.SanitizeParam(c.Param("slug"))
	if slug == "" {
		return echo.NewHTTPError(400, "invalid event slug")
	}

	event, err := ctrl.eventRepository.ReadBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "event not found")
		}
		return echo.NewHTTPError(500, "could not read event").WithInternal(err)
	}

	return c.JSON(200, event)
}

func filterFromQuery(c core.Context) core.EventFilter {
	filter := core.EventFilter{
		CitySlug:     c.QueryParam("city"),
		CategorySlug: c.QueryParam("category"),
		Date:         c.QueryParam("date"),
		Search:       c.QueryParam("search"),
	}

	if minAge, err := strconv.Atoi(c.QueryParam("minAge")); err == nil {
		filter.MinAge = &minAge
	}
	if maxAge, err := strconv.Atoi(c.QueryParam("maxAge")); err == nil {
		filter.MaxAge = &maxAge
	}
	if isFree, err := strconv.ParseBool(c.QueryParam("isFree")); err == nil {
		filter.IsFree = &isFree
	}

	return filter
}
