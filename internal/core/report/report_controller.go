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

package report

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database/models"
	"gorm.io/gorm"
)

type HTTPController struct {
	reportService *service
}

func NewHTTPController(reportService *service) *HTTPController {
	return &HTTPController{
		reportService: reportService,
	}
}

func (ctrl *HTTPController) Create(c core.Context) error {
	// reporting is allowed anonymously - take the identity when there is
	// one, never from the body
	var reporterID *uuid.UUID
	if userID, ok := core.GetSessionUserID(c); ok {
		reporterID = &userID
	}

	var req SubmitReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	report, err := ctrl.reportService.SubmitReport(reporterID, req, core.GetClientIP(c))
	if err != nil {
		return reportError(err)
	}

	return c.JSON(201, report)
}

func (ctrl *HTTPController) Resolve(c core.Context) error {
	adminID, ok := core.GetSessionUserID(c)
	if !ok {
		return echo.NewHTTPError(401, "you need to be signed in")
	}

	reportID, err := uuid.Parse(core.SanitizeParam(c.Param("reportID")))
	if err != nil {
		return echo.NewHTTPError(400, "invalid report id")
	}

	var req ResolveReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	report, err := ctrl.reportService.ResolveReport(adminID, reportID, req.CanonicalStatus(), req.Notes)
	if err != nil {
		return reportError(err)
	}

	return c.JSON(200, report)
}

func (ctrl *HTTPController) List(c core.Context) error {
	status := models.ReportStatus(c.QueryParam("status"))
	if status == "" {
		status = models.ReportStatusOpen
	}

	reports, err := ctrl.reportService.ListByStatus(status)
	if err != nil {
		return echo.NewHTTPError(500, "could not list reports").WithInternal(err)
	}

	return c.JSON(200, reports)
}

func reportError(err error) error {
	switch {
	case errors.Is(err, ErrRateLimited):
		return echo.NewHTTPError(429, err.Error())
	case errors.Is(err, ErrRecentlyReported),
		errors.Is(err, ErrAlreadyProcessed),
		errors.Is(err, ErrInvalidDecision):
		return echo.NewHTTPError(400, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(404, "report not found")
	default:
		return echo.NewHTTPError(500, "something went wrong").WithInternal(err)
	}
}
