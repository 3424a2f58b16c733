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

package claim

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database/models"
	"gorm.io/gorm"
)

type HTTPController struct {
	claimService *service
}

func NewHTTPController(claimService *service) *HTTPController {
	return &HTTPController{
		claimService: claimService,
	}
}

func (ctrl *HTTPController) Create(c core.Context) error {
	// identity comes from the session only - any user id in the body is
	// discarded by the DTO
	userID, ok := core.GetSessionUserID(c)
	if !ok {
		return echo.NewHTTPError(401, "you need to be signed in")
	}

	var req SubmitClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	claim, err := ctrl.claimService.SubmitClaim(userID, req, core.GetClientIP(c))
	if err != nil {
		return claimError(err)
	}

	return c.JSON(201, claim)
}

func (ctrl *HTTPController) Resolve(c core.Context) error {
	adminID, ok := core.GetSessionUserID(c)
	if !ok {
		return echo.NewHTTPError(401, "you need to be signed in")
	}

	claimID, err := uuid.Parse(core.SanitizeParam(c.Param("claimID")))
	if err != nil {
		return echo.NewHTTPError(400, "invalid claim id")
	}

	var req ResolveClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	claim, err := ctrl.claimService.ResolveClaim(adminID, claimID, models.ClaimStatus(req.Status), req.Notes)
	if err != nil {
		return claimError(err)
	}

	return c.JSON(200, claim)
}

func (ctrl *HTTPController) List(c core.Context) error {
	status := models.ClaimStatus(c.QueryParam("status"))
	if status == "" {
		status = models.ClaimStatusPending
	}

	claims, err := ctrl.claimService.ListByStatus(status)
	if err != nil {
		return echo.NewHTTPError(500, "could not list claims").WithInternal(err)
	}

	return c.JSON(200, claims)
}

func claimError(err error) error {
	switch {
	case errors.Is(err, ErrMissingEvidence),
		errors.Is(err, ErrAlreadyPendingForUser),
		errors.Is(err, ErrAlreadyPendingForEvent),
		errors.Is(err, ErrAlreadyProcessed):
		return echo.NewHTTPError(400, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(404, "claim not found")
	default:
		return echo.NewHTTPError(500, "something went wrong").WithInternal(err)
	}
}
