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

package audit

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/minimaply/minimaply/internal/core"
)

type HTTPController struct {
	auditLogRepository core.AuditLogRepository
}

func NewHTTPController(auditLogRepository core.AuditLogRepository) *HTTPController {
	return &HTTPController{
		auditLogRepository: auditLogRepository,
	}
}

func (ctrl *HTTPController) List(c core.Context) error {
	limit := 50
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	logs, err := ctrl.auditLogRepository.ListRecent(limit)
	if err != nil {
		return echo.NewHTTPError(500, "could not list audit logs").WithInternal(err)
	}

	return c.JSON(200, logs)
}
