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
	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/database/models"
)

type SubmitReportRequest struct {
	EventID     string  `json:"eventId" validate:"required,uuid"`
	Reason      string  `json:"reason" validate:"required"`
	Description *string `json:"description"`
}

func (r SubmitReportRequest) ToModel(eventID uuid.UUID, reporterID *uuid.UUID, clientIP string) models.EventReport {
	return models.EventReport{
		EventID:     eventID,
		ReporterID:  reporterID,
		ReporterIP:  clientIP,
		Reason:      r.Reason,
		Description: r.Description,
		Status:      models.ReportStatusOpen,
	}
}

type ResolveReportRequest struct {
	Status string  `json:"status" validate:"required,oneof=reviewed dismissed action_taken resolved"`
	Notes  *string `json:"notes"`
}

// CanonicalStatus maps the request onto the canonical vocabulary. The
// older "resolved" wording is still accepted and means action_taken.
func (r ResolveReportRequest) CanonicalStatus() models.ReportStatus {
	if r.Status == "resolved" {
		return models.ReportStatusActionTaken
	}
	return models.ReportStatus(r.Status)
}
