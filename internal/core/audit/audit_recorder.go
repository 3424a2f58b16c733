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
	"log/slog"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
)

type recorder struct {
	auditLogRepository core.AuditLogRepository
}

func NewRecorder(auditLogRepository core.AuditLogRepository) *recorder {
	return &recorder{
		auditLogRepository: auditLogRepository,
	}
}

// Record appends an audit entry. It is best effort on purpose: the
// privileged state transition has already been committed when Record runs,
// so a failing audit write is logged but never surfaced to the caller.
func (r *recorder) Record(adminID uuid.UUID, action models.AuditAction, targetType string, targetID string, details database.JSONB) {
	entry := models.AuditLog{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
	}

	if err := r.auditLogRepository.Create(nil, &entry); err != nil {
		slog.Error("could not write audit log entry",
			"action", action, "targetType", targetType, "targetID", targetID, "err", err)
	}
}
