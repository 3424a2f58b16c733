// Copyright (C) 2025 timbastin
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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
)

type ClaimRepository interface {
	Create(tx DB, claim *models.ProviderClaim) error
	ReadWithEvent(id uuid.UUID) (models.ProviderClaim, error)
	Save(tx DB, claim *models.ProviderClaim) error
	ExistsPendingForEvent(eventID uuid.UUID) (bool, error)
	ExistsPendingForUser(eventID uuid.UUID, userID uuid.UUID) (bool, error)
	ListByStatus(status models.ClaimStatus) ([]models.ProviderClaim, error)
}

type ReportRepository interface {
	Create(tx DB, report *models.EventReport) error
	ReadWithEvent(id uuid.UUID) (models.EventReport, error)
	Save(tx DB, report *models.EventReport) error
	ExistsRecentFromIP(eventID uuid.UUID, reporterIP string, since time.Time) (bool, error)
	CountOpenForEvent(eventID uuid.UUID) (int64, error)
	ListByStatus(status models.ReportStatus) ([]models.EventReport, error)
}

// EventFilter narrows the public event listing. Zero values mean "no filter".
type EventFilter struct {
	CitySlug     string
	CategorySlug string
	MinAge       *int
	MaxAge       *int
	IsFree       *bool
	Date         string // today | weekend | week
	Search       string
}

type EventRepository interface {
	Read(id uuid.UUID) (models.Event, error)
	ReadBySlug(slug string) (models.Event, error)
	ListActive(filter EventFilter) ([]models.Event, error)
	UpdateClaimStatus(tx DB, eventID uuid.UUID, status models.EventClaimStatus) error
	// ResetClaimStatus moves a pending claim flag back to none. The update is
	// conditional so a status that already moved on is never clobbered.
	ResetClaimStatus(tx DB, eventID uuid.UUID) error
	LinkProvider(tx DB, eventID uuid.UUID, providerID uuid.UUID) error
	ClearNeedsReview(tx DB, eventID uuid.UUID) error
}

type ProviderRepository interface {
	// UpsertByUser inserts the provider or, when one already exists for the
	// same user, updates it in place. The provider ID is populated either way.
	UpsertByUser(tx DB, provider *models.Provider) error
}

type ProfileRepository interface {
	GetRole(userID uuid.UUID) (models.UserRole, error)
	UpdateRole(tx DB, userID uuid.UUID, role models.UserRole) error
}

type AuditLogRepository interface {
	Create(tx DB, entry *models.AuditLog) error
	ListRecent(limit int) ([]models.AuditLog, error)
}

// AuditRecorder appends an audit trail entry for a privileged action.
// Recording is best effort - implementations log failures and never
// propagate them, since the primary state transition already happened.
type AuditRecorder interface {
	Record(adminID uuid.UUID, action models.AuditAction, targetType string, targetID string, details database.JSONB)
}
