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
package testutils

import (
	"time"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database/models"
	"gorm.io/gorm"
)

// in-memory stand-ins for the gorm repositories. They hold their rows in
// exported slices so tests can seed and inspect state directly, and expose
// error fields to simulate storage failures.

type ClaimRepositoryMock struct {
	Claims []models.ProviderClaim

	CreateErr error
	SaveErr   error
}

func (m *ClaimRepositoryMock) Create(tx core.DB, claim *models.ProviderClaim) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	claim.CreatedAt = time.Now()
	m.Claims = append(m.Claims, *claim)
	return nil
}

func (m *ClaimRepositoryMock) ReadWithEvent(id uuid.UUID) (models.ProviderClaim, error) {
	for _, claim := range m.Claims {
		if claim.ID == id {
			return claim, nil
		}
	}
	return models.ProviderClaim{}, gorm.ErrRecordNotFound
}

func (m *ClaimRepositoryMock) Save(tx core.DB, claim *models.ProviderClaim) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for i, existing := range m.Claims {
		if existing.ID == claim.ID {
			m.Claims[i] = *claim
			return nil
		}
	}
	m.Claims = append(m.Claims, *claim)
	return nil
}

func (m *ClaimRepositoryMock) ExistsPendingForEvent(eventID uuid.UUID) (bool, error) {
	for _, claim := range m.Claims {
		if claim.EventID == eventID && claim.Status == models.ClaimStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *ClaimRepositoryMock) ExistsPendingForUser(eventID uuid.UUID, userID uuid.UUID) (bool, error) {
	for _, claim := range m.Claims {
		if claim.EventID == eventID && claim.UserID == userID && claim.Status == models.ClaimStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (m *ClaimRepositoryMock) ListByStatus(status models.ClaimStatus) ([]models.ProviderClaim, error) {
	result := []models.ProviderClaim{}
	for _, claim := range m.Claims {
		if claim.Status == status {
			result = append(result, claim)
		}
	}
	return result, nil
}

type ReportRepositoryMock struct {
	Reports []models.EventReport

	CreateErr error
	SaveErr   error
}

func (m *ReportRepositoryMock) Create(tx core.DB, report *models.EventReport) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	m.Reports = append(m.Reports, *report)
	return nil
}

func (m *ReportRepositoryMock) ReadWithEvent(id uuid.UUID) (models.EventReport, error) {
	for _, report := range m.Reports {
		if report.ID == id {
			return report, nil
		}
	}
	return models.EventReport{}, gorm.ErrRecordNotFound
}

func (m *ReportRepositoryMock) Save(tx core.DB, report *models.EventReport) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for i, existing := range m.Reports {
		if existing.ID == report.ID {
			m.Reports[i] = *report
			return nil
		}
	}
	m.Reports = append(m.Reports, *report)
	return nil
}

func (m *ReportRepositoryMock) ExistsRecentFromIP(eventID uuid.UUID, reporterIP string, since time.Time) (bool, error) {
	for _, report := range m.Reports {
		if report.EventID == eventID && report.ReporterIP == reporterIP && report.CreatedAt.After(since) {
			return true, nil
		}
	}
	return false, nil
}

func (m *ReportRepositoryMock) CountOpenForEvent(eventID uuid.UUID) (int64, error) {
	var count int64
	for _, report := range m.Reports {
		if report.EventID == eventID && report.Status == models.ReportStatusOpen {
			count++
		}
	}
	return count, nil
}

func (m *ReportRepositoryMock) ListByStatus(status models.ReportStatus) ([]models.EventReport, error) {
	result := []models.EventReport{}
	for _, report := range m.Reports {
		if report.Status == status {
			result = append(result, report)
		}
	}
	return result, nil
}

type EventRepositoryMock struct {
	Events []models.Event

	UpdateClaimStatusErr error
	LinkProviderErr      error
	ClearNeedsReviewErr  error
	ResetClaimStatusErr  error
}

func (m *EventRepositoryMock) Read(id uuid.UUID) (models.Event, error) {
	for _, event := range m.Events {
		if event.ID == id {
			return event, nil
		}
	}
	return models.Event{}, gorm.ErrRecordNotFound
}

func (m *EventRepositoryMock) ReadBySlug(slug string) (models.Event, error) {
	for _, event := range m.Events {
		if event.Slug == slug {
			return event, nil
		}
	}
	return models.Event{}, gorm.ErrRecordNotFound
}

func (m *EventRepositoryMock) ListActive(filter core.EventFilter) ([]models.Event, error) {
	result := []models.Event{}
	for _, event := range m.Events {
		if event.IsActive {
			result = append(result, event)
		}
	}
	return result, nil
}

func (m *EventRepositoryMock) UpdateClaimStatus(tx core.DB, eventID uuid.UUID, status models.EventClaimStatus) error {
	if m.UpdateClaimStatusErr != nil {
		return m.UpdateClaimStatusErr
	}
	for i, event := range m.Events {
		if event.ID == eventID {
			m.Events[i].ClaimStatus = status
		}
	}
	return nil
}

func (m *EventRepositoryMock) ResetClaimStatus(tx core.DB, eventID uuid.UUID) error {
	if m.ResetClaimStatusErr != nil {
		return m.ResetClaimStatusErr
	}
	for i, event := range m.Events {
		if event.ID == eventID && event.ClaimStatus == models.EventClaimStatusPending {
			m.Events[i].ClaimStatus = models.EventClaimStatusNone
		}
	}
	return nil
}

func (m *EventRepositoryMock) LinkProvider(tx core.DB, eventID uuid.UUID, providerID uuid.UUID) error {
	if m.LinkProviderErr != nil {
		return m.LinkProviderErr
	}
	for i, event := range m.Events {
		if event.ID == eventID {
			id := providerID
			m.Events[i].ProviderID = &id
			m.Events[i].ClaimStatus = models.EventClaimStatusClaimed
			m.Events[i].SourceType = models.SourceTypeVerified
		}
	}
	return nil
}

func (m *EventRepositoryMock) ClearNeedsReview(tx core.DB, eventID uuid.UUID) error {
	if m.ClearNeedsReviewErr != nil {
		return m.ClearNeedsReviewErr
	}
	for i, event := range m.Events {
		if event.ID == eventID {
			m.Events[i].NeedsReview = false
		}
	}
	return nil
}

type ProviderRepositoryMock struct {
	Providers []models.Provider

	UpsertErr error
}

func (m *ProviderRepositoryMock) UpsertByUser(tx core.DB, provider *models.Provider) error {
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	for i, existing := range m.Providers {
		if existing.UserID == provider.UserID {
			provider.ID = existing.ID
			m.Providers[i] = *provider
			return nil
		}
	}
	if provider.ID == uuid.Nil {
		provider.ID = uuid.New()
	}
	m.Providers = append(m.Providers, *provider)
	return nil
}

type ProfileRepositoryMock struct {
	Roles map[uuid.UUID]models.UserRole

	UpdateRoleErr error
}

func NewProfileRepositoryMock() *ProfileRepositoryMock {
	return &ProfileRepositoryMock{
		Roles: make(map[uuid.UUID]models.UserRole),
	}
}

func (m *ProfileRepositoryMock) GetRole(userID uuid.UUID) (models.UserRole, error) {
	role, ok := m.Roles[userID]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return role, nil
}

func (m *ProfileRepositoryMock) UpdateRole(tx core.DB, userID uuid.UUID, role models.UserRole) error {
	if m.UpdateRoleErr != nil {
		return m.UpdateRoleErr
	}
	m.Roles[userID] = role
	return nil
}

type AuditLogRepositoryMock struct {
	Entries []models.AuditLog

	CreateErr error
}

func (m *AuditLogRepositoryMock) Create(tx core.DB, entry *models.AuditLog) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	m.Entries = append(m.Entries, *entry)
	return nil
}

func (m *AuditLogRepositoryMock) ListRecent(limit int) ([]models.AuditLog, error) {
	if limit > len(m.Entries) {
		limit = len(m.Entries)
	}
	result := make([]models.AuditLog, 0, limit)
	for i := len(m.Entries) - 1; i >= len(m.Entries)-limit; i-- {
		result = append(result, m.Entries[i])
	}
	return result, nil
}
