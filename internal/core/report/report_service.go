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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
	"github.com/minimaply/minimaply/internal/ratelimit"
)

var (
	ErrRateLimited      = errors.New("too many reports, please try again later")
	ErrRecentlyReported = errors.New("you have already reported this event recently")
	ErrAlreadyProcessed = errors.New("report already processed")
	ErrInvalidDecision  = errors.New("invalid resolution status")
)

// a given IP may report the same event at most once per cooldown window
const reportCooldown = 24 * time.Hour

type service struct {
	reportRepository core.ReportRepository
	eventRepository  core.EventRepository
	limiter          ratelimit.Limiter
	auditRecorder    core.AuditRecorder
}

func NewService(reportRepository core.ReportRepository, eventRepository core.EventRepository, limiter ratelimit.Limiter, auditRecorder core.AuditRecorder) *service {
	return &service{
		reportRepository: reportRepository,
		eventRepository:  eventRepository,
		limiter:          limiter,
		auditRecorder:    auditRecorder,
	}
}

// SubmitReport files a report against an event. Anonymous reporting is
// allowed, so reporterID may be nil - the client IP carries the cooldown
// and rate limit instead.
func (s *service) SubmitReport(reporterID *uuid.UUID, req SubmitReportRequest, clientIP string) (models.EventReport, error) {
	if !s.limiter.Allow(clientIP) {
		return models.EventReport{}, ErrRateLimited
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return models.EventReport{}, err
	}

	exists, err := s.reportRepository.ExistsRecentFromIP(eventID, clientIP, time.Now().Add(-reportCooldown))
	if err != nil {
		return models.EventReport{}, err
	}
	if exists {
		return models.EventReport{}, ErrRecentlyReported
	}

	report := req.ToModel(eventID, reporterID, clientIP)
	if err := s.reportRepository.Create(nil, &report); err != nil {
		return models.EventReport{}, err
	}

	return report, nil
}

// ResolveReport records an admin decision on an open report. Like claim
// resolution, the status update is the primary transition; clearing the
// event review flag afterwards is best effort.
func (s *service) ResolveReport(adminID uuid.UUID, reportID uuid.UUID, decision models.ReportStatus, notes *string) (models.EventReport, error) {
	if !decision.Terminal() {
		return models.EventReport{}, ErrInvalidDecision
	}

	report, err := s.reportRepository.ReadWithEvent(reportID)
	if err != nil {
		return models.EventReport{}, err
	}

	if report.Status != models.ReportStatusOpen {
		return models.EventReport{}, ErrAlreadyProcessed
	}

	now := time.Now()
	report.Status = decision
	report.ReviewedBy = &adminID
	report.ReviewedAt = &now
	report.AdminNotes = notes

	if err := s.reportRepository.Save(nil, &report); err != nil {
		return models.EventReport{}, err
	}

	if decision == models.ReportStatusActionTaken {
		s.clearNeedsReviewIfSettled(report.EventID)
	}

	s.auditRecorder.Record(adminID, models.ReportAuditAction(decision), "event_report", report.ID.String(), database.JSONB{
		"eventId":    report.EventID.String(),
		"eventTitle": report.Event.Title,
		"reason":     report.Reason,
		"notes":      notes,
	})

	return report, nil
}

// clearNeedsReviewIfSettled drops the event review flag once no open
// reports remain for the event.
func (s *service) clearNeedsReviewIfSettled(eventID uuid.UUID) {
	openReports, err := s.reportRepository.CountOpenForEvent(eventID)
	if err != nil {
		slog.Error("could not count open reports", "eventID", eventID, "err", err)
		return
	}

	if openReports > 0 {
		return
	}

	if err := s.eventRepository.ClearNeedsReview(nil, eventID); err != nil {
		slog.Error("could not clear event review flag", "eventID", eventID, "err", err)
	}
}

func (s *service) ListByStatus(status models.ReportStatus) ([]models.EventReport, error) {
	return s.reportRepository.ListByStatus(status)
}
