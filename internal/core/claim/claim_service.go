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
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
)

var (
	ErrMissingEvidence        = errors.New("at least one evidence link required")
	ErrAlreadyPendingForUser  = errors.New("you already have a pending claim for this event")
	ErrAlreadyPendingForEvent = errors.New("a claim is already pending for this event")
	ErrAlreadyProcessed       = errors.New("claim already processed")
)

type service struct {
	claimRepository    core.ClaimRepository
	eventRepository    core.EventRepository
	providerRepository core.ProviderRepository
	profileRepository  core.ProfileRepository
	auditRecorder      core.AuditRecorder
}

func NewService(claimRepository core.ClaimRepository, eventRepository core.EventRepository, providerRepository core.ProviderRepository, profileRepository core.ProfileRepository, auditRecorder core.AuditRecorder) *service {
	return &service{
		claimRepository:    claimRepository,
		eventRepository:    eventRepository,
		providerRepository: providerRepository,
		profileRepository:  profileRepository,
		auditRecorder:      auditRecorder,
	}
}

// SubmitClaim files a new ownership claim as the session user. The
// pending-claim pre-checks only exist for friendly error messages - the
// partial unique index on provider_claims is the actual enforcement point
// under concurrent submissions, surfacing here as a duplicate key error.
func (s *service) SubmitClaim(userID uuid.UUID, req SubmitClaimRequest, clientIP string) (models.ProviderClaim, error) {
	if !req.HasEvidenceLink() {
		return models.ProviderClaim{}, ErrMissingEvidence
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return models.ProviderClaim{}, err
	}

	exists, err := s.claimRepository.ExistsPendingForUser(eventID, userID)
	if err != nil {
		return models.ProviderClaim{}, err
	}
	if exists {
		return models.ProviderClaim{}, ErrAlreadyPendingForUser
	}

	exists, err = s.claimRepository.ExistsPendingForEvent(eventID)
	if err != nil {
		return models.ProviderClaim{}, err
	}
	if exists {
		return models.ProviderClaim{}, ErrAlreadyPendingForEvent
	}

	claim := req.ToModel(eventID, userID, clientIP)
	if err := s.claimRepository.Create(nil, &claim); err != nil {
		if database.IsDuplicateKeyError(err) {
			// lost the submission race against another claimant
			return models.ProviderClaim{}, ErrAlreadyPendingForEvent
		}
		return models.ProviderClaim{}, err
	}

	// secondary effect - the claim itself is already persisted
	if err := s.eventRepository.UpdateClaimStatus(nil, eventID, models.EventClaimStatusPending); err != nil {
		slog.Error("could not flag event as claim pending", "eventID", eventID, "claimID", claim.ID, "err", err)
	}

	return claim, nil
}

// ResolveClaim records an admin decision. The status update is the primary
// transition and must succeed; everything after it is best effort so that
// an admin decision is never blocked by a downstream hiccup.
func (s *service) ResolveClaim(adminID uuid.UUID, claimID uuid.UUID, decision models.ClaimStatus, notes *string) (models.ProviderClaim, error) {
	claim, err := s.claimRepository.ReadWithEvent(claimID)
	if err != nil {
		return models.ProviderClaim{}, err
	}

	if claim.Status != models.ClaimStatusPending {
		return models.ProviderClaim{}, ErrAlreadyProcessed
	}

	now := time.Now()
	claim.Status = decision
	claim.ReviewedBy = &adminID
	claim.ReviewedAt = &now
	claim.AdminNotes = notes

	if err := s.claimRepository.Save(nil, &claim); err != nil {
		return models.ProviderClaim{}, err
	}

	switch decision {
	case models.ClaimStatusApproved:
		s.applyApproval(&claim)
		s.auditRecorder.Record(adminID, models.AuditActionClaimApproved, "provider_claim", claim.ID.String(), s.auditDetails(claim, notes))
	case models.ClaimStatusRejected:
		if err := s.eventRepository.ResetClaimStatus(nil, claim.EventID); err != nil {
			slog.Error("could not reset event claim status after rejection", "claimID", claim.ID, "eventID", claim.EventID, "err", err)
		}
		s.auditRecorder.Record(adminID, models.AuditActionClaimRejected, "provider_claim", claim.ID.String(), s.auditDetails(claim, notes))
	}

	return claim, nil
}

// applyApproval runs the derived effects of an approval: provider upsert,
// event link and role promotion. Failures are logged and leave the event
// unlinked for manual follow-up - the recorded decision stands either way.
func (s *service) applyApproval(claim *models.ProviderClaim) {
	now := time.Now()
	provider := models.Provider{
		UserID:        claim.UserID,
		BusinessName:  claim.BusinessName,
		ContactName:   &claim.ContactName,
		ContactEmail:  &claim.ContactEmail,
		ContactPhone:  claim.ContactPhone,
		WebsiteURL:    claim.WebsiteURL,
		InstagramURL:  claim.InstagramURL,
		GoogleMapsURL: claim.GoogleMapsURL,
		Status:        models.ProviderStatusActive,
		VerifiedAt:    &now,
	}

	if err := s.providerRepository.UpsertByUser(nil, &provider); err != nil {
		slog.Error("could not upsert provider after claim approval", "claimID", claim.ID, "userID", claim.UserID, "err", err)
		return
	}

	if err := s.eventRepository.LinkProvider(nil, claim.EventID, provider.ID); err != nil {
		slog.Error("could not link event to provider", "claimID", claim.ID, "eventID", claim.EventID, "providerID", provider.ID, "err", err)
	}

	if err := s.profileRepository.UpdateRole(nil, claim.UserID, models.RoleProvider); err != nil {
		slog.Error("could not promote claim submitter to provider role", "claimID", claim.ID, "userID", claim.UserID, "err", err)
	}
}

func (s *service) auditDetails(claim models.ProviderClaim, notes *string) database.JSONB {
	return database.JSONB{
		"eventId":      claim.EventID.String(),
		"eventTitle":   claim.Event.Title,
		"businessName": claim.BusinessName,
		"notes":        notes,
	}
}

func (s *service) ListByStatus(status models.ClaimStatus) ([]models.ProviderClaim, error) {
	return s.claimRepository.ListByStatus(status)
}
