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
	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/database/models"
)

// SubmitClaimRequest carries the claim form. Identity-like fields are
// deliberately absent - the submitter is always the session user.
type SubmitClaimRequest struct {
	EventID      string `json:"eventId" validate:"required,uuid"`
	BusinessName string `json:"businessName" validate:"required"`
	ContactName  string `json:"contactName" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`

	ContactPhone    *string `json:"contactPhone"`
	WebsiteURL      *string `json:"websiteUrl"`
	InstagramURL    *string `json:"instagramUrl"`
	GoogleMapsURL   *string `json:"googleMapsUrl"`
	AdditionalNotes *string `json:"additionalNotes"`
}

// HasEvidenceLink reports whether at least one of the evidence URL fields
// is populated. A claim without any evidence is not reviewable.
func (r SubmitClaimRequest) HasEvidenceLink() bool {
	for _, link := range []*string{r.WebsiteURL, r.InstagramURL, r.GoogleMapsURL} {
		if link != nil && *link != "" {
			return true
		}
	}
	return false
}

func (r SubmitClaimRequest) ToModel(eventID uuid.UUID, userID uuid.UUID, clientIP string) models.ProviderClaim {
	return models.ProviderClaim{
		EventID:         eventID,
		UserID:          userID,
		BusinessName:    r.BusinessName,
		ContactName:     r.ContactName,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		WebsiteURL:      r.WebsiteURL,
		InstagramURL:    r.InstagramURL,
		GoogleMapsURL:   r.GoogleMapsURL,
		AdditionalNotes: r.AdditionalNotes,
		ContactIP:       clientIP,
		Status:          models.ClaimStatusPending,
	}
}

type ResolveClaimRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Notes  *string `json:"notes"`
}
