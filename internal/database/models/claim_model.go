package models

import (
	"time"

	"github.com/google/uuid"
)

type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// ProviderClaim is an ownership assertion of a business owner over an
// event listing. Claims are never deleted - terminal states are kept for
// the audit trail.
type ProviderClaim struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EventID uuid.UUID `json:"eventId" gorm:"type:uuid;not null"`
	Event   Event     `json:"event" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
	// always the session identity of the submitter - never a body field
	UserID uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`

	BusinessName string  `json:"businessName" gorm:"type:text;not null"`
	ContactName  string  `json:"contactName" gorm:"type:text;not null"`
	ContactEmail string  `json:"contactEmail" gorm:"type:text;not null"`
	ContactPhone *string `json:"contactPhone" gorm:"type:text"`

	WebsiteURL    *string `json:"websiteUrl" gorm:"type:text"`
	InstagramURL  *string `json:"instagramUrl" gorm:"type:text"`
	GoogleMapsURL *string `json:"googleMapsUrl" gorm:"type:text"`

	AdditionalNotes *string `json:"additionalNotes" gorm:"type:text"`
	ContactIP       string  `json:"-" gorm:"type:text"`

	Status     ClaimStatus `json:"status" gorm:"type:text;default:'pending'"`
	ReviewedBy *uuid.UUID  `json:"reviewedBy" gorm:"type:uuid"`
	ReviewedAt *time.Time  `json:"reviewedAt"`
	AdminNotes *string     `json:"adminNotes" gorm:"type:text"`
}

func (m ProviderClaim) TableName() string {
	return "provider_claims"
}
