package models

import (
	"time"

	"github.com/google/uuid"
)

type ProviderStatus string

const (
	ProviderStatusActive   ProviderStatus = "active"
	ProviderStatusInactive ProviderStatus = "inactive"
)

// Provider is the business entity behind claimed events. There is at most
// one provider per user - approving a second claim for the same user
// updates the existing row instead of creating a duplicate.
type Provider struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	BusinessName string    `json:"businessName" gorm:"type:text;not null"`
	ContactName  *string   `json:"contactName" gorm:"type:text"`
	ContactEmail *string   `json:"contactEmail" gorm:"type:text"`
	ContactPhone *string   `json:"contactPhone" gorm:"type:text"`

	WebsiteURL    *string `json:"websiteUrl" gorm:"type:text"`
	InstagramURL  *string `json:"instagramUrl" gorm:"type:text"`
	GoogleMapsURL *string `json:"googleMapsUrl" gorm:"type:text"`

	Status     ProviderStatus `json:"status" gorm:"type:text;default:'active'"`
	VerifiedAt *time.Time     `json:"verifiedAt"`
}

func (m Provider) TableName() string {
	return "providers"
}
