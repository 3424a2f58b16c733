package models

import (
	"time"

	"github.com/google/uuid"
)

type EventClaimStatus string

const (
	EventClaimStatusNone    EventClaimStatus = "none"
	EventClaimStatusPending EventClaimStatus = "pending"
	EventClaimStatusClaimed EventClaimStatus = "claimed"
)

type SourceType string

const (
	SourceTypeVerified  SourceType = "verified"
	SourceTypeSourced   SourceType = "sourced"
	SourceTypeCommunity SourceType = "community"
)

// Event is the read-model row for a listed activity. The moderation
// workflows only ever write ClaimStatus, NeedsReview and ProviderID;
// everything else belongs to the listing pipeline.
type Event struct {
	ID          uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `json:"title" gorm:"type:text;not null"`
	Slug        string    `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Description *string   `json:"description" gorm:"type:text"`

	CategoryID *uuid.UUID `json:"categoryId" gorm:"type:uuid"`
	Category   *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CityID     *uuid.UUID `json:"cityId" gorm:"type:uuid"`
	City       *City      `json:"city,omitempty" gorm:"foreignKey:CityID"`
	DistrictID *uuid.UUID `json:"districtId" gorm:"type:uuid"`
	District   *District  `json:"district,omitempty" gorm:"foreignKey:DistrictID"`

	Address *string  `json:"address" gorm:"type:text"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`

	MinAge int     `json:"minAge"`
	MaxAge int     `json:"maxAge"`
	Price  float64 `json:"price"`
	IsFree bool    `json:"isFree"`

	StartDate *time.Time `json:"startDate" gorm:"type:date"`
	EndDate   *time.Time `json:"endDate" gorm:"type:date"`

	IsActive   bool       `json:"isActive" gorm:"default:true"`
	IsFeatured bool       `json:"isFeatured"`
	SourceType SourceType `json:"sourceType" gorm:"type:text;default:'sourced'"`
	ImageURL   *string    `json:"imageUrl" gorm:"type:text"`

	// owned by the claim/report workflows
	ClaimStatus EventClaimStatus `json:"claimStatus" gorm:"type:text;default:'none'"`
	NeedsReview bool             `json:"needsReview"`
	ProviderID  *uuid.UUID       `json:"providerId" gorm:"type:uuid"`
	Provider    *Provider        `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
}

func (m Event) TableName() string {
	return "events"
}
