package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleFamily   UserRole = "family"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

// Profile mirrors the identity provider's user. The ID is the Ory identity id.
// The role field is the single source of truth for authorization decisions.
type Profile struct {
	ID          uuid.UUID `json:"id" gorm:"primarykey;type:uuid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	DisplayName *string   `json:"displayName" gorm:"type:text"`
	Role        UserRole  `json:"role" gorm:"type:text;default:'family'"`
}

func (m Profile) TableName() string {
	return "profiles"
}
