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

package accesscontrol

import (
	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/database/models"
)

const (
	RoleFamily   = "family"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// RoleAuthority answers whether a user holds a role. It never returns an
// error - any lookup failure is reported as "does not hold the role" and
// callers treat that as not authorized.
type RoleAuthority interface {
	HasRole(userID string, role string) bool
}

type profileRoleSource interface {
	GetRole(userID uuid.UUID) (models.UserRole, error)
}

type profileRoleAuthority struct {
	profileRepository profileRoleSource
}

// NewProfileRoleAuthority builds a RoleAuthority backed by the profiles
// table - the role column there is the single authority source.
func NewProfileRoleAuthority(profileRepository profileRoleSource) *profileRoleAuthority {
	return &profileRoleAuthority{
		profileRepository: profileRepository,
	}
}

func (a *profileRoleAuthority) HasRole(userID string, role string) bool {
	id, err := uuid.Parse(userID)
	if err != nil {
		return false
	}

	profileRole, err := a.profileRepository.GetRole(id)
	if err != nil {
		return false
	}

	return string(profileRole) == role
}
