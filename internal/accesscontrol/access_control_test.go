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

package accesscontrol_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/accesscontrol"
	"github.com/minimaply/minimaply/internal/database/models"
	"github.com/minimaply/minimaply/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	profiles := testutils.NewProfileRepositoryMock()
	adminID := uuid.New()
	familyID := uuid.New()
	profiles.Roles[adminID] = models.RoleAdmin
	profiles.Roles[familyID] = models.RoleFamily

	sut := accesscontrol.NewProfileRoleAuthority(profiles)

	assert.True(t, sut.HasRole(adminID.String(), accesscontrol.RoleAdmin))
	assert.False(t, sut.HasRole(familyID.String(), accesscontrol.RoleAdmin))
	assert.True(t, sut.HasRole(familyID.String(), accesscontrol.RoleFamily))
}

// an unknown user or a malformed id is simply not authorized - the
// authority never errors
func TestHasRoleFailsClosed(t *testing.T) {
	sut := accesscontrol.NewProfileRoleAuthority(testutils.NewProfileRepositoryMock())

	assert.False(t, sut.HasRole(uuid.New().String(), accesscontrol.RoleAdmin))
	assert.False(t, sut.HasRole("not-a-uuid", accesscontrol.RoleAdmin))
	assert.False(t, sut.HasRole("", accesscontrol.RoleAdmin))
}
