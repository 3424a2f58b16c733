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

package audit_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core/audit"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
	"github.com/minimaply/minimaply/internal/testutils"
	"github.com/stretchr/testify/assert"
)

func TestRecordWritesEntry(t *testing.T) {
	repo := &testutils.AuditLogRepositoryMock{}
	sut := audit.NewRecorder(repo)
	adminID := uuid.New()

	sut.Record(adminID, models.AuditActionClaimApproved, "provider_claim", "some-id", database.JSONB{"notes": "ok"})

	if assert.Len(t, repo.Entries, 1) {
		entry := repo.Entries[0]
		assert.Equal(t, adminID, entry.AdminID)
		assert.Equal(t, models.AuditActionClaimApproved, entry.Action)
		assert.Equal(t, "provider_claim", entry.TargetType)
		assert.Equal(t, "some-id", entry.TargetID)
	}
}

// a failing audit write must never take down the decision that triggered it
func TestRecordSwallowsStorageFailure(t *testing.T) {
	repo := &testutils.AuditLogRepositoryMock{CreateErr: errors.New("disk full")}
	sut := audit.NewRecorder(repo)

	assert.NotPanics(t, func() {
		sut.Record(uuid.New(), models.AuditActionClaimRejected, "provider_claim", "some-id", nil)
	})
	assert.Empty(t, repo.Entries)
}
