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

package repositories

import (
	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
	"gorm.io/gorm/clause"
)

type providerRepository struct {
	db core.DB
	database.Repository[uuid.UUID, models.Provider, core.DB]
}

func NewProviderRepository(db core.DB) *providerRepository {
	return &providerRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Provider](db),
	}
}

func (r *providerRepository) UpsertByUser(tx core.DB, provider *models.Provider) error {
	// the unique index on user_id is the enforcement point against duplicate
	// providers under concurrent approvals. RETURNING populates the row ID
	// also on the conflict path.
	return r.GetDB(tx).Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"business_name", "contact_name", "contact_email", "contact_phone",
				"website_url", "instagram_url", "google_maps_url", "status", "verified_at",
			}),
		},
		clause.Returning{},
	).Create(provider).Error
}
