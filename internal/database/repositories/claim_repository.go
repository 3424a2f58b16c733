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
)

type claimRepository struct {
	db core.DB
	database.Repository[uuid.UUID, models.ProviderClaim, core.DB]
}

func NewClaimRepository(db core.DB) *claimRepository {
	return &claimRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.ProviderClaim](db),
	}
}

func (r *claimRepository) ReadWithEvent(id uuid.UUID) (models.ProviderClaim, error) {
	var claim models.ProviderClaim
	err := r.db.Preload("Event").First(&claim, "id = ?", id).Error
	return claim, err
}

func (r *claimRepository) ExistsPendingForEvent(eventID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProviderClaim{}).
		Where("event_id = ? AND status = ?", eventID, models.ClaimStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *claimRepository) ExistsPendingForUser(eventID uuid.UUID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProviderClaim{}).
		Where("event_id = ? AND user_id = ? AND status = ?", eventID, userID, models.ClaimStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *claimRepository) ListByStatus(status models.ClaimStatus) ([]models.ProviderClaim, error) {
	var claims []models.ProviderClaim
	err := r.db.Preload("Event").
		Where("status = ?", status).
		Order("created_at asc").
		Find(&claims).Error
	return claims, err
}
