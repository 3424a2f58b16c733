package repositories

import (
	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
)

type profileRepository struct {
	db core.DB
	database.Repository[uuid.UUID, models.Profile, core.DB]
}

func NewProfileRepository(db core.DB) *profileRepository {
	return &profileRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Profile](db),
	}
}

func (r *profileRepository) GetRole(userID uuid.UUID) (models.UserRole, error) {
	var profile models.Profile
	err := r.db.Select("role").First(&profile, "id = ?", userID).Error
	if err != nil {
		return "", err
	}
	return profile.Role, nil
}

func (r *profileRepository) UpdateRole(tx core.DB, userID uuid.UUID, role models.UserRole) error {
	return r.GetDB(tx).Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("role", role).Error
}
