package repositories

import (
	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
)

// audit log rows are append-only. Nothing here updates or deletes - the
// embedded repository is only used for Create and the admin listing.
type auditLogRepository struct {
	db core.DB
	database.Repository[uuid.UUID, models.AuditLog, core.DB]
}

func NewAuditLogRepository(db core.DB) *auditLogRepository {
	return &auditLogRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.AuditLog](db),
	}
}

func (r *auditLogRepository) ListRecent(limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.Order("created_at desc").Limit(limit).Find(&entries).Error
	return entries, err
}
