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
	"time"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/core"
	"github.com/minimaply/minimaply/internal/database"
	"github.com/minimaply/minimaply/internal/database/models"
)

type reportRepository struct {
	db core.DB
	database.Repository[uuid.UUID, models.EventReport, core.DB]
}

func NewReportRepository(db core.DB) *reportRepository {
	return &reportRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.EventReport](db),
	}
}

func (r *reportRepository) ReadWithEvent(id uuid.UUID) (models.EventReport, error) {
	var report models.EventReport
	err := r.db.Preload("Event").First(&report, "id = ?", id).Error
	return report, err
}

func (r *reportRepository) ExistsRecentFromIP(eventID uuid.UUID, reporterIP string, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.EventReport{}).
		Where("event_id = ? AND reporter_ip = ? AND created_at >= ?", eventID, reporterIP, since).
		Count(&count).Error
	return count > 0, err
}

func (r *reportRepository) CountOpenForEvent(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventReport{}).
		Where("event_id = ? AND status = ?", eventID, models.ReportStatusOpen).
		Count(&count).Error
	return count, err
}

func (r *reportRepository) ListByStatus(status models.ReportStatus) ([]models.EventReport, error) {
	var reports []models.EventReport
	err := r.db.Preload("Event").
		Where("status = ?", status).
		Order("created_at asc").
		Find(&reports).Error
	return reports, err
}
