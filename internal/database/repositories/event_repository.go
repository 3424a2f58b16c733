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

type eventRepository struct {
	db core.DB
	database.Repository[uuid.UUID, models.Event, core.DB]
}

func NewEventRepository(db core.DB) *eventRepository {
	return &eventRepository{
		db:         db,
		Repository: database.NewGormRepository[uuid.UUID, models.Event](db),
	}
}

func (r *eventRepository) ReadBySlug(slug string) (models.Event, error) {
	var event models.Event
	err := r.db.Preload("Category").Preload("City").Preload("District").Preload("Provider").
		First(&event, "slug = ?", slug).Error
	return event, err
}

// dateWindow translates the date shortcut of the listing UI into an
// inclusive [from, to] range. Events overlap the range when their own
// start/end range intersects it.
func dateWindow(shortcut string, now time.Time) (time.Time, time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch shortcut {
	case "today":
		return today, today, true
	case "weekend":
		daysUntilSaturday := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
		saturday := today.AddDate(0, 0, daysUntilSaturday)
		return saturday, saturday.AddDate(0, 0, 1), true
	case "week":
		return today, today.AddDate(0, 0, 7), true
	}
	return time.Time{}, time.Time{}, false
}

func (r *eventRepository) ListActive(filter core.EventFilter) ([]models.Event, error) {
	q := r.db.Model(&models.Event{}).
		Preload("Category").Preload("City").Preload("District").Preload("Provider").
		Where("events.is_active = ?", true)

	if filter.CitySlug != "" {
		q = q.Joins("JOIN cities ON cities.id = events.city_id").
			Where("cities.slug = ?", filter.CitySlug)
	}
	if filter.CategorySlug != "" {
		q = q.Joins("JOIN categories ON categories.id = events.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.MinAge != nil {
		q = q.Where("events.max_age >= ?", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		q = q.Where("events.min_age <= ?", *filter.MaxAge)
	}
	if filter.IsFree != nil {
		q = q.Where("events.is_free = ?", *filter.IsFree)
	}
	if from, to, ok := dateWindow(filter.Date, time.Now()); ok {
		q = q.Where("events.start_date <= ? AND events.end_date >= ?", to, from)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("events.title ILIKE ? OR events.description ILIKE ?", pattern, pattern)
	}

	var events []models.Event
	err := q.Order("events.is_featured desc").Order("events.start_date asc").Find(&events).Error
	return events, err
}

func (r *eventRepository) UpdateClaimStatus(tx core.DB, eventID uuid.UUID, status models.EventClaimStatus) error {
	return r.GetDB(tx).Model(&models.Event{}).
		Where("id = ?", eventID).
		Update("claim_status", status).Error
}

func (r *eventRepository) ResetClaimStatus(tx core.DB, eventID uuid.UUID) error {
	// conditional on the flag still being pending - a claim decided through
	// another path must not be clobbered
	return r.GetDB(tx).Model(&models.Event{}).
		Where("id = ? AND claim_status = ?", eventID, models.EventClaimStatusPending).
		Update("claim_status", models.EventClaimStatusNone).Error
}

func (r *eventRepository) LinkProvider(tx core.DB, eventID uuid.UUID, providerID uuid.UUID) error {
	return r.GetDB(tx).Model(&models.Event{}).
		Where("id = ?", eventID).
		Updates(map[string]any{
			"provider_id":  providerID,
			"claim_status": models.EventClaimStatusClaimed,
			"source_type":  models.SourceTypeVerified,
		}).Error
}

func (r *eventRepository) ClearNeedsReview(tx core.DB, eventID uuid.UUID) error {
	return r.GetDB(tx).Model(&models.Event{}).
		Where("id = ?", eventID).
		Update("needs_review", false).Error
}
