package models

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportStatusOpen        ReportStatus = "open"
	ReportStatusReviewed    ReportStatus = "reviewed"
	ReportStatusDismissed   ReportStatus = "dismissed"
	ReportStatusActionTaken ReportStatus = "action_taken"
)

// Terminal reports whether the status is an end state. A report leaves
// the open state exactly once and can never be reopened.
func (s ReportStatus) Terminal() bool {
	return s == ReportStatusReviewed || s == ReportStatusDismissed || s == ReportStatusActionTaken
}

// EventReport is a flag raised against an event listing. Reporting is
// allowed anonymously, so ReporterID may be nil - the reporter IP is
// always recorded for the cooldown and rate limit checks.
type EventReport struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	EventID uuid.UUID `json:"eventId" gorm:"type:uuid;not null"`
	Event   Event     `json:"event" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`

	ReporterID *uuid.UUID `json:"reporterId" gorm:"type:uuid"`
	ReporterIP string     `json:"-" gorm:"type:text;not null"`

	Reason      string  `json:"reason" gorm:"type:text;not null"`
	Description *string `json:"description" gorm:"type:text"`

	Status     ReportStatus `json:"status" gorm:"type:text;default:'open'"`
	ReviewedBy *uuid.UUID   `json:"reviewedBy" gorm:"type:uuid"`
	ReviewedAt *time.Time   `json:"reviewedAt"`
	AdminNotes *string      `json:"adminNotes" gorm:"type:text"`
}

func (m EventReport) TableName() string {
	return "event_reports"
}
