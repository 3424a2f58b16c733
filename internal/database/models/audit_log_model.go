package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/minimaply/minimaply/internal/database"
)

type AuditAction string

const (
	AuditActionClaimApproved AuditAction = "claim_approved"
	AuditActionClaimRejected AuditAction = "claim_rejected"
)

// ReportAuditAction builds the audit action for a report resolution,
// e.g. report_action_taken.
func ReportAuditAction(status ReportStatus) AuditAction {
	return AuditAction("report_" + string(status))
}

// AuditLog is an append-only record of privileged state transitions.
// Rows are never updated or deleted.
type AuditLog struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	AdminID    uuid.UUID      `json:"adminId" gorm:"type:uuid;not null"`
	Action     AuditAction    `json:"action" gorm:"type:text;not null"`
	TargetType string         `json:"targetType" gorm:"type:text;not null"`
	TargetID   string         `json:"targetId" gorm:"type:text;not null"`
	Details    database.JSONB `json:"details" gorm:"type:jsonb"`
}

func (m AuditLog) TableName() string {
	return "admin_audit_logs"
}
