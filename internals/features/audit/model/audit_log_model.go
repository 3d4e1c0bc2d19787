package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLogModel struct {
	AuditLogID        uuid.UUID      `gorm:"column:audit_log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"audit_log_id"`
	AuditLogUserID    *uuid.UUID     `gorm:"column:audit_log_user_id;type:uuid;index" json:"audit_log_user_id,omitempty"`
	AuditLogAction    string         `gorm:"column:audit_log_action;type:varchar(64);not null" json:"audit_log_action"`
	AuditLogEntity    string         `gorm:"column:audit_log_entity;type:varchar(64);not null;index" json:"audit_log_entity"`
	AuditLogEntityID  *uuid.UUID     `gorm:"column:audit_log_entity_id;type:uuid" json:"audit_log_entity_id,omitempty"`
	AuditLogDetails   datatypes.JSON `gorm:"column:audit_log_details;type:jsonb" json:"audit_log_details,omitempty"`
	AuditLogCreatedAt time.Time      `gorm:"column:audit_log_created_at;type:timestamptz;autoCreateTime;index" json:"audit_log_created_at"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
