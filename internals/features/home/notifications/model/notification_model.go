package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NotificationModel es un aviso in-app. Sin destinatario = para todos.
type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationBody      string         `gorm:"column:notification_body;type:text" json:"notification_body"`
	NotificationUserID    *uuid.UUID     `gorm:"column:notification_user_id;type:uuid;index" json:"notification_user_id,omitempty"`
	NotificationCultoID   *uuid.UUID     `gorm:"column:notification_culto_id;type:uuid" json:"notification_culto_id,omitempty"`
	NotificationTags      pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;type:timestamptz;autoCreateTime;index" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationUserModel marca la lectura de una notificación por un usuario.
type NotificationUserModel struct {
	NotificationUserNotificationID uuid.UUID `gorm:"column:notification_users_notification_id;type:uuid;primaryKey" json:"notification_users_notification_id"`
	NotificationUserUserID         uuid.UUID `gorm:"column:notification_users_user_id;type:uuid;primaryKey" json:"notification_users_user_id"`
	NotificationUserReadAt         time.Time `gorm:"column:notification_users_read_at;type:timestamptz;not null" json:"notification_users_read_at"`
}

func (NotificationUserModel) TableName() string {
	return "notification_users"
}
