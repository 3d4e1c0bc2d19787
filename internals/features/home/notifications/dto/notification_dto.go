package dto

import (
	"time"

	"github.com/google/uuid"

	"pulpito_backend/internals/features/home/notifications/model"
)

// ================== REQUEST ==================
type NotificationRequest struct {
	NotificationTitle  string     `json:"notification_title" validate:"required,max=255"`
	NotificationBody   string     `json:"notification_body" validate:"max=4000"`
	NotificationUserID *uuid.UUID `json:"notification_user_id"` // nil = todos
	NotificationTags   []string   `json:"notification_tags" validate:"max=10,dive,max=40"`
}

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID        uuid.UUID  `json:"notification_id"`
	NotificationTitle     string     `json:"notification_title"`
	NotificationBody      string     `json:"notification_body"`
	NotificationUserID    *uuid.UUID `json:"notification_user_id,omitempty"`
	NotificationCultoID   *uuid.UUID `json:"notification_culto_id,omitempty"`
	NotificationTags      []string   `json:"notification_tags"`
	NotificationRead      bool       `json:"notification_read"`
	NotificationReadAt    *time.Time `json:"notification_read_at,omitempty"`
	NotificationCreatedAt string     `json:"notification_created_at"`
}

// Fila de la consulta con LEFT JOIN a notification_users.
type NotificationWithRead struct {
	model.NotificationModel
	ReadAt *time.Time `gorm:"column:notification_users_read_at"`
}

// ================ CONVERSION =================
func (r *NotificationRequest) ToModel() *model.NotificationModel {
	tags := r.NotificationTags
	if tags == nil {
		tags = []string{}
	}
	return &model.NotificationModel{
		NotificationTitle:  r.NotificationTitle,
		NotificationBody:   r.NotificationBody,
		NotificationUserID: r.NotificationUserID,
		NotificationTags:   tags,
	}
}

func ToNotificationResponse(m *model.NotificationModel, readAt *time.Time) NotificationResponse {
	tags := []string(m.NotificationTags)
	if tags == nil {
		tags = []string{}
	}
	return NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationTitle:     m.NotificationTitle,
		NotificationBody:      m.NotificationBody,
		NotificationUserID:    m.NotificationUserID,
		NotificationCultoID:   m.NotificationCultoID,
		NotificationTags:      tags,
		NotificationRead:      readAt != nil,
		NotificationReadAt:    readAt,
		NotificationCreatedAt: m.NotificationCreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponseList(rows []NotificationWithRead) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(rows))
	for i := range rows {
		result = append(result, ToNotificationResponse(&rows[i].NotificationModel, rows[i].ReadAt))
	}
	return result
}
