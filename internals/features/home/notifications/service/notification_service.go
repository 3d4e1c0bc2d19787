package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulpito_backend/internals/features/home/notifications/dto"
	"pulpito_backend/internals/features/home/notifications/model"
	"pulpito_backend/internals/helpers/apperr"
)

type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

func (s *Service) Create(ctx context.Context, n *model.NotificationModel) error {
	if n.NotificationTags == nil {
		n.NotificationTags = []string{}
	}
	return apperr.Persistence("insert notification", s.DB.WithContext(ctx).Create(n).Error)
}

// Broadcast crea un aviso para todos los usuarios.
func (s *Service) Broadcast(ctx context.Context, title, body string, cultoID *uuid.UUID, tags ...string) error {
	return s.Create(ctx, &model.NotificationModel{
		NotificationTitle:   title,
		NotificationBody:    body,
		NotificationCultoID: cultoID,
		NotificationTags:    tags,
	})
}

// visibleTo: avisos dirigidos al usuario o sin destinatario.
func visibleTo(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Where("notifications.notification_user_id = ? OR notifications.notification_user_id IS NULL", userID)
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, offset, limit int) ([]dto.NotificationWithRead, int64, error) {
	q := visibleTo(s.DB.WithContext(ctx).Model(&model.NotificationModel{}), userID).
		Joins(`LEFT JOIN notification_users nu
			ON nu.notification_users_notification_id = notifications.notification_id
			AND nu.notification_users_user_id = ?`, userID)
	if unreadOnly {
		q = q.Where("nu.notification_users_read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Persistence("count notifications", err)
	}

	var rows []dto.NotificationWithRead
	if err := q.Select("notifications.*, nu.notification_users_read_at").
		Order("notifications.notification_created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.Persistence("list notifications", err)
	}
	return rows, total, nil
}

// MarkRead es idempotente: marcar dos veces conserva la primera fecha de lectura.
func (s *Service) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	var n int64
	if err := visibleTo(s.DB.WithContext(ctx).Model(&model.NotificationModel{}), userID).
		Where("notifications.notification_id = ?", notificationID).
		Count(&n).Error; err != nil {
		return apperr.Persistence("check notification", err)
	}
	if n == 0 {
		return apperr.Persistence("mark notification read", apperr.ErrNotFound)
	}

	row := model.NotificationUserModel{
		NotificationUserNotificationID: notificationID,
		NotificationUserUserID:         userID,
		NotificationUserReadAt:         s.Now(),
	}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	return apperr.Persistence("mark notification read", err)
}
