package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pulpito_backend/internals/features/home/notifications/model"
)

func TestNotificationRequestToModelDefaultsTags(t *testing.T) {
	req := NotificationRequest{NotificationTitle: "Ensayo", NotificationBody: "Sábado 18:00"}
	m := req.ToModel()
	assert.NotNil(t, m.NotificationTags)
	assert.Empty(t, m.NotificationTags)
	assert.Nil(t, m.NotificationUserID)
}

func TestToNotificationResponseReadState(t *testing.T) {
	cultoID := uuid.New()
	m := &model.NotificationModel{
		NotificationID:        uuid.New(),
		NotificationTitle:     "Faltan puestos",
		NotificationCultoID:   &cultoID,
		NotificationCreatedAt: time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC),
	}

	unread := ToNotificationResponse(m, nil)
	assert.False(t, unread.NotificationRead)
	assert.Equal(t, []string{}, unread.NotificationTags)
	assert.Equal(t, "2025-03-01T20:00:00Z", unread.NotificationCreatedAt)
	assert.Equal(t, &cultoID, unread.NotificationCultoID)

	at := time.Now()
	rows := []NotificationWithRead{{NotificationModel: *m, ReadAt: &at}}
	list := ToNotificationResponseList(rows)
	if assert.Len(t, list, 1) {
		assert.True(t, list[0].NotificationRead)
		assert.Equal(t, &at, list[0].NotificationReadAt)
	}
}
