package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/home/notifications/dto"
	"pulpito_backend/internals/features/home/notifications/service"
	helper "pulpito_backend/internals/helpers"
	helperAuth "pulpito_backend/internals/helpers/auth"
)

type NotificationController struct {
	svc *service.Service
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{svc: service.New(db)}
}

// 🟢 POST /api/a/notifications
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var req dto.NotificationRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	n := req.ToModel()
	if err := ctrl.svc.Create(c.UserContext(), n); err != nil {
		return helper.JsonFromError(c, err, "")
	}
	return helper.JsonCreated(c, "Notificación creada", dto.ToNotificationResponse(n, nil))
}

// 🟢 GET /api/u/notifications?unread=true&page=&per_page=
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	paging := helper.ResolvePaging(c, 20, 100)
	unread := strings.EqualFold(c.Query("unread"), "true")

	rows, total, err := ctrl.svc.ListForUser(c.UserContext(), userID, unread, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	p := helper.BuildPagination(total, paging, len(rows))
	return helper.JsonList(c, "Notificaciones", dto.ToNotificationResponseList(rows), &p)
}

// 🟡 PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	if err := ctrl.svc.MarkRead(c.UserContext(), id, userID); err != nil {
		return helper.JsonFromError(c, err, "Notificación no encontrada")
	}
	return helper.JsonUpdated(c, "Notificación marcada como leída", fiber.Map{"notification_id": id})
}
