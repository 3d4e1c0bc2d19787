package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/home/notifications/controller"
)

func NotificationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notif := admin.Group("/notifications")
	notif.Post("/", ctrl.CreateNotification)
}
