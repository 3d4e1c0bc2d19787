package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	himnoRoute "pulpito_backend/internals/features/catalogo/himnos/route"
	notificationRoute "pulpito_backend/internals/features/home/notifications/route"
)

// Ejemplo: /api/u/notifications, /api/u/himnos
func HomeUserRoutes(user fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationUserRoutes(user, db)
	himnoRoute.HimnoUserRoutes(user, db)
}

func HomeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationAdminRoutes(admin, db)
	himnoRoute.HimnoAdminRoutes(admin, db)
}
