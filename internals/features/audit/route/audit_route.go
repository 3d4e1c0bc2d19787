package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/audit/controller"
	"pulpito_backend/internals/features/audit/service"
)

func AuditAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuditController(service.New(db))

	admin.Get("/audit", ctrl.List)
}
