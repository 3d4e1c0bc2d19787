package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/users/profiles/controller"
)

func ProfileAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfileController(db)

	admin.Get("/profiles", ctrl.List)
}
