package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/cultos/lecturas/controller"
)

func LecturaUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLecturaController(db)

	user.Get("/cultos/:id/lecturas", ctrl.ListByCulto)
}

func LecturaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLecturaController(db)

	admin.Post("/cultos/:id/lecturas", ctrl.Create)
	admin.Delete("/lecturas/:id", ctrl.Delete)
}
