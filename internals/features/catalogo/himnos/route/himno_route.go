package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/catalogo/himnos/controller"
)

func HimnoUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHimnoController(db)

	himnos := user.Group("/himnos")
	himnos.Get("/", ctrl.List)
	himnos.Get("/:id", ctrl.Get)
}

func HimnoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHimnoController(db)

	himnos := admin.Group("/himnos")
	himnos.Post("/", ctrl.Create)
	himnos.Patch("/:id", ctrl.Update)
	himnos.Delete("/:id", ctrl.Delete)
}
