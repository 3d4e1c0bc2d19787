package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/cultos/tipos/controller"
)

func TipoCultoUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTipoCultoController(db)

	tipos := user.Group("/tipos-culto")
	tipos.Get("/", ctrl.List)
	tipos.Get("/:id", ctrl.Get)
}

func TipoCultoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTipoCultoController(db)

	tipos := admin.Group("/tipos-culto")
	tipos.Post("/", ctrl.Create)
	tipos.Patch("/:id", ctrl.Update)
	tipos.Delete("/:id", ctrl.Delete)
}
