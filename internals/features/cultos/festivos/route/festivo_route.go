package route

import (
	"github.com/gofiber/fiber/v2"

	"pulpito_backend/internals/features/cultos/festivos/controller"
	"pulpito_backend/internals/features/cultos/festivos/service"
)

func FestivoUserRoutes(user fiber.Router, sync *service.HolidaySync) {
	ctrl := controller.NewFestivoController(sync)

	user.Get("/festivos", ctrl.List)
}

func FestivoAdminRoutes(admin fiber.Router, sync *service.HolidaySync) {
	ctrl := controller.NewFestivoController(sync)

	festivos := admin.Group("/festivos")
	festivos.Post("/", ctrl.Create)
	festivos.Post("/resync", ctrl.Resync)
	festivos.Delete("/:id", ctrl.Delete)
}
