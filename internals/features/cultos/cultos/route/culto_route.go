package route

import (
	"github.com/gofiber/fiber/v2"

	"pulpito_backend/internals/features/cultos/cultos/controller"
	"pulpito_backend/internals/features/cultos/cultos/service"
)

func CultoUserRoutes(user fiber.Router, svc *service.Service) {
	ctrl := controller.NewCultoController(svc)

	cultos := user.Group("/cultos")
	cultos.Get("/", ctrl.List)
	cultos.Get("/:id", ctrl.Get)
	cultos.Get("/:id/estado", ctrl.Estado)
}

func CultoAdminRoutes(admin fiber.Router, svc *service.Service) {
	ctrl := controller.NewCultoController(svc)

	cultos := admin.Group("/cultos")
	cultos.Post("/", ctrl.Create)
	cultos.Patch("/:id", ctrl.Update)
	cultos.Delete("/:id", ctrl.Delete)
}
