package route

import (
	"github.com/gofiber/fiber/v2"

	"pulpito_backend/internals/features/cultos/generador/controller"
	"pulpito_backend/internals/features/cultos/generador/service"
)

func GeneradorAdminRoutes(admin fiber.Router, gen *service.Generator) {
	ctrl := controller.NewGeneradorController(gen)

	admin.Post("/cultos/generar", ctrl.Generar)
}
