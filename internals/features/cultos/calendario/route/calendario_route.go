package route

import (
	"github.com/gofiber/fiber/v2"

	"pulpito_backend/internals/features/cultos/calendario/controller"
	"pulpito_backend/internals/features/cultos/calendario/service"
)

func CalendarioPublicRoutes(public fiber.Router, feed *service.Feed) {
	ctrl := controller.NewCalendarioController(feed)

	public.Get("/calendario.ics", ctrl.ICS)
}
