package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pulpito_backend/internals/configs"
	"pulpito_backend/internals/features/cultos/calendario/service"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/dbtime"
)

type CalendarioController struct {
	feed *service.Feed
}

func NewCalendarioController(feed *service.Feed) *CalendarioController {
	return &CalendarioController{feed: feed}
}

// 📅 GET /api/public/calendario.ics?from=&to=
// Por defecto: desde hace 30 días hasta dentro de 180.
func (ctrl *CalendarioController) ICS(c *fiber.Ctx) error {
	today := dbtime.Today(configs.Location())
	from, to := today.AddDate(0, 0, -30), today.AddDate(0, 0, 180)

	if s := strings.TrimSpace(c.Query("from")); s != "" {
		d, err := dbtime.ParseDate(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from inválido (YYYY-MM-DD)")
		}
		from = d
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		d, err := dbtime.ParseDate(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to inválido (YYYY-MM-DD)")
		}
		to = d
	}

	body, err := ctrl.feed.Build(c.UserContext(), from, to)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cultos.ics"`)
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.SendString(body)
}
