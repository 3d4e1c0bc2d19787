package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"pulpito_backend/internals/configs"
	"pulpito_backend/internals/features/cultos/festivos/dto"
	"pulpito_backend/internals/features/cultos/festivos/service"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/dbtime"
)

type FestivoController struct {
	sync *service.HolidaySync
}

func NewFestivoController(sync *service.HolidaySync) *FestivoController {
	return &FestivoController{sync: sync}
}

// 🟢 GET /api/u/festivos?from=YYYY-MM-DD&to=YYYY-MM-DD
// Sin rango: el año en curso.
func (ctrl *FestivoController) List(c *fiber.Ctx) error {
	today := dbtime.Today(configs.Location())
	from := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

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

	rows, err := ctrl.sync.ListHolidays(c.UserContext(), from, to)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	return helper.JsonList(c, "Festivos", dto.ToFestivoResponseList(rows), nil)
}

// 🟢 POST /api/a/festivos
func (ctrl *FestivoController) Create(c *fiber.Ctx) error {
	var req dto.CreateFestivoRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "festivo_date inválido (YYYY-MM-DD)")
	}

	res, err := ctrl.sync.AddHoliday(c.UserContext(), in)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	msg := "Festivo creado"
	if res.Partial() {
		msg = "Festivo creado; algunos cultos no se pudieron ajustar"
	}
	return helper.JsonCreated(c, msg, dto.ToSyncResponse(res))
}

// 🔴 DELETE /api/a/festivos/:id
func (ctrl *FestivoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}

	res, err := ctrl.sync.RemoveHoliday(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err, "Festivo no encontrado")
	}
	msg := "Festivo eliminado"
	if res.Partial() {
		msg = "Festivo eliminado; algunos cultos no se pudieron restablecer"
	}
	return helper.JsonDeleted(c, msg, dto.ToSyncResponse(res))
}

// 🔁 POST /api/a/festivos/resync
func (ctrl *FestivoController) Resync(c *fiber.Ctx) error {
	var req dto.ResyncRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date inválido (YYYY-MM-DD)")
	}

	res, err := ctrl.sync.Resync(c.UserContext(), date)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	return helper.JsonOK(c, "Fecha sincronizada", dto.ToSyncResponse(res))
}
