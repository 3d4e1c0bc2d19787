package controller

import (
	"github.com/gofiber/fiber/v2"

	"pulpito_backend/internals/features/cultos/generador/service"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/dbtime"
)

type GenerarRequest struct {
	Month string `json:"month" validate:"required,datetime=2006-01"`
}

type GeneradorController struct {
	gen *service.Generator
}

func NewGeneradorController(gen *service.Generator) *GeneradorController {
	return &GeneradorController{gen: gen}
}

// 🗓️ POST /api/a/cultos/generar  body: {"month":"2025-03"}
func (ctrl *GeneradorController) Generar(c *fiber.Ctx) error {
	var req GenerarRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	year, month, err := dbtime.ParseMonth(req.Month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := ctrl.gen.Generate(c.UserContext(), year, month)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	msg := "Cultos generados"
	if len(res.Failed) > 0 {
		msg = "Cultos generados; algunas fechas con festivo no se pudieron ajustar"
	}
	return helper.JsonCreated(c, msg, res)
}
