package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "pulpito_backend/internals/features/audit/service"
	"pulpito_backend/internals/features/cultos/tipos/dto"
	"pulpito_backend/internals/features/cultos/tipos/model"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/apperr"
)

type TipoCultoController struct {
	DB    *gorm.DB
	Audit *auditService.Service
}

func NewTipoCultoController(db *gorm.DB) *TipoCultoController {
	return &TipoCultoController{DB: db, Audit: auditService.New(db)}
}

// 🟢 GET /api/u/tipos-culto
func (ctrl *TipoCultoController) List(c *fiber.Ctx) error {
	var rows []model.TipoCultoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("tipo_culto_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("list tipos", err), "")
	}
	return helper.JsonList(c, "Tipos de culto", dto.ToTipoCultoResponseList(rows), nil)
}

// 🟢 GET /api/u/tipos-culto/:id
func (ctrl *TipoCultoController) Get(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	var m model.TipoCultoModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&m, "tipo_culto_id = ?", id).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("get tipo", err), "Tipo de culto no encontrado")
	}
	return helper.JsonOK(c, "Tipo de culto", dto.ToTipoCultoResponse(&m))
}

// 🟢 POST /api/a/tipos-culto
func (ctrl *TipoCultoController) Create(c *fiber.Ctx) error {
	var req dto.CreateTipoCultoRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}

	ctx := c.UserContext()
	if err := ctrl.DB.WithContext(ctx).Create(m).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("insert tipo", err), "")
	}
	ctrl.Audit.RecordQuietly(ctx, auditService.Entry{
		Action: "tipo_culto.create", Entity: "tipo_culto", EntityID: &m.TipoCultoID, Details: m,
	})
	return helper.JsonCreated(c, "Tipo de culto creado", dto.ToTipoCultoResponse(m))
}

// 🟡 PATCH /api/a/tipos-culto/:id
func (ctrl *TipoCultoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	var req dto.UpdateTipoCultoRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.UserContext()
	var m model.TipoCultoModel
	if err := ctrl.DB.WithContext(ctx).First(&m, "tipo_culto_id = ?", id).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("get tipo", err), "Tipo de culto no encontrado")
	}
	up, err := req.Apply(&m)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	if len(up) == 0 {
		return helper.JsonOK(c, "Sin cambios", dto.ToTipoCultoResponse(&m))
	}
	if err := ctrl.DB.WithContext(ctx).Model(&m).Updates(up).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("update tipo", err), "")
	}
	ctrl.Audit.RecordQuietly(ctx, auditService.Entry{
		Action: "tipo_culto.update", Entity: "tipo_culto", EntityID: &m.TipoCultoID, Details: up,
	})
	return helper.JsonUpdated(c, "Tipo de culto actualizado", dto.ToTipoCultoResponse(&m))
}

// 🔴 DELETE /api/a/tipos-culto/:id
// Falla con 409 si hay cultos de este tipo.
func (ctrl *TipoCultoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}

	ctx := c.UserContext()
	res := ctrl.DB.WithContext(ctx).Where("tipo_culto_id = ?", id).Delete(&model.TipoCultoModel{})
	if res.Error != nil {
		return helper.JsonFromError(c, apperr.Persistence("delete tipo", res.Error), "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tipo de culto no encontrado")
	}
	ctrl.Audit.RecordQuietly(ctx, auditService.Entry{
		Action: "tipo_culto.delete", Entity: "tipo_culto", EntityID: &id,
	})
	return helper.JsonDeleted(c, "Tipo de culto eliminado", fiber.Map{"tipo_culto_id": id})
}
