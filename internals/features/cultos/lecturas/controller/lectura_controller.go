package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditService "pulpito_backend/internals/features/audit/service"
	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/lecturas/dto"
	"pulpito_backend/internals/features/cultos/lecturas/model"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/apperr"
)

type LecturaController struct {
	DB    *gorm.DB
	Audit *auditService.Service
}

func NewLecturaController(db *gorm.DB) *LecturaController {
	return &LecturaController{DB: db, Audit: auditService.New(db)}
}

// 🟢 GET /api/u/cultos/:id/lecturas
func (ctrl *LecturaController) ListByCulto(c *fiber.Ctx) error {
	cultoID, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	var rows []model.LecturaModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("lectura_culto_id = ?", cultoID).
		Order("lectura_kind ASC, lectura_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("list lecturas", err), "")
	}

	out := make([]dto.LecturaResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToLecturaResponse(&rows[i]))
	}
	return helper.JsonList(c, "Lecturas", out, nil)
}

// 🟢 POST /api/a/cultos/:id/lecturas
func (ctrl *LecturaController) Create(c *fiber.Ctx) error {
	cultoID, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	var req dto.CreateLecturaRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	m, err := req.ToModel(cultoID)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}

	ctx := c.UserContext()
	var n int64
	if err := ctrl.DB.WithContext(ctx).Model(&cultoModel.CultoModel{}).
		Where("culto_id = ?", cultoID).Count(&n).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("check culto", err), "")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Culto no encontrado")
	}

	if err := ctrl.DB.WithContext(ctx).Create(m).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("insert lectura", err), "")
	}
	ctrl.Audit.RecordQuietly(ctx, auditService.Entry{
		Action: "lectura.create", Entity: "lectura", EntityID: &m.LecturaID, Details: m,
	})
	return helper.JsonCreated(c, "Lectura añadida", dto.ToLecturaResponse(m))
}

// 🔴 DELETE /api/a/lecturas/:id
func (ctrl *LecturaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	ctx := c.UserContext()
	res := ctrl.DB.WithContext(ctx).Where("lectura_id = ?", id).Delete(&model.LecturaModel{})
	if res.Error != nil {
		return helper.JsonFromError(c, apperr.Persistence("delete lectura", res.Error), "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Lectura no encontrada")
	}
	ctrl.Audit.RecordQuietly(ctx, auditService.Entry{Action: "lectura.delete", Entity: "lectura", EntityID: &id})
	return helper.JsonDeleted(c, "Lectura eliminada", fiber.Map{"lectura_id": id})
}
