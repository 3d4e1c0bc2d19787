package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/catalogo/himnos/dto"
	"pulpito_backend/internals/features/catalogo/himnos/model"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/apperr"
)

type HimnoController struct {
	DB *gorm.DB
}

func NewHimnoController(db *gorm.DB) *HimnoController {
	return &HimnoController{DB: db}
}

// 🟢 GET /api/u/himnos?q=&kind=&page=&per_page=
// q busca por título o, si es numérico, por número.
func (ctrl *HimnoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.HimnoModel{})

	if kind := strings.ToLower(strings.TrimSpace(c.Query("kind"))); kind != "" {
		if kind != string(model.HimnoKindHimno) && kind != string(model.HimnoKindCoro) {
			return helper.JsonError(c, fiber.StatusBadRequest, "kind debe ser himno o coro")
		}
		q = q.Where("himno_kind = ?", kind)
	}
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		if n, err := strconv.Atoi(term); err == nil {
			q = q.Where("himno_number = ?", n)
		} else {
			q = q.Where("himno_title ILIKE ?", "%"+escapeLike(term)+"%")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("count himnos", err), "")
	}
	var rows []model.HimnoModel
	if err := q.Order("himno_kind ASC, himno_number ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("list himnos", err), "")
	}
	p := helper.BuildPagination(total, paging, len(rows))
	return helper.JsonList(c, "Himnos y coros", rows, &p)
}

// 🟢 GET /api/u/himnos/:id
func (ctrl *HimnoController) Get(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	var m model.HimnoModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&m, "himno_id = ?", id).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("get himno", err), "Himno no encontrado")
	}
	return helper.JsonOK(c, "Himno", m)
}

// 🟢 POST /api/a/himnos
func (ctrl *HimnoController) Create(c *fiber.Ctx) error {
	var req dto.CreateHimnoRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("insert himno", err), "")
	}
	return helper.JsonCreated(c, "Himno creado", m)
}

// 🟡 PATCH /api/a/himnos/:id
func (ctrl *HimnoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	var req dto.UpdateHimnoRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.UserContext()
	var m model.HimnoModel
	if err := ctrl.DB.WithContext(ctx).First(&m, "himno_id = ?", id).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("get himno", err), "Himno no encontrado")
	}
	up := req.Apply(&m)
	if len(up) == 0 {
		return helper.JsonOK(c, "Sin cambios", m)
	}
	if err := ctrl.DB.WithContext(ctx).Model(&m).Updates(up).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("update himno", err), "")
	}
	return helper.JsonUpdated(c, "Himno actualizado", m)
}

// 🔴 DELETE /api/a/himnos/:id
func (ctrl *HimnoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Where("himno_id = ?", id).Delete(&model.HimnoModel{})
	if res.Error != nil {
		return helper.JsonFromError(c, apperr.Persistence("delete himno", res.Error), "")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Himno no encontrado")
	}
	return helper.JsonDeleted(c, "Himno eliminado", fiber.Map{"himno_id": id})
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
