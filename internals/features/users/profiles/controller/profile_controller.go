package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/users/profiles/model"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/apperr"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// 🟢 GET /api/a/profiles?q=&all=true&page=&per_page=
// Por defecto solo perfiles activos (selector de asignaciones).
func (ctrl *ProfileController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProfileModel{})
	if !strings.EqualFold(c.Query("all"), "true") {
		q = q.Where("is_active = TRUE")
	}
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		q = q.Where("full_name ILIKE ?", "%"+term+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("count profiles", err), "")
	}
	var rows []model.ProfileModel
	if err := q.Order("full_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonFromError(c, apperr.Persistence("list profiles", err), "")
	}
	p := helper.BuildPagination(total, paging, len(rows))
	return helper.JsonList(c, "Perfiles", rows, &p)
}
