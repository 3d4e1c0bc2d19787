package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pulpito_backend/internals/features/audit/service"
	helper "pulpito_backend/internals/helpers"
)

type AuditController struct {
	svc *service.Service
}

func NewAuditController(svc *service.Service) *AuditController {
	return &AuditController{svc: svc}
}

// 🔎 GET /api/a/audit?entity=&entity_id=&page=&per_page=
func (ctrl *AuditController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)
	f := service.ListFilter{
		Entity: strings.TrimSpace(c.Query("entity")),
		Offset: paging.Offset,
		Limit:  paging.Limit,
	}
	if s := strings.TrimSpace(c.Query("entity_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "entity_id inválido")
		}
		f.EntityID = &id
	}

	rows, total, err := ctrl.svc.List(c.UserContext(), f)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	p := helper.BuildPagination(total, paging, len(rows))
	return helper.JsonList(c, "Auditoría", rows, &p)
}
