package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pulpito_backend/internals/configs"
	"pulpito_backend/internals/features/cultos/cultos/dto"
	"pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/cultos/repository"
	"pulpito_backend/internals/features/cultos/cultos/service"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/helpers/dbtime"
)

type CultoController struct {
	svc *service.Service
}

func NewCultoController(svc *service.Service) *CultoController {
	return &CultoController{svc: svc}
}

// 🟢 GET /api/u/cultos?from=&to=&status=&tipo_id=&page=&per_page=
// Sin rango: el mes en curso.
func (ctrl *CultoController) List(c *fiber.Ctx) error {
	today := dbtime.Today(configs.Location())
	from, to := dbtime.MonthRange(today.Year(), today.Month())

	var err error
	if from, err = dateQuery(c, "from", from); err != nil {
		return helper.JsonFromError(c, err, "")
	}
	if to, err = dateQuery(c, "to", to); err != nil {
		return helper.JsonFromError(c, err, "")
	}

	paging := helper.ResolvePaging(c, 50, 200)
	f := repository.ListFilter{From: from, To: to, Offset: paging.Offset, Limit: paging.Limit}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		st := model.CultoStatus(strings.ToLower(s))
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status inválido")
		}
		f.Status = &st
	}
	if s := strings.TrimSpace(c.Query("tipo_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "tipo_id inválido")
		}
		f.TipoID = &id
	}

	views, total, err := ctrl.svc.List(c.UserContext(), f)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	p := helper.BuildPagination(total, paging, len(views))
	return helper.JsonList(c, "Cultos", dto.ToCultoResponseList(views), &p)
}

// 🟢 GET /api/u/cultos/:id
func (ctrl *CultoController) Get(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	v, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err, "Culto no encontrado")
	}
	return helper.JsonOK(c, "Culto", dto.ToCultoResponse(v))
}

// 🟢 GET /api/u/cultos/:id/estado
func (ctrl *CultoController) Estado(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	v, err := ctrl.svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err, "Culto no encontrado")
	}
	return helper.JsonOK(c, "Estado del culto", dto.ToEstadoResponse(v))
}

// 🟢 POST /api/a/cultos
func (ctrl *CultoController) Create(c *fiber.Ctx) error {
	var req dto.CreateCultoRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	v, err := ctrl.svc.Create(c.UserContext(), m)
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	return helper.JsonCreated(c, "Culto creado", dto.ToCultoResponse(v))
}

// 🟡 PATCH /api/a/cultos/:id
func (ctrl *CultoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	var req dto.UpdateCultoRequest
	if ok, err := helper.ParseAndValidate(c, &req); !ok {
		return err
	}
	in, err := req.ToInput()
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	v, err := ctrl.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return helper.JsonFromError(c, err, "Culto no encontrado")
	}
	return helper.JsonUpdated(c, "Culto actualizado", dto.ToCultoResponse(v))
}

// 🔴 DELETE /api/a/cultos/:id
func (ctrl *CultoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParamUUID(c, "id")
	if err != nil {
		return helper.JsonFromError(c, err, "")
	}
	if err := ctrl.svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err, "Culto no encontrado")
	}
	return helper.JsonDeleted(c, "Culto eliminado", fiber.Map{"culto_id": id})
}

func dateQuery(c *fiber.Ctx, key string, def time.Time) (time.Time, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return def, nil
	}
	d, err := dbtime.ParseDate(s)
	if err != nil {
		return def, fiber.NewError(fiber.StatusBadRequest, key+" inválido (YYYY-MM-DD)")
	}
	return d, nil
}
