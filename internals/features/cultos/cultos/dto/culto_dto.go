package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/cultos/service"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

/* =========================
   Request
========================= */

type CreateCultoRequest struct {
	CultoDate      string  `json:"culto_date" validate:"required,datetime=2006-01-02"`
	CultoStartTime string  `json:"culto_start_time" validate:"required"`
	CultoEndTime   *string `json:"culto_end_time"`
	CultoTipoID    string  `json:"culto_tipo_id" validate:"required,uuid"`
	CultoStatus    string  `json:"culto_status" validate:"omitempty,oneof=planeado celebrado cancelado"`
	CultoNotes     *string `json:"culto_notes" validate:"omitempty,max=2000"`

	// Clave = puesto (intro_reading, closing_reading, teaching, testimonies).
	Assignments map[string]*uuid.UUID `json:"assignments"`
}

func (r *CreateCultoRequest) ToModel() (*model.CultoModel, error) {
	date, err := dbtime.ParseDate(r.CultoDate)
	if err != nil {
		return nil, apperr.Validation("culto_date inválido (YYYY-MM-DD)")
	}
	start, err := dbtime.Parse(r.CultoStartTime)
	if err != nil {
		return nil, apperr.Validation("culto_start_time inválido (HH:MM)")
	}
	tipoID, err := uuid.Parse(r.CultoTipoID)
	if err != nil {
		return nil, apperr.Validation("culto_tipo_id inválido")
	}

	m := &model.CultoModel{
		CultoDate:      date,
		CultoStartTime: start,
		CultoTipoID:    tipoID,
		CultoStatus:    model.CultoStatus(r.CultoStatus),
		CultoNotes:     trimPtr(r.CultoNotes),
	}
	if r.CultoEndTime != nil && strings.TrimSpace(*r.CultoEndTime) != "" {
		end, err := dbtime.Parse(*r.CultoEndTime)
		if err != nil {
			return nil, apperr.Validation("culto_end_time inválido (HH:MM)")
		}
		m.CultoEndTime = &end
	}
	roles, err := parseAssignments(r.Assignments)
	if err != nil {
		return nil, err
	}
	for role, who := range roles {
		m.SetAssignee(role, who)
	}
	return m, nil
}

type UpdateCultoRequest struct {
	CultoDate      *string `json:"culto_date" validate:"omitempty,datetime=2006-01-02"`
	CultoStartTime *string `json:"culto_start_time"`
	CultoEndTime   *string `json:"culto_end_time"`
	CultoTipoID    *string `json:"culto_tipo_id" validate:"omitempty,uuid"`
	CultoStatus    *string `json:"culto_status" validate:"omitempty,oneof=planeado celebrado cancelado"`
	CultoNotes     *string `json:"culto_notes" validate:"omitempty,max=2000"`

	// Un puesto con valor null se desasigna; los puestos ausentes no cambian.
	Assignments map[string]*uuid.UUID `json:"assignments"`
}

func (r *UpdateCultoRequest) ToInput() (service.UpdateInput, error) {
	var in service.UpdateInput
	if r.CultoDate != nil {
		d, err := dbtime.ParseDate(*r.CultoDate)
		if err != nil {
			return in, apperr.Validation("culto_date inválido (YYYY-MM-DD)")
		}
		in.Date = &d
	}
	if r.CultoStartTime != nil {
		t, err := dbtime.Parse(*r.CultoStartTime)
		if err != nil {
			return in, apperr.Validation("culto_start_time inválido (HH:MM)")
		}
		in.Start = &t
	}
	if r.CultoEndTime != nil {
		t, err := dbtime.Parse(*r.CultoEndTime)
		if err != nil {
			return in, apperr.Validation("culto_end_time inválido (HH:MM)")
		}
		in.End = &t
	}
	if r.CultoTipoID != nil {
		id, err := uuid.Parse(*r.CultoTipoID)
		if err != nil {
			return in, apperr.Validation("culto_tipo_id inválido")
		}
		in.TipoID = &id
	}
	if r.CultoStatus != nil {
		st := model.CultoStatus(*r.CultoStatus)
		in.Status = &st
	}
	in.Notes = r.CultoNotes

	roles, err := parseAssignments(r.Assignments)
	if err != nil {
		return in, err
	}
	in.Assignments = roles
	return in, nil
}

func parseAssignments(raw map[string]*uuid.UUID) (map[tipoModel.Role]*uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[tipoModel.Role]*uuid.UUID, len(raw))
	for k, v := range raw {
		role := tipoModel.Role(strings.ToLower(strings.TrimSpace(k)))
		if model.AssigneeColumn(role) == "" {
			return nil, apperr.Validation("puesto desconocido %q", k)
		}
		if v != nil && *v == uuid.Nil {
			v = nil
		}
		out[role] = v
	}
	return out, nil
}

/* =========================
   Response
========================= */

type AssignmentsResponse struct {
	IntroReading   *uuid.UUID `json:"intro_reading"`
	ClosingReading *uuid.UUID `json:"closing_reading"`
	Teaching       *uuid.UUID `json:"teaching"`
	Testimonies    *uuid.UUID `json:"testimonies"`
}

type CultoResponse struct {
	CultoID                uuid.UUID           `json:"culto_id"`
	CultoDate              string              `json:"culto_date"`
	CultoStartTime         string              `json:"culto_start_time"`
	CultoEndTime           *string             `json:"culto_end_time,omitempty"`
	CultoTipoID            uuid.UUID           `json:"culto_tipo_id"`
	CultoTipoName          string              `json:"culto_tipo_name,omitempty"`
	CultoTipoColor         *string             `json:"culto_tipo_color,omitempty"`
	CultoStatus            model.CultoStatus   `json:"culto_status"`
	CultoIsHoliday         bool                `json:"culto_is_holiday"`
	CultoIsHolidayAdjusted bool                `json:"culto_is_holiday_adjusted"`
	Assignments            AssignmentsResponse `json:"assignments"`
	CultoNotes             *string             `json:"culto_notes,omitempty"`
	Completion             service.Completion  `json:"completion"`
	MissingRoles           []tipoModel.Role    `json:"missing_roles"`
	CultoCreatedAt         time.Time           `json:"culto_created_at"`
	CultoUpdatedAt         time.Time           `json:"culto_updated_at"`
}

func ToCultoResponse(v service.CultoView) CultoResponse {
	c := v.Culto
	resp := CultoResponse{
		CultoID:                c.CultoID,
		CultoDate:              dbtime.FormatDate(c.CultoDate),
		CultoStartTime:         c.CultoStartTime.String(),
		CultoTipoID:            c.CultoTipoID,
		CultoStatus:            c.CultoStatus,
		CultoIsHoliday:         c.CultoIsHoliday,
		CultoIsHolidayAdjusted: c.CultoIsHolidayAdjusted,
		Assignments: AssignmentsResponse{
			IntroReading:   c.CultoIntroReaderID,
			ClosingReading: c.CultoClosingReaderID,
			Teaching:       c.CultoTeacherID,
			Testimonies:    c.CultoTestimoniesID,
		},
		CultoNotes:     c.CultoNotes,
		Completion:     v.Completion,
		MissingRoles:   v.MissingRoles,
		CultoCreatedAt: c.CultoCreatedAt,
		CultoUpdatedAt: c.CultoUpdatedAt,
	}
	if c.CultoEndTime != nil {
		s := c.CultoEndTime.String()
		resp.CultoEndTime = &s
	}
	if c.Tipo != nil {
		resp.CultoTipoName = c.Tipo.TipoCultoName
		resp.CultoTipoColor = c.Tipo.TipoCultoColor
	}
	return resp
}

func ToCultoResponseList(views []service.CultoView) []CultoResponse {
	out := make([]CultoResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToCultoResponse(v))
	}
	return out
}

// EstadoResponse es la respuesta de GET /cultos/:id/estado.
type EstadoResponse struct {
	CultoID                uuid.UUID          `json:"culto_id"`
	Completion             service.Completion `json:"completion"`
	MissingRoles           []tipoModel.Role   `json:"missing_roles"`
	CultoIsHolidayAdjusted bool               `json:"culto_is_holiday_adjusted"`
}

func ToEstadoResponse(v service.CultoView) EstadoResponse {
	return EstadoResponse{
		CultoID:                v.Culto.CultoID,
		Completion:             v.Completion,
		MissingRoles:           v.MissingRoles,
		CultoIsHolidayAdjusted: v.Culto.CultoIsHolidayAdjusted,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
