package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

// Request

type CreateTipoCultoRequest struct {
	TipoCultoName         string  `json:"tipo_culto_name" validate:"required,min=2,max=120"`
	TipoCultoDescription  *string `json:"tipo_culto_description" validate:"omitempty,max=500"`
	TipoCultoColor        *string `json:"tipo_culto_color" validate:"omitempty,hexcolor"`
	TipoCultoDefaultStart *string `json:"tipo_culto_default_start" validate:"omitempty"`
	TipoCultoDefaultEnd   *string `json:"tipo_culto_default_end" validate:"omitempty"`

	TipoCultoRequiresIntroReading   bool `json:"tipo_culto_requires_intro_reading"`
	TipoCultoRequiresClosingReading bool `json:"tipo_culto_requires_closing_reading"`
	TipoCultoRequiresTeaching       bool `json:"tipo_culto_requires_teaching"`
	TipoCultoRequiresTestimonies    bool `json:"tipo_culto_requires_testimonies"`
}

func (r *CreateTipoCultoRequest) ToModel() (*model.TipoCultoModel, error) {
	start, err := parseOptionalTod("tipo_culto_default_start", r.TipoCultoDefaultStart)
	if err != nil {
		return nil, err
	}
	end, err := parseOptionalTod("tipo_culto_default_end", r.TipoCultoDefaultEnd)
	if err != nil {
		return nil, err
	}
	return &model.TipoCultoModel{
		TipoCultoName:                   strings.TrimSpace(r.TipoCultoName),
		TipoCultoDescription:            trimPtr(r.TipoCultoDescription),
		TipoCultoColor:                  trimPtr(r.TipoCultoColor),
		TipoCultoDefaultStart:           start,
		TipoCultoDefaultEnd:             end,
		TipoCultoRequiresIntroReading:   r.TipoCultoRequiresIntroReading,
		TipoCultoRequiresClosingReading: r.TipoCultoRequiresClosingReading,
		TipoCultoRequiresTeaching:       r.TipoCultoRequiresTeaching,
		TipoCultoRequiresTestimonies:    r.TipoCultoRequiresTestimonies,
	}, nil
}

// UpdateTipoCultoRequest: solo se aplican los campos presentes.
type UpdateTipoCultoRequest struct {
	TipoCultoName         *string `json:"tipo_culto_name" validate:"omitempty,min=2,max=120"`
	TipoCultoDescription  *string `json:"tipo_culto_description" validate:"omitempty,max=500"`
	TipoCultoColor        *string `json:"tipo_culto_color" validate:"omitempty,hexcolor"`
	TipoCultoDefaultStart *string `json:"tipo_culto_default_start"`
	TipoCultoDefaultEnd   *string `json:"tipo_culto_default_end"`

	TipoCultoRequiresIntroReading   *bool `json:"tipo_culto_requires_intro_reading"`
	TipoCultoRequiresClosingReading *bool `json:"tipo_culto_requires_closing_reading"`
	TipoCultoRequiresTeaching       *bool `json:"tipo_culto_requires_teaching"`
	TipoCultoRequiresTestimonies    *bool `json:"tipo_culto_requires_testimonies"`
}

// Apply devuelve el mapa de columnas a actualizar.
func (r *UpdateTipoCultoRequest) Apply(m *model.TipoCultoModel) (map[string]any, error) {
	up := map[string]any{}
	if r.TipoCultoName != nil {
		m.TipoCultoName = strings.TrimSpace(*r.TipoCultoName)
		up["tipo_culto_name"] = m.TipoCultoName
	}
	if r.TipoCultoDescription != nil {
		m.TipoCultoDescription = trimPtr(r.TipoCultoDescription)
		up["tipo_culto_description"] = m.TipoCultoDescription
	}
	if r.TipoCultoColor != nil {
		m.TipoCultoColor = trimPtr(r.TipoCultoColor)
		up["tipo_culto_color"] = m.TipoCultoColor
	}
	if r.TipoCultoDefaultStart != nil {
		t, err := parseOptionalTod("tipo_culto_default_start", r.TipoCultoDefaultStart)
		if err != nil {
			return nil, err
		}
		m.TipoCultoDefaultStart = t
		up["tipo_culto_default_start"] = todValue(t)
	}
	if r.TipoCultoDefaultEnd != nil {
		t, err := parseOptionalTod("tipo_culto_default_end", r.TipoCultoDefaultEnd)
		if err != nil {
			return nil, err
		}
		m.TipoCultoDefaultEnd = t
		up["tipo_culto_default_end"] = todValue(t)
	}
	setBool := func(col string, src *bool, dst *bool) {
		if src != nil {
			*dst = *src
			up[col] = *src
		}
	}
	setBool("tipo_culto_requires_intro_reading", r.TipoCultoRequiresIntroReading, &m.TipoCultoRequiresIntroReading)
	setBool("tipo_culto_requires_closing_reading", r.TipoCultoRequiresClosingReading, &m.TipoCultoRequiresClosingReading)
	setBool("tipo_culto_requires_teaching", r.TipoCultoRequiresTeaching, &m.TipoCultoRequiresTeaching)
	setBool("tipo_culto_requires_testimonies", r.TipoCultoRequiresTestimonies, &m.TipoCultoRequiresTestimonies)
	return up, nil
}

// Response

type TipoCultoResponse struct {
	TipoCultoID            uuid.UUID    `json:"tipo_culto_id"`
	TipoCultoName          string       `json:"tipo_culto_name"`
	TipoCultoDescription   *string      `json:"tipo_culto_description,omitempty"`
	TipoCultoColor         *string      `json:"tipo_culto_color,omitempty"`
	TipoCultoDefaultStart  *string      `json:"tipo_culto_default_start,omitempty"`
	TipoCultoDefaultEnd    *string      `json:"tipo_culto_default_end,omitempty"`
	TipoCultoRequiredRoles []model.Role `json:"tipo_culto_required_roles"`
	TipoCultoCreatedAt     time.Time    `json:"tipo_culto_created_at"`
	TipoCultoUpdatedAt     time.Time    `json:"tipo_culto_updated_at"`
}

func ToTipoCultoResponse(m *model.TipoCultoModel) TipoCultoResponse {
	roles := []model.Role{}
	for _, r := range model.AllRoles {
		if m.Requires(r) {
			roles = append(roles, r)
		}
	}
	return TipoCultoResponse{
		TipoCultoID:            m.TipoCultoID,
		TipoCultoName:          m.TipoCultoName,
		TipoCultoDescription:   m.TipoCultoDescription,
		TipoCultoColor:         m.TipoCultoColor,
		TipoCultoDefaultStart:  todString(m.TipoCultoDefaultStart),
		TipoCultoDefaultEnd:    todString(m.TipoCultoDefaultEnd),
		TipoCultoRequiredRoles: roles,
		TipoCultoCreatedAt:     m.TipoCultoCreatedAt,
		TipoCultoUpdatedAt:     m.TipoCultoUpdatedAt,
	}
}

func ToTipoCultoResponseList(rows []model.TipoCultoModel) []TipoCultoResponse {
	out := make([]TipoCultoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToTipoCultoResponse(&rows[i]))
	}
	return out
}

func parseOptionalTod(field string, s *string) (*dbtime.Tod, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := dbtime.Parse(*s)
	if err != nil {
		return nil, apperr.Validation("%s inválido (HH:MM)", field)
	}
	return &t, nil
}

func todValue(t *dbtime.Tod) any {
	if t == nil {
		return nil
	}
	return *t
}

func todString(t *dbtime.Tod) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
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
