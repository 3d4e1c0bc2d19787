package dto

import (
	"strings"

	"pulpito_backend/internals/features/catalogo/himnos/model"
)

type CreateHimnoRequest struct {
	HimnoKind   string  `json:"himno_kind" validate:"required,oneof=himno coro"`
	HimnoNumber int     `json:"himno_number" validate:"required,min=1"`
	HimnoTitle  string  `json:"himno_title" validate:"required,max=200"`
	HimnoLyrics *string `json:"himno_lyrics"`
}

func (r *CreateHimnoRequest) ToModel() *model.HimnoModel {
	return &model.HimnoModel{
		HimnoKind:   model.HimnoKind(r.HimnoKind),
		HimnoNumber: r.HimnoNumber,
		HimnoTitle:  strings.TrimSpace(r.HimnoTitle),
		HimnoLyrics: r.HimnoLyrics,
	}
}

type UpdateHimnoRequest struct {
	HimnoKind   *string `json:"himno_kind" validate:"omitempty,oneof=himno coro"`
	HimnoNumber *int    `json:"himno_number" validate:"omitempty,min=1"`
	HimnoTitle  *string `json:"himno_title" validate:"omitempty,max=200"`
	HimnoLyrics *string `json:"himno_lyrics"`
}

func (r *UpdateHimnoRequest) Apply(m *model.HimnoModel) map[string]any {
	up := map[string]any{}
	if r.HimnoKind != nil {
		m.HimnoKind = model.HimnoKind(*r.HimnoKind)
		up["himno_kind"] = m.HimnoKind
	}
	if r.HimnoNumber != nil {
		m.HimnoNumber = *r.HimnoNumber
		up["himno_number"] = m.HimnoNumber
	}
	if r.HimnoTitle != nil {
		m.HimnoTitle = strings.TrimSpace(*r.HimnoTitle)
		up["himno_title"] = m.HimnoTitle
	}
	if r.HimnoLyrics != nil {
		m.HimnoLyrics = r.HimnoLyrics
		up["himno_lyrics"] = r.HimnoLyrics
	}
	return up
}
