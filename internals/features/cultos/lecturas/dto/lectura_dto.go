package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pulpito_backend/internals/features/cultos/lecturas/model"
	"pulpito_backend/internals/helpers/apperr"
)

type CreateLecturaRequest struct {
	LecturaKind      string     `json:"lectura_kind" validate:"required,oneof=introduccion final"`
	LecturaBook      string     `json:"lectura_book" validate:"required,max=60"`
	LecturaChapter   int        `json:"lectura_chapter" validate:"required,min=1,max=150"`
	LecturaVerseFrom *int       `json:"lectura_verse_from" validate:"omitempty,min=1,max=176"`
	LecturaVerseTo   *int       `json:"lectura_verse_to" validate:"omitempty,min=1,max=176"`
	LecturaReaderID  *uuid.UUID `json:"lectura_reader_id"`
}

func (r *CreateLecturaRequest) ToModel(cultoID uuid.UUID) (*model.LecturaModel, error) {
	if r.LecturaVerseTo != nil {
		if r.LecturaVerseFrom == nil {
			return nil, apperr.Validation("lectura_verse_to requiere lectura_verse_from")
		}
		if *r.LecturaVerseTo < *r.LecturaVerseFrom {
			return nil, apperr.Validation("lectura_verse_to no puede ser menor que lectura_verse_from")
		}
	}
	return &model.LecturaModel{
		LecturaCultoID:   cultoID,
		LecturaKind:      model.LecturaKind(r.LecturaKind),
		LecturaBook:      strings.TrimSpace(r.LecturaBook),
		LecturaChapter:   r.LecturaChapter,
		LecturaVerseFrom: r.LecturaVerseFrom,
		LecturaVerseTo:   r.LecturaVerseTo,
		LecturaReaderID:  r.LecturaReaderID,
	}, nil
}

type LecturaResponse struct {
	LecturaID        uuid.UUID         `json:"lectura_id"`
	LecturaCultoID   uuid.UUID         `json:"lectura_culto_id"`
	LecturaKind      model.LecturaKind `json:"lectura_kind"`
	LecturaReference string            `json:"lectura_reference"`
	LecturaBook      string            `json:"lectura_book"`
	LecturaChapter   int               `json:"lectura_chapter"`
	LecturaVerseFrom *int              `json:"lectura_verse_from,omitempty"`
	LecturaVerseTo   *int              `json:"lectura_verse_to,omitempty"`
	LecturaReaderID  *uuid.UUID        `json:"lectura_reader_id,omitempty"`
	LecturaCreatedAt time.Time         `json:"lectura_created_at"`
}

func ToLecturaResponse(m *model.LecturaModel) LecturaResponse {
	return LecturaResponse{
		LecturaID:        m.LecturaID,
		LecturaCultoID:   m.LecturaCultoID,
		LecturaKind:      m.LecturaKind,
		LecturaReference: m.Reference(),
		LecturaBook:      m.LecturaBook,
		LecturaChapter:   m.LecturaChapter,
		LecturaVerseFrom: m.LecturaVerseFrom,
		LecturaVerseTo:   m.LecturaVerseTo,
		LecturaReaderID:  m.LecturaReaderID,
		LecturaCreatedAt: m.LecturaCreatedAt,
	}
}
