package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
)

type LecturaKind string

const (
	LecturaIntro   LecturaKind = "introduccion"
	LecturaClosing LecturaKind = "final"
)

type LecturaModel struct {
	LecturaID        uuid.UUID   `gorm:"column:lectura_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lectura_id"`
	LecturaCultoID   uuid.UUID   `gorm:"column:lectura_culto_id;type:uuid;not null;index" json:"lectura_culto_id"`
	LecturaKind      LecturaKind `gorm:"column:lectura_kind;type:varchar(16);not null" json:"lectura_kind"`
	LecturaBook      string      `gorm:"column:lectura_book;type:varchar(60);not null" json:"lectura_book"`
	LecturaChapter   int         `gorm:"column:lectura_chapter;not null" json:"lectura_chapter"`
	LecturaVerseFrom *int        `gorm:"column:lectura_verse_from" json:"lectura_verse_from,omitempty"`
	LecturaVerseTo   *int        `gorm:"column:lectura_verse_to" json:"lectura_verse_to,omitempty"`
	LecturaReaderID  *uuid.UUID  `gorm:"column:lectura_reader_id;type:uuid" json:"lectura_reader_id,omitempty"`

	Culto *cultoModel.CultoModel `gorm:"foreignKey:LecturaCultoID;references:CultoID;constraint:OnDelete:CASCADE" json:"-"`

	LecturaCreatedAt time.Time `gorm:"column:lectura_created_at;type:timestamptz;autoCreateTime" json:"lectura_created_at"`
	LecturaUpdatedAt time.Time `gorm:"column:lectura_updated_at;type:timestamptz;autoUpdateTime" json:"lectura_updated_at"`
}

func (LecturaModel) TableName() string {
	return "lecturas_biblicas"
}

// Reference devuelve la cita: "Juan 3", "Juan 3:16" o "Juan 3:16-18".
func (l *LecturaModel) Reference() string {
	ref := fmt.Sprintf("%s %d", l.LecturaBook, l.LecturaChapter)
	if l.LecturaVerseFrom == nil {
		return ref
	}
	ref = fmt.Sprintf("%s:%d", ref, *l.LecturaVerseFrom)
	if l.LecturaVerseTo != nil && *l.LecturaVerseTo > *l.LecturaVerseFrom {
		ref = fmt.Sprintf("%s-%d", ref, *l.LecturaVerseTo)
	}
	return ref
}
