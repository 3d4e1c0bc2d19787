package model

import (
	"time"

	"github.com/google/uuid"
)

type HimnoKind string

const (
	HimnoKindHimno HimnoKind = "himno"
	HimnoKindCoro  HimnoKind = "coro"
)

type HimnoModel struct {
	HimnoID     uuid.UUID `gorm:"column:himno_id;type:uuid;default:gen_random_uuid();primaryKey" json:"himno_id"`
	HimnoKind   HimnoKind `gorm:"column:himno_kind;type:varchar(8);not null;uniqueIndex:uq_himnos_kind_number" json:"himno_kind"`
	HimnoNumber int       `gorm:"column:himno_number;not null;uniqueIndex:uq_himnos_kind_number" json:"himno_number"`
	HimnoTitle  string    `gorm:"column:himno_title;type:varchar(200);not null" json:"himno_title"`
	HimnoLyrics *string   `gorm:"column:himno_lyrics;type:text" json:"himno_lyrics,omitempty"`

	HimnoCreatedAt time.Time `gorm:"column:himno_created_at;type:timestamptz;autoCreateTime" json:"himno_created_at"`
	HimnoUpdatedAt time.Time `gorm:"column:himno_updated_at;type:timestamptz;autoUpdateTime" json:"himno_updated_at"`
}

func (HimnoModel) TableName() string {
	return "himnos"
}
