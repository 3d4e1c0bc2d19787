package model

import (
	"time"

	"github.com/google/uuid"
)

type FestivoCategory string

const (
	FestivoNational FestivoCategory = "nacional"
	FestivoRegional FestivoCategory = "regional"
	FestivoLocal    FestivoCategory = "local"
	// Laborable tratado como festivo a efectos de horario.
	FestivoAdjustedWorkday FestivoCategory = "laborable"
)

func (c FestivoCategory) Valid() bool {
	switch c {
	case FestivoNational, FestivoRegional, FestivoLocal, FestivoAdjustedWorkday:
		return true
	}
	return false
}

// Varios festivos pueden compartir fecha (p. ej. nacional + local).
type FestivoModel struct {
	FestivoID          uuid.UUID       `gorm:"column:festivo_id;type:uuid;default:gen_random_uuid();primaryKey" json:"festivo_id"`
	FestivoDate        time.Time       `gorm:"column:festivo_date;type:date;not null;index:idx_festivos_date" json:"festivo_date"`
	FestivoCategory    FestivoCategory `gorm:"column:festivo_category;type:varchar(16);not null" json:"festivo_category"`
	FestivoDescription *string         `gorm:"column:festivo_description;type:text" json:"festivo_description,omitempty"`
	FestivoCreatedAt   time.Time       `gorm:"column:festivo_created_at;type:timestamptz;autoCreateTime" json:"festivo_created_at"`
}

func (FestivoModel) TableName() string {
	return "festivos"
}
