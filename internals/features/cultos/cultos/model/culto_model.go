package model

import (
	"time"

	"github.com/google/uuid"

	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/dbtime"
)

type CultoStatus string

const (
	CultoPlanned   CultoStatus = "planeado"
	CultoHeld      CultoStatus = "celebrado"
	CultoCancelled CultoStatus = "cancelado"
)

func (s CultoStatus) Valid() bool {
	switch s {
	case CultoPlanned, CultoHeld, CultoCancelled:
		return true
	}
	return false
}

type CultoModel struct {
	CultoID uuid.UUID `gorm:"column:culto_id;type:uuid;default:gen_random_uuid();primaryKey" json:"culto_id"`

	CultoDate      time.Time   `gorm:"column:culto_date;type:date;not null;index:idx_cultos_date" json:"culto_date"`
	CultoStartTime dbtime.Tod  `gorm:"column:culto_start_time;type:time;not null" json:"culto_start_time"`
	CultoEndTime   *dbtime.Tod `gorm:"column:culto_end_time;type:time" json:"culto_end_time,omitempty"`

	CultoTipoID uuid.UUID                 `gorm:"column:culto_tipo_id;type:uuid;not null;index" json:"culto_tipo_id"`
	Tipo        *tipoModel.TipoCultoModel `gorm:"foreignKey:CultoTipoID;references:TipoCultoID" json:"tipo,omitempty"`

	CultoStatus            CultoStatus `gorm:"column:culto_status;type:varchar(16);not null;default:'planeado'" json:"culto_status"`
	CultoIsHoliday         bool        `gorm:"column:culto_is_holiday;not null;default:false" json:"culto_is_holiday"`
	CultoIsHolidayAdjusted bool        `gorm:"column:culto_is_holiday_adjusted;not null;default:false" json:"culto_is_holiday_adjusted"`

	// Asignaciones (perfiles del servicio de autenticación)
	CultoIntroReaderID   *uuid.UUID `gorm:"column:culto_intro_reader_id;type:uuid" json:"culto_intro_reader_id,omitempty"`
	CultoClosingReaderID *uuid.UUID `gorm:"column:culto_closing_reader_id;type:uuid" json:"culto_closing_reader_id,omitempty"`
	CultoTeacherID       *uuid.UUID `gorm:"column:culto_teacher_id;type:uuid" json:"culto_teacher_id,omitempty"`
	CultoTestimoniesID   *uuid.UUID `gorm:"column:culto_testimonies_id;type:uuid" json:"culto_testimonies_id,omitempty"`

	CultoNotes *string `gorm:"column:culto_notes;type:text" json:"culto_notes,omitempty"`

	CultoCreatedAt time.Time `gorm:"column:culto_created_at;type:timestamptz;autoCreateTime" json:"culto_created_at"`
	CultoUpdatedAt time.Time `gorm:"column:culto_updated_at;type:timestamptz;autoUpdateTime" json:"culto_updated_at"`
}

func (CultoModel) TableName() string {
	return "cultos"
}

// Assignee devuelve la persona asignada al puesto r, o nil.
func (c *CultoModel) Assignee(r tipoModel.Role) *uuid.UUID {
	switch r {
	case tipoModel.RoleIntroReading:
		return c.CultoIntroReaderID
	case tipoModel.RoleClosingReading:
		return c.CultoClosingReaderID
	case tipoModel.RoleTeaching:
		return c.CultoTeacherID
	case tipoModel.RoleTestimonies:
		return c.CultoTestimoniesID
	default:
		return nil
	}
}

// SetAssignee asigna (o quita, con nil) la persona del puesto r.
func (c *CultoModel) SetAssignee(r tipoModel.Role, id *uuid.UUID) {
	switch r {
	case tipoModel.RoleIntroReading:
		c.CultoIntroReaderID = id
	case tipoModel.RoleClosingReading:
		c.CultoClosingReaderID = id
	case tipoModel.RoleTeaching:
		c.CultoTeacherID = id
	case tipoModel.RoleTestimonies:
		c.CultoTestimoniesID = id
	}
}

// AssigneeColumn es la columna de cultos que guarda el puesto r.
func AssigneeColumn(r tipoModel.Role) string {
	switch r {
	case tipoModel.RoleIntroReading:
		return "culto_intro_reader_id"
	case tipoModel.RoleClosingReading:
		return "culto_closing_reader_id"
	case tipoModel.RoleTeaching:
		return "culto_teacher_id"
	case tipoModel.RoleTestimonies:
		return "culto_testimonies_id"
	default:
		return ""
	}
}
