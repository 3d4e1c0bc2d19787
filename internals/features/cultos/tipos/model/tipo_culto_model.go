package model

import (
	"time"

	"github.com/google/uuid"

	"pulpito_backend/internals/helpers/dbtime"
)

// Role es uno de los puestos que puede exigir un tipo de culto.
type Role string

const (
	RoleIntroReading   Role = "intro_reading"
	RoleClosingReading Role = "closing_reading"
	RoleTeaching       Role = "teaching"
	RoleTestimonies    Role = "testimonies"
)

// Label es el nombre del puesto para mostrar en avisos.
func (r Role) Label() string {
	switch r {
	case RoleIntroReading:
		return "lectura de introducción"
	case RoleClosingReading:
		return "lectura final"
	case RoleTeaching:
		return "enseñanza"
	case RoleTestimonies:
		return "testimonios"
	default:
		return string(r)
	}
}

// AllRoles es el conjunto cerrado de puestos, en el orden en que se muestran.
var AllRoles = [...]Role{RoleIntroReading, RoleClosingReading, RoleTeaching, RoleTestimonies}

type TipoCultoModel struct {
	TipoCultoID           uuid.UUID   `gorm:"column:tipo_culto_id;type:uuid;default:gen_random_uuid();primaryKey" json:"tipo_culto_id"`
	TipoCultoName         string      `gorm:"column:tipo_culto_name;type:varchar(120);not null;uniqueIndex" json:"tipo_culto_name"`
	TipoCultoDescription  *string     `gorm:"column:tipo_culto_description;type:text" json:"tipo_culto_description,omitempty"`
	TipoCultoColor        *string     `gorm:"column:tipo_culto_color;type:varchar(16)" json:"tipo_culto_color,omitempty"`
	TipoCultoDefaultStart *dbtime.Tod `gorm:"column:tipo_culto_default_start;type:time" json:"tipo_culto_default_start,omitempty"`
	TipoCultoDefaultEnd   *dbtime.Tod `gorm:"column:tipo_culto_default_end;type:time" json:"tipo_culto_default_end,omitempty"`

	TipoCultoRequiresIntroReading   bool `gorm:"column:tipo_culto_requires_intro_reading;not null;default:false" json:"tipo_culto_requires_intro_reading"`
	TipoCultoRequiresClosingReading bool `gorm:"column:tipo_culto_requires_closing_reading;not null;default:false" json:"tipo_culto_requires_closing_reading"`
	TipoCultoRequiresTeaching       bool `gorm:"column:tipo_culto_requires_teaching;not null;default:false" json:"tipo_culto_requires_teaching"`
	TipoCultoRequiresTestimonies    bool `gorm:"column:tipo_culto_requires_testimonies;not null;default:false" json:"tipo_culto_requires_testimonies"`

	TipoCultoCreatedAt time.Time `gorm:"column:tipo_culto_created_at;type:timestamptz;autoCreateTime" json:"tipo_culto_created_at"`
	TipoCultoUpdatedAt time.Time `gorm:"column:tipo_culto_updated_at;type:timestamptz;autoUpdateTime" json:"tipo_culto_updated_at"`
}

func (TipoCultoModel) TableName() string {
	return "tipos_culto"
}

// Requires indica si el tipo exige el puesto r.
func (t *TipoCultoModel) Requires(r Role) bool {
	switch r {
	case RoleIntroReading:
		return t.TipoCultoRequiresIntroReading
	case RoleClosingReading:
		return t.TipoCultoRequiresClosingReading
	case RoleTeaching:
		return t.TipoCultoRequiresTeaching
	case RoleTestimonies:
		return t.TipoCultoRequiresTestimonies
	default:
		return false
	}
}
