package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel es de solo lectura: las filas las crea el servicio de autenticación.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"column:full_name;type:varchar(150)" json:"full_name"`
	Email     *string   `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
