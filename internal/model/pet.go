package model

import (
	"time"

	"gorm.io/datatypes"
)

// Pet is owned exclusively by one OWNER user.
type Pet struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OwnerID   uint           `json:"owner_id" gorm:"not null;index"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Species   string         `json:"species" gorm:"size:50;not null"`
	Breed     string         `json:"breed" gorm:"size:100;not null"`
	BirthDate datatypes.Date `json:"birth_date" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:OwnerID"`
}
