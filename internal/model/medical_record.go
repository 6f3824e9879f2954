package model

import (
	"time"

	"gorm.io/datatypes"
)

// MedicalRecord captures the outcome of one visit. One per appointment.
type MedicalRecord struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	AppointmentID uint           `json:"appointment_id" gorm:"not null;uniqueIndex:ux_medical_records_appointment"`
	PetID         uint           `json:"pet_id" gorm:"not null;index"`
	VisitDate     datatypes.Date `json:"visit_date" gorm:"not null"`
	Diagnosis     string         `json:"diagnosis" gorm:"type:text;not null"`
	Prescription  string         `json:"prescription" gorm:"type:text;not null"`
	CreatedAt     time.Time      `json:"created_at"`

	// Relations
	Pet         Pet         `json:"-" gorm:"foreignKey:PetID"`
	Appointment Appointment `json:"-" gorm:"foreignKey:AppointmentID"`
}
