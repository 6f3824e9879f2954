package model

import "time"

// DefaultSpecialization is assigned to doctors created at registration time.
const DefaultSpecialization = "General"

// Doctor is the clinical profile linked 1:1 to a User with role DOCTOR.
// Doctors are never hard-deleted; Active=false hides them from booking.
type Doctor struct {
	ID             uint      `json:"doctor_id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:ux_doctors_user"`
	Specialization string    `json:"specialization" gorm:"size:100;not null"`
	Active         bool      `json:"active" gorm:"not null;default:true;index"`
	RegisteredAt   time.Time `json:"registered_at" gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// DisplayName is the name shown on appointments.
func (d *Doctor) DisplayName() string {
	return d.User.Username
}
