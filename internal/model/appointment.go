package model

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
)

// Appointment books one doctor for one pet at a naive local timestamp.
// (DoctorID, Time) is unique across the table.
type Appointment struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	Code      string            `json:"code" gorm:"size:32;not null;index"`
	PetID     uint              `json:"pet_id" gorm:"not null;index"`
	DoctorID  uint              `json:"doctor_id" gorm:"not null;uniqueIndex:ux_appointments_doctor_slot,priority:1"`
	Time      time.Time         `json:"time" gorm:"column:appointment_time;not null;uniqueIndex:ux_appointments_doctor_slot,priority:2"`
	Status    AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'SCHEDULED';index"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	// Relations
	Pet    Pet    `json:"-" gorm:"foreignKey:PetID"`
	Doctor Doctor `json:"-" gorm:"foreignKey:DoctorID"`
}

// NaiveTime strips location and sub-second precision so that slot
// comparisons behave the same in memory and in every SQL backend.
func NaiveTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// DayBounds returns [start of day, start of next day) for t's calendar date.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatAppointmentCode renders APT-YYYYMMDD-D{doctor:03d}-{seq:03d}.
func FormatAppointmentCode(doctorID uint, at time.Time, seq int64) string {
	return fmt.Sprintf("APT-%s-D%03d-%03d", at.Format("20060102"), doctorID, seq)
}
