package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the clinic repositories so services can run several of them
// inside one transaction.
type Store struct {
	db *gorm.DB

	Users          UserRepository
	Doctors        DoctorRepository
	Pets           PetRepository
	Appointments   AppointmentRepository
	MedicalRecords MedicalRecordRepository
}

// NewStore builds every repository on top of db.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:             db,
		Users:          NewUserRepository(db),
		Doctors:        NewDoctorRepository(db),
		Pets:           NewPetRepository(db),
		Appointments:   NewAppointmentRepository(db),
		MedicalRecords: NewMedicalRecordRepository(db),
	}
}

// WithTransaction runs fn with a Store whose repositories share one database
// transaction. fn must only use the tx store it receives. A Store assembled
// without a database (e.g. from mocks) runs fn directly.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	if s.db == nil {
		return fn(ctx, s)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewStore(tx))
	})
}
