package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "petclinic/internal/errors"
	"petclinic/internal/logger"
	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// MedicalRecordInput carries a doctor's notes for one appointment.
// A nil VisitDate defaults to the appointment's date.
type MedicalRecordInput struct {
	AppointmentID uint
	VisitDate     *time.Time
	Diagnosis     string
	Prescription  string
}

// MedicalRecordService handles medical records. Every operation is doctor-only.
type MedicalRecordService interface {
	Create(ctx context.Context, p Principal, in MedicalRecordInput) (*model.MedicalRecord, error)
	ListForPet(ctx context.Context, p Principal, petID uint) ([]model.MedicalRecord, error)
}

type medicalRecordService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewMedicalRecordService creates a new medical record service.
func NewMedicalRecordService(store *repository.Store, log *slog.Logger) MedicalRecordService {
	if log == nil {
		log = logger.Discard()
	}
	return &medicalRecordService{store: store, logger: log}
}

// Create records the outcome of an appointment assigned to the calling doctor.
func (s *medicalRecordService) Create(ctx context.Context, p Principal, in MedicalRecordInput) (*model.MedicalRecord, error) {
	if !p.IsDoctor() {
		return nil, apperrors.ErrRoleNotPermitted
	}

	var record *model.MedicalRecord
	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx *repository.Store) error {
		doctor, err := doctorFor(ctx, tx, p)
		if err != nil {
			return err
		}
		appt, err := tx.Appointments.FindByIDForUpdate(ctx, in.AppointmentID)
		if err != nil {
			return mapNotFound(err, apperrors.ErrAppointmentNotFound)
		}
		if appt.DoctorID != doctor.ID {
			return apperrors.ErrNotAssignedDoctor
		}

		_, err = tx.MedicalRecords.FindByAppointmentID(ctx, appt.ID)
		if err == nil {
			return apperrors.ErrRecordExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find medical record: %w", err)
		}

		visit := appt.Time
		if in.VisitDate != nil {
			visit = *in.VisitDate
		}
		record = &model.MedicalRecord{
			AppointmentID: appt.ID,
			PetID:         appt.PetID,
			VisitDate:     datatypes.Date(visit),
			Diagnosis:     in.Diagnosis,
			Prescription:  in.Prescription,
		}
		if err := tx.MedicalRecords.Create(ctx, record); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrRecordExists
			}
			return fmt.Errorf("create medical record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "medical record created",
		"record_id", record.ID, "appointment_id", record.AppointmentID, "pet_id", record.PetID)
	return record, nil
}

// ListForPet returns the pet's records, newest visit first.
func (s *medicalRecordService) ListForPet(ctx context.Context, p Principal, petID uint) ([]model.MedicalRecord, error) {
	if !p.IsDoctor() {
		return nil, apperrors.ErrRoleNotPermitted
	}
	if _, err := s.store.Pets.FindByID(ctx, petID); err != nil {
		return nil, mapNotFound(err, apperrors.ErrPetNotFound)
	}
	records, err := s.store.MedicalRecords.FindByPetID(ctx, petID)
	if err != nil {
		return nil, fmt.Errorf("find medical records: %w", err)
	}
	return records, nil
}
