package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petclinic/internal/model"
)

// MedicalRecordRepository defines medical record persistence operations.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	FindByPetID(ctx context.Context, petID uint) ([]model.MedicalRecord, error)
	FindByAppointmentID(ctx context.Context, appointmentID uint) (*model.MedicalRecord, error)
	// LastVisitDate returns the most recent visit date for the pet, or nil when it has no records.
	LastVisitDate(ctx context.Context, petID uint) (*time.Time, error)
	DeleteByPetID(ctx context.Context, petID uint) error
	DeleteByAppointmentID(ctx context.Context, appointmentID uint) error
}

type medicalRecordRepository struct {
	db *gorm.DB
}

// NewMedicalRecordRepository creates a new medical record repository.
func NewMedicalRecordRepository(db *gorm.DB) MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

func (r *medicalRecordRepository) FindByPetID(ctx context.Context, petID uint) ([]model.MedicalRecord, error) {
	var records []model.MedicalRecord
	if err := r.db.WithContext(ctx).Where("pet_id = ?", petID).
		Order("visit_date DESC, id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *medicalRecordRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) (*model.MedicalRecord, error) {
	var record model.MedicalRecord
	if err := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) LastVisitDate(ctx context.Context, petID uint) (*time.Time, error) {
	var record model.MedicalRecord
	err := r.db.WithContext(ctx).Select("visit_date").Where("pet_id = ?", petID).
		Order("visit_date DESC").Limit(1).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	visit := time.Time(record.VisitDate)
	return &visit, nil
}

func (r *medicalRecordRepository) DeleteByPetID(ctx context.Context, petID uint) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&model.MedicalRecord{}).Error
}

func (r *medicalRecordRepository) DeleteByAppointmentID(ctx context.Context, appointmentID uint) error {
	return r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).Delete(&model.MedicalRecord{}).Error
}
