package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petclinic/internal/model"
)

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Save(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id uint) (*model.Appointment, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uint) ([]model.Appointment, error)
	// FindByDoctorIDBetween returns the doctor's appointments with start <= time <= end.
	FindByDoctorIDBetween(ctx context.Context, doctorID uint, start, end time.Time) ([]model.Appointment, error)
	FindByPetIDs(ctx context.Context, petIDs []uint) ([]model.Appointment, error)
	// CountByDoctorOnDate counts the doctor's appointments on day's calendar
	// date, ignoring excludeID (0 excludes nothing).
	CountByDoctorOnDate(ctx context.Context, doctorID uint, day time.Time, excludeID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
	DeleteByPetID(ctx context.Context, petID uint) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts a new appointment. A taken (doctor, time) slot surfaces as gorm.ErrDuplicatedKey.
func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(appointment).Error
}

// Save persists every column of an existing appointment.
func (r *appointmentRepository) Save(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(appointment).Error
}

// FindByID finds an appointment with pet and doctor preloaded.
func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.withRelations(ctx).First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindByIDForUpdate finds an appointment by ID with a row-level lock.
func (r *appointmentRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).Clauses(lockingClause(r.db)...).
		First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uint) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.withRelations(ctx).Where("doctor_id = ?", doctorID).
		Order("appointment_time, id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorIDBetween(ctx context.Context, doctorID uint, start, end time.Time) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.withRelations(ctx).
		Where("doctor_id = ? AND appointment_time >= ? AND appointment_time <= ?", doctorID, start, end).
		Order("appointment_time, id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPetIDs(ctx context.Context, petIDs []uint) ([]model.Appointment, error) {
	if len(petIDs) == 0 {
		return []model.Appointment{}, nil
	}
	var appointments []model.Appointment
	if err := r.withRelations(ctx).Where("pet_id IN ?", petIDs).
		Order("appointment_time, id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByDoctorOnDate(ctx context.Context, doctorID uint, day time.Time, excludeID uint) (int64, error) {
	start, end := model.DayBounds(day)
	query := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("doctor_id = ? AND appointment_time >= ? AND appointment_time < ?", doctorID, start, end)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error
}

func (r *appointmentRepository) DeleteByPetID(ctx context.Context, petID uint) error {
	return r.db.WithContext(ctx).Where("pet_id = ?", petID).Delete(&model.Appointment{}).Error
}

func (r *appointmentRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Pet").Preload("Doctor").Preload("Doctor.User")
}

// lockingClause returns SELECT ... FOR UPDATE where the dialect supports it.
func lockingClause(db *gorm.DB) []clause.Expression {
	if db.Dialector.Name() == "sqlite" {
		return nil
	}
	return []clause.Expression{clause.Locking{Strength: clause.LockingStrengthUpdate}}
}
