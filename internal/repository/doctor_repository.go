package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petclinic/internal/model"
)

// DoctorRepository defines doctor registry persistence operations.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Update(ctx context.Context, doctor *model.Doctor) error
	FindByID(ctx context.Context, id uint) (*model.Doctor, error)
	FindByUserID(ctx context.Context, userID uint) (*model.Doctor, error)
	ListActive(ctx context.Context) ([]model.Doctor, error)
}

type doctorRepository struct {
	db *gorm.DB
}

// NewDoctorRepository creates a new doctor repository.
func NewDoctorRepository(db *gorm.DB) DoctorRepository {
	return &doctorRepository{db: db}
}

// Create creates a new doctor profile.
func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(doctor).Error
}

// Update saves specialization and active flag.
func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(doctor).Error
}

// FindByID finds a doctor by ID with its user preloaded.
func (r *doctorRepository) FindByID(ctx context.Context, id uint) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.db.WithContext(ctx).Preload("User").First(&doctor, id).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// FindByUserID finds the doctor profile linked to a user.
func (r *doctorRepository) FindByUserID(ctx context.Context, userID uint) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.db.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

// ListActive lists doctors open for booking, ordered by ID.
func (r *doctorRepository) ListActive(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := r.db.WithContext(ctx).Preload("User").
		Where("active = ?", true).Order("id").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}
