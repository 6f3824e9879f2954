package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"petclinic/internal/model"
)

// PetRepository defines pet registry persistence operations.
type PetRepository interface {
	Create(ctx context.Context, pet *model.Pet) error
	FindByID(ctx context.Context, id uint) (*model.Pet, error)
	FindByOwnerID(ctx context.Context, ownerID uint) ([]model.Pet, error)
	Delete(ctx context.Context, id uint) error
}

type petRepository struct {
	db *gorm.DB
}

// NewPetRepository creates a new pet repository.
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) Create(ctx context.Context, pet *model.Pet) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pet).Error
}

func (r *petRepository) FindByID(ctx context.Context, id uint) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.WithContext(ctx).First(&pet, id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindByOwnerID(ctx context.Context, ownerID uint) ([]model.Pet, error) {
	var pets []model.Pet
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

// Delete removes the pet row only. Callers clear dependents first.
func (r *petRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Pet{}, id).Error
}
