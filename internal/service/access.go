package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "petclinic/internal/errors"
	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// Principal is the authenticated caller. Role is empty when the token
// carried a role outside the known set.
type Principal struct {
	UserID   uint
	Username string
	Role     model.Role
}

// IsOwner reports whether the principal acts as a pet owner.
func (p Principal) IsOwner() bool {
	return p.Role == model.RoleOwner
}

// IsDoctor reports whether the principal acts as a doctor.
func (p Principal) IsDoctor() bool {
	return p.Role == model.RoleDoctor
}

// mapNotFound turns gorm's missing-row error into the domain error for that entity.
func mapNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// doctorFor resolves the doctor profile behind a DOCTOR principal.
func doctorFor(ctx context.Context, store *repository.Store, p Principal) (*model.Doctor, error) {
	doctor, err := store.Doctors.FindByUserID(ctx, p.UserID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrDoctorNotFound)
	}
	return doctor, nil
}

// ownedPet loads a pet and checks that it belongs to ownerID.
func ownedPet(ctx context.Context, store *repository.Store, petID, ownerID uint) (*model.Pet, error) {
	pet, err := store.Pets.FindByID(ctx, petID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrPetNotFound)
	}
	if pet.OwnerID != ownerID {
		return nil, apperrors.ErrNotOwner
	}
	return pet, nil
}
