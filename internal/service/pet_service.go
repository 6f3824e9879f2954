package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"

	apperrors "petclinic/internal/errors"
	"petclinic/internal/logger"
	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// PetInput carries the fields of a new pet.
type PetInput struct {
	Name      string
	Species   string
	Breed     string
	BirthDate time.Time
}

// PetSummary is a pet with the date of its latest medical record.
type PetSummary struct {
	model.Pet
	LastVisitDate *time.Time
}

// PetService handles the pet registry.
type PetService interface {
	AddPet(ctx context.Context, p Principal, in PetInput) (*model.Pet, error)
	ListPets(ctx context.Context, p Principal) ([]PetSummary, error)
	GetPet(ctx context.Context, p Principal, id uint) (*model.Pet, error)
	DeletePet(ctx context.Context, p Principal, id uint) error
}

type petService struct {
	store  *repository.Store
	logger *slog.Logger
}

// NewPetService creates a new pet service.
func NewPetService(store *repository.Store, log *slog.Logger) PetService {
	if log == nil {
		log = logger.Discard()
	}
	return &petService{store: store, logger: log}
}

// AddPet registers a pet owned by the caller.
func (s *petService) AddPet(ctx context.Context, p Principal, in PetInput) (*model.Pet, error) {
	if !p.IsOwner() {
		return nil, apperrors.ErrRoleNotPermitted
	}
	pet := &model.Pet{
		OwnerID:   p.UserID,
		Name:      in.Name,
		Species:   in.Species,
		Breed:     in.Breed,
		BirthDate: datatypes.Date(in.BirthDate),
	}
	if err := s.store.Pets.Create(ctx, pet); err != nil {
		return nil, fmt.Errorf("create pet: %w", err)
	}
	return pet, nil
}

// ListPets returns the caller's pets. Non-owners see an empty list.
func (s *petService) ListPets(ctx context.Context, p Principal) ([]PetSummary, error) {
	if !p.IsOwner() {
		return []PetSummary{}, nil
	}
	pets, err := s.store.Pets.FindByOwnerID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("find pets: %w", err)
	}

	summaries := make([]PetSummary, 0, len(pets))
	for _, pet := range pets {
		last, err := s.store.MedicalRecords.LastVisitDate(ctx, pet.ID)
		if err != nil {
			return nil, fmt.Errorf("last visit date: %w", err)
		}
		summaries = append(summaries, PetSummary{Pet: pet, LastVisitDate: last})
	}
	return summaries, nil
}

// GetPet returns a pet only to its owner; everyone else gets ErrPetNotFound.
func (s *petService) GetPet(ctx context.Context, p Principal, id uint) (*model.Pet, error) {
	if !p.IsOwner() {
		return nil, apperrors.ErrPetNotFound
	}
	pet, err := ownedPet(ctx, s.store, id, p.UserID)
	if errors.Is(err, apperrors.ErrNotOwner) {
		return nil, apperrors.ErrPetNotFound
	}
	if err != nil {
		return nil, err
	}
	return pet, nil
}

// DeletePet removes the pet with its medical records and appointments in one transaction.
func (s *petService) DeletePet(ctx context.Context, p Principal, id uint) error {
	if !p.IsOwner() {
		return apperrors.ErrRoleNotPermitted
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx *repository.Store) error {
		if _, err := ownedPet(ctx, tx, id, p.UserID); err != nil {
			return err
		}
		if err := tx.MedicalRecords.DeleteByPetID(ctx, id); err != nil {
			return fmt.Errorf("delete medical records: %w", err)
		}
		if err := tx.Appointments.DeleteByPetID(ctx, id); err != nil {
			return fmt.Errorf("delete appointments: %w", err)
		}
		if err := tx.Pets.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete pet: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "pet deleted", "pet_id", id, "owner_id", p.UserID)
	return nil
}
