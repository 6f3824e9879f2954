package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"petclinic/internal/cache"
	apperrors "petclinic/internal/errors"
	"petclinic/internal/logger"
	"petclinic/internal/model"
	"petclinic/internal/repository"
)

const (
	activeDoctorsCacheKey = "doctors:active"
	activeDoctorsCacheTTL = 5 * time.Minute
)

// DoctorSummary is the public view of a bookable doctor.
type DoctorSummary struct {
	DoctorID       uint   `json:"doctorId"`
	UserID         uint   `json:"userId"`
	Username       string `json:"username"`
	Specialization string `json:"specialization"`
	Active         bool   `json:"active"`
}

// DoctorUpdateInput holds the fields a doctor may change on their own profile.
// Nil fields are left untouched.
type DoctorUpdateInput struct {
	Specialization *string
	Active         *bool
}

// DoctorService handles the doctor registry.
type DoctorService interface {
	ListActive(ctx context.Context) ([]DoctorSummary, error)
	UpdateOwn(ctx context.Context, p Principal, in DoctorUpdateInput) (*DoctorSummary, error)
}

type doctorService struct {
	store  *repository.Store
	cache  *cache.Client
	group  singleflight.Group
	logger *slog.Logger
}

// NewDoctorService creates a new doctor service. cache may be nil.
func NewDoctorService(store *repository.Store, cache *cache.Client, log *slog.Logger) DoctorService {
	if log == nil {
		log = logger.Discard()
	}
	return &doctorService{store: store, cache: cache, logger: log}
}

func toDoctorSummary(d *model.Doctor) DoctorSummary {
	return DoctorSummary{
		DoctorID:       d.ID,
		UserID:         d.UserID,
		Username:       d.DisplayName(),
		Specialization: d.Specialization,
		Active:         d.Active,
	}
}

// ListActive returns doctors open for booking. Concurrent cache misses share one query.
func (s *doctorService) ListActive(ctx context.Context) ([]DoctorSummary, error) {
	var cached []DoctorSummary
	if s.cache.GetJSON(ctx, activeDoctorsCacheKey, &cached) {
		return cached, nil
	}

	v, err, _ := s.group.Do(activeDoctorsCacheKey, func() (interface{}, error) {
		doctors, err := s.store.Doctors.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("list active doctors: %w", err)
		}
		summaries := make([]DoctorSummary, 0, len(doctors))
		for i := range doctors {
			summaries = append(summaries, toDoctorSummary(&doctors[i]))
		}
		_ = s.cache.SetJSON(ctx, activeDoctorsCacheKey, summaries, activeDoctorsCacheTTL)
		return summaries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]DoctorSummary), nil
}

// UpdateOwn changes the caller's specialization or active flag. Deactivation
// replaces deletion: the doctor disappears from booking but keeps its history.
func (s *doctorService) UpdateOwn(ctx context.Context, p Principal, in DoctorUpdateInput) (*DoctorSummary, error) {
	if !p.IsDoctor() {
		return nil, apperrors.ErrRoleNotPermitted
	}
	doctor, err := doctorFor(ctx, s.store, p)
	if err != nil {
		return nil, err
	}

	if in.Specialization != nil {
		if spec := strings.TrimSpace(*in.Specialization); spec != "" {
			doctor.Specialization = spec
		}
	}
	if in.Active != nil {
		doctor.Active = *in.Active
	}
	if err := s.store.Doctors.Update(ctx, doctor); err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}

	_ = s.cache.Delete(ctx, activeDoctorsCacheKey)
	s.logger.InfoContext(ctx, "doctor profile updated",
		"doctor_id", doctor.ID, "active", doctor.Active, "specialization", doctor.Specialization)

	summary := toDoctorSummary(doctor)
	return &summary, nil
}
