package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	apperrors "petclinic/internal/errors"
	"petclinic/internal/logger"
	"petclinic/internal/metrics"
	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// DoctorScheduleYears is how many calendar years ahead a doctor's own listing reaches.
const DoctorScheduleYears = 1

// AppointmentInput carries the mutable fields of an appointment.
type AppointmentInput struct {
	PetID    uint
	DoctorID uint
	Time     time.Time
}

// AppointmentService schedules appointments. The principal-level methods
// (List, Book, Reschedule, Cancel) apply the role scope; the remaining
// methods are the unscoped scheduler operations they are built on.
type AppointmentService interface {
	List(ctx context.Context, p Principal) ([]model.Appointment, error)
	Book(ctx context.Context, p Principal, in AppointmentInput) (*model.Appointment, error)
	Reschedule(ctx context.Context, p Principal, id uint, in AppointmentInput) (*model.Appointment, error)
	Cancel(ctx context.Context, p Principal, id uint) error

	GenerateCode(ctx context.Context, doctorID uint, at time.Time) (string, error)
	CreateAppointment(ctx context.Context, in AppointmentInput) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id uint, in AppointmentInput) (*model.Appointment, error)
	GetAppointmentsForOwner(ctx context.Context, username string) ([]model.Appointment, error)
	GetAppointmentsForDoctor(ctx context.Context, doctorID uint, start, end time.Time) ([]model.Appointment, error)
	DeleteAppointment(ctx context.Context, id uint, requesterUsername string) error
}

// Option configures the appointment service.
type Option func(*appointmentService)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *appointmentService) { s.logger = l }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *appointmentService) { s.metrics = m }
}

// WithClock overrides the time source used for the doctor listing window.
func WithClock(now func() time.Time) Option {
	return func(s *appointmentService) { s.now = now }
}

// WithTracer overrides the tracer; the global provider is used otherwise.
func WithTracer(t trace.Tracer) Option {
	return func(s *appointmentService) { s.tracer = t }
}

type appointmentService struct {
	store *repository.Store
	// Mutex map for per-doctor locking
	doctorMutexes sync.Map

	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// NewAppointmentService creates the appointment scheduler.
func NewAppointmentService(store *repository.Store, opts ...Option) AppointmentService {
	s := &appointmentService{
		store:  store,
		now:    time.Now,
		logger: logger.Discard(),
		tracer: otel.Tracer("petclinic/scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// getMutex returns a mutex for a specific doctor ID.
func (s *appointmentService) getMutex(doctorID uint) *sync.Mutex {
	value, _ := s.doctorMutexes.LoadOrStore(doctorID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// lockDoctors locks every distinct doctor in ascending ID order and returns
// the matching unlock.
func (s *appointmentService) lockDoctors(ids ...uint) func() {
	if len(ids) == 2 && ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}
	var locked []*sync.Mutex
	var prev uint
	for i, id := range ids {
		if i > 0 && id == prev {
			continue
		}
		mu := s.getMutex(id)
		mu.Lock()
		locked = append(locked, mu)
		prev = id
	}
	return func() {
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}

func (s *appointmentService) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "scheduler."+op, trace.WithAttributes(attrs...))
}

// finish closes the span and records the outcome in metrics and logs.
func (s *appointmentService) finish(ctx context.Context, span trace.Span, op string, start time.Time, err error) {
	defer span.End()
	s.metrics.ObserveOperation(op, start)
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var domainErr *apperrors.Error
	if !errors.As(err, &domainErr) {
		s.logger.ErrorContext(ctx, "scheduler operation failed", "operation", op, "error", err)
		return
	}
	switch domainErr.Kind {
	case apperrors.KindConflict:
		s.metrics.IncrementSlotConflict(op)
		s.logger.WarnContext(ctx, "slot conflict", "operation", op, "error", err)
	case apperrors.KindForbidden:
		s.metrics.IncrementDenied(domainErr.Code())
		s.logger.WarnContext(ctx, "access denied", "operation", op, "reason", domainErr.Code())
	}
}

// List returns the appointments visible to the principal.
func (s *appointmentService) List(ctx context.Context, p Principal) ([]model.Appointment, error) {
	switch p.Role {
	case model.RoleOwner:
		return s.GetAppointmentsForOwner(ctx, p.Username)
	case model.RoleDoctor:
		doctor, err := doctorFor(ctx, s.store, p)
		if err != nil {
			return nil, err
		}
		start := model.NaiveTime(s.now())
		return s.GetAppointmentsForDoctor(ctx, doctor.ID, start, start.AddDate(DoctorScheduleYears, 0, 0))
	default:
		// unknown role: empty scope
		return []model.Appointment{}, nil
	}
}

// Book creates an appointment for a pet the principal owns.
func (s *appointmentService) Book(ctx context.Context, p Principal, in AppointmentInput) (*model.Appointment, error) {
	switch p.Role {
	case model.RoleOwner:
		return s.create(ctx, &p, in)
	case model.RoleDoctor:
		// doctors only read their schedule
		return nil, s.deny(ctx, "create", apperrors.ErrRoleNotPermitted)
	default:
		return nil, s.deny(ctx, "create", apperrors.ErrRoleNotPermitted)
	}
}

// Reschedule updates an appointment of a pet the principal owns.
func (s *appointmentService) Reschedule(ctx context.Context, p Principal, id uint, in AppointmentInput) (*model.Appointment, error) {
	switch p.Role {
	case model.RoleOwner:
		return s.update(ctx, &p, id, in)
	case model.RoleDoctor:
		// doctors only read their schedule
		return nil, s.deny(ctx, "update", apperrors.ErrRoleNotPermitted)
	default:
		return nil, s.deny(ctx, "update", apperrors.ErrRoleNotPermitted)
	}
}

// Cancel deletes an appointment of a pet the principal owns.
func (s *appointmentService) Cancel(ctx context.Context, p Principal, id uint) error {
	switch p.Role {
	case model.RoleOwner:
		return s.DeleteAppointment(ctx, id, p.Username)
	case model.RoleDoctor:
		// doctors only read their schedule
		return s.deny(ctx, "delete", apperrors.ErrRoleNotPermitted)
	default:
		return s.deny(ctx, "delete", apperrors.ErrRoleNotPermitted)
	}
}

func (s *appointmentService) deny(ctx context.Context, op string, err *apperrors.Error) error {
	s.metrics.IncrementDenied(err.Code())
	s.logger.WarnContext(ctx, "access denied", "operation", op, "reason", err.Code())
	return err
}

// GenerateCode renders the next best-effort code for the doctor's calendar date.
func (s *appointmentService) GenerateCode(ctx context.Context, doctorID uint, at time.Time) (string, error) {
	return generateCode(ctx, s.store, doctorID, model.NaiveTime(at), 0)
}

func generateCode(ctx context.Context, store *repository.Store, doctorID uint, at time.Time, excludeID uint) (string, error) {
	count, err := store.Appointments.CountByDoctorOnDate(ctx, doctorID, at, excludeID)
	if err != nil {
		return "", fmt.Errorf("count appointments: %w", err)
	}
	return model.FormatAppointmentCode(doctorID, at, count+1), nil
}

// CreateAppointment books without an ownership check.
func (s *appointmentService) CreateAppointment(ctx context.Context, in AppointmentInput) (*model.Appointment, error) {
	return s.create(ctx, nil, in)
}

// UpdateAppointment reschedules without an ownership check.
func (s *appointmentService) UpdateAppointment(ctx context.Context, id uint, in AppointmentInput) (*model.Appointment, error) {
	return s.update(ctx, nil, id, in)
}

func (s *appointmentService) create(ctx context.Context, owner *Principal, in AppointmentInput) (appt *model.Appointment, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "CreateAppointment",
		attribute.Int64("pet.id", int64(in.PetID)),
		attribute.Int64("doctor.id", int64(in.DoctorID)))
	defer func() { s.finish(ctx, span, "create", start, err) }()

	at := model.NaiveTime(in.Time)

	unlock := s.lockDoctors(in.DoctorID)
	defer unlock()

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx *repository.Store) error {
		pet, err := s.bookablePet(ctx, tx, owner, in.PetID)
		if err != nil {
			return err
		}
		doctor, err := bookableDoctor(ctx, tx, in.DoctorID)
		if err != nil {
			return err
		}
		if err := ensureSlotFree(ctx, tx, in.DoctorID, at, 0); err != nil {
			return err
		}

		code, err := generateCode(ctx, tx, in.DoctorID, at, 0)
		if err != nil {
			return err
		}

		created := &model.Appointment{
			Code:     code,
			PetID:    pet.ID,
			DoctorID: doctor.ID,
			Time:     at,
			Status:   model.AppointmentStatusScheduled,
		}
		if err := tx.Appointments.Create(ctx, created); err != nil {
			return translateWriteError(err, "create appointment")
		}
		created.Pet = *pet
		created.Doctor = *doctor
		appt = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementBooked()
	s.logger.InfoContext(ctx, "appointment booked",
		"appointment_id", appt.ID, "code", appt.Code, "doctor_id", appt.DoctorID, "time", appt.Time)
	return appt, nil
}

func (s *appointmentService) update(ctx context.Context, owner *Principal, id uint, in AppointmentInput) (appt *model.Appointment, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "UpdateAppointment",
		attribute.Int64("appointment.id", int64(id)),
		attribute.Int64("doctor.id", int64(in.DoctorID)))
	defer func() { s.finish(ctx, span, "update", start, err) }()

	at := model.NaiveTime(in.Time)

	current, err := s.store.Appointments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrAppointmentNotFound)
	}

	unlock := s.lockDoctors(current.DoctorID, in.DoctorID)
	defer unlock()

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx *repository.Store) error {
		existing, err := tx.Appointments.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err, apperrors.ErrAppointmentNotFound)
		}
		if owner != nil {
			if _, err := ownedPet(ctx, tx, existing.PetID, owner.UserID); err != nil {
				if errors.Is(err, apperrors.ErrPetNotFound) {
					return apperrors.ErrNotOwner
				}
				return err
			}
		}

		pet, err := s.bookablePet(ctx, tx, owner, in.PetID)
		if err != nil {
			return err
		}
		doctor, err := bookableDoctor(ctx, tx, in.DoctorID)
		if err != nil {
			return err
		}
		if err := ensureSlotFree(ctx, tx, in.DoctorID, at, existing.ID); err != nil {
			return err
		}

		if existing.DoctorID != in.DoctorID || !model.SameDate(existing.Time, at) {
			code, err := generateCode(ctx, tx, in.DoctorID, at, existing.ID)
			if err != nil {
				return err
			}
			existing.Code = code
		}
		existing.PetID = pet.ID
		existing.DoctorID = doctor.ID
		existing.Time = at

		if err := tx.Appointments.Save(ctx, existing); err != nil {
			return translateWriteError(err, "update appointment")
		}
		existing.Pet = *pet
		existing.Doctor = *doctor
		appt = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementRescheduled()
	s.logger.InfoContext(ctx, "appointment updated",
		"appointment_id", appt.ID, "code", appt.Code, "doctor_id", appt.DoctorID, "time", appt.Time)
	return appt, nil
}

// GetAppointmentsForOwner lists appointments of every pet owned by username, ordered by time then ID.
func (s *appointmentService) GetAppointmentsForOwner(ctx context.Context, username string) (_ []model.Appointment, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "GetAppointmentsForOwner")
	defer func() { s.finish(ctx, span, "list_owner", start, err) }()

	user, err := s.store.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrUserNotFound)
	}
	pets, err := s.store.Pets.FindByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find pets: %w", err)
	}

	petIDs := make([]uint, 0, len(pets))
	for _, pet := range pets {
		petIDs = append(petIDs, pet.ID)
	}
	appointments, err := s.store.Appointments.FindByPetIDs(ctx, petIDs)
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	return appointments, nil
}

// GetAppointmentsForDoctor lists the doctor's appointments with start <= time <= end.
func (s *appointmentService) GetAppointmentsForDoctor(ctx context.Context, doctorID uint, from, to time.Time) (_ []model.Appointment, err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "GetAppointmentsForDoctor", attribute.Int64("doctor.id", int64(doctorID)))
	defer func() { s.finish(ctx, span, "list_doctor", start, err) }()

	appointments, err := s.store.Appointments.FindByDoctorIDBetween(ctx, doctorID, model.NaiveTime(from), model.NaiveTime(to))
	if err != nil {
		return nil, fmt.Errorf("find appointments: %w", err)
	}
	return appointments, nil
}

// DeleteAppointment removes an appointment (and its medical record) when the
// requester owns the appointment's pet.
func (s *appointmentService) DeleteAppointment(ctx context.Context, id uint, requesterUsername string) (err error) {
	start := time.Now()
	ctx, span := s.startSpan(ctx, "DeleteAppointment", attribute.Int64("appointment.id", int64(id)))
	defer func() { s.finish(ctx, span, "delete", start, err) }()

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx *repository.Store) error {
		appt, err := tx.Appointments.FindByIDForUpdate(ctx, id)
		if err != nil {
			return mapNotFound(err, apperrors.ErrAppointmentNotFound)
		}
		requester, err := tx.Users.FindByUsername(ctx, requesterUsername)
		if err != nil {
			return mapNotFound(err, apperrors.ErrUserNotFound)
		}
		if _, err := ownedPet(ctx, tx, appt.PetID, requester.ID); err != nil {
			if errors.Is(err, apperrors.ErrPetNotFound) {
				return apperrors.ErrNotOwner
			}
			return err
		}

		if err := tx.MedicalRecords.DeleteByAppointmentID(ctx, appt.ID); err != nil {
			return fmt.Errorf("delete medical record: %w", err)
		}
		if err := tx.Appointments.Delete(ctx, appt.ID); err != nil {
			return fmt.Errorf("delete appointment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.IncrementCancelled()
	s.logger.InfoContext(ctx, "appointment deleted", "appointment_id", id, "requester", requesterUsername)
	return nil
}

func (s *appointmentService) bookablePet(ctx context.Context, tx *repository.Store, owner *Principal, petID uint) (*model.Pet, error) {
	if owner != nil {
		return ownedPet(ctx, tx, petID, owner.UserID)
	}
	pet, err := tx.Pets.FindByID(ctx, petID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrPetNotFound)
	}
	return pet, nil
}

func bookableDoctor(ctx context.Context, tx *repository.Store, doctorID uint) (*model.Doctor, error) {
	doctor, err := tx.Doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, mapNotFound(err, apperrors.ErrDoctorNotFound)
	}
	if !doctor.Active {
		return nil, apperrors.ErrDoctorInactive
	}
	return doctor, nil
}

// ensureSlotFree fails with ErrSlotTaken if another appointment (not excludeID)
// holds the doctor at exactly at.
func ensureSlotFree(ctx context.Context, tx *repository.Store, doctorID uint, at time.Time, excludeID uint) error {
	taken, err := tx.Appointments.FindByDoctorIDBetween(ctx, doctorID, at, at)
	if err != nil {
		return fmt.Errorf("scan doctor slot: %w", err)
	}
	for _, appt := range taken {
		if appt.ID != excludeID {
			return apperrors.ErrSlotTaken
		}
	}
	return nil
}

// translateWriteError maps a unique-slot violation from the store to ErrSlotTaken.
func translateWriteError(err error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrSlotTaken
	}
	return fmt.Errorf("%s: %w", op, err)
}
