package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"petclinic/internal/db/dbtest"
	"petclinic/internal/model"
)

type fixture struct {
	store  *Store
	owner  *model.User
	doctor *model.Doctor
	pet    *model.Pet
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := NewStore(dbtest.NewSQLite(t))

	owner := &model.User{Username: "alice", PasswordHash: "x", Role: model.RoleOwner, Phone: "100", IdentityCode: "ID-100"}
	require.NoError(t, store.Users.Create(ctx, owner))
	docUser := &model.User{Username: "drsmith", PasswordHash: "x", Role: model.RoleDoctor, Phone: "200", IdentityCode: "ID-200"}
	require.NoError(t, store.Users.Create(ctx, docUser))

	doctor := &model.Doctor{UserID: docUser.ID, Specialization: model.DefaultSpecialization, Active: true}
	require.NoError(t, store.Doctors.Create(ctx, doctor))

	pet := &model.Pet{OwnerID: owner.ID, Name: "Rex", Species: "dog", Breed: "lab", BirthDate: datatypes.Date(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))}
	require.NoError(t, store.Pets.Create(ctx, pet))

	return &fixture{store: store, owner: owner, doctor: doctor, pet: pet}
}

func slot(day, hour int) time.Time {
	return time.Date(2025, 11, day, hour, 0, 0, 0, time.UTC)
}

func TestAppointmentRepository_DuplicateSlotIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := &model.Appointment{Code: "A", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(22, 10), Status: model.AppointmentStatusScheduled}
	require.NoError(t, f.store.Appointments.Create(ctx, first))

	second := &model.Appointment{Code: "B", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(22, 10), Status: model.AppointmentStatusScheduled}
	err := f.store.Appointments.Create(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestAppointmentRepository_BetweenIsInclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, at := range []time.Time{slot(21, 9), slot(22, 9), slot(22, 17), slot(23, 9)} {
		require.NoError(t, f.store.Appointments.Create(ctx, &model.Appointment{
			Code: at.String(), PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: at, Status: model.AppointmentStatusScheduled,
		}))
	}

	got, err := f.store.Appointments.FindByDoctorIDBetween(ctx, f.doctor.ID, slot(22, 9), slot(22, 17))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Time.Equal(slot(22, 9)))
	assert.True(t, got[1].Time.Equal(slot(22, 17)))
	assert.Equal(t, "Rex", got[0].Pet.Name)
	assert.Equal(t, "drsmith", got[0].Doctor.User.Username)
}

func TestAppointmentRepository_CountByDoctorOnDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := &model.Appointment{Code: "A", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(22, 9), Status: model.AppointmentStatusScheduled}
	b := &model.Appointment{Code: "B", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(22, 23), Status: model.AppointmentStatusScheduled}
	c := &model.Appointment{Code: "C", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(23, 0), Status: model.AppointmentStatusScheduled}
	for _, appt := range []*model.Appointment{a, b, c} {
		require.NoError(t, f.store.Appointments.Create(ctx, appt))
	}

	count, err := f.store.Appointments.CountByDoctorOnDate(ctx, f.doctor.ID, slot(22, 12), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = f.store.Appointments.CountByDoctorOnDate(ctx, f.doctor.ID, slot(22, 12), a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStore_WithTransactionRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.store.WithTransaction(ctx, func(ctx context.Context, tx *Store) error {
		if err := tx.Appointments.Create(ctx, &model.Appointment{
			Code: "A", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(22, 9), Status: model.AppointmentStatusScheduled,
		}); err != nil {
			return err
		}
		return tx.Appointments.Create(ctx, &model.Appointment{
			Code: "B", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(22, 9), Status: model.AppointmentStatusScheduled,
		})
	})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	got, err := f.store.Appointments.FindByDoctorID(ctx, f.doctor.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMedicalRecordRepository_LastVisitDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	last, err := f.store.MedicalRecords.LastVisitDate(ctx, f.pet.ID)
	require.NoError(t, err)
	assert.Nil(t, last)

	for i, day := range []int{3, 20, 11} {
		appt := &model.Appointment{Code: "A", PetID: f.pet.ID, DoctorID: f.doctor.ID, Time: slot(day, 9), Status: model.AppointmentStatusScheduled}
		require.NoError(t, f.store.Appointments.Create(ctx, appt))
		require.NoError(t, f.store.MedicalRecords.Create(ctx, &model.MedicalRecord{
			AppointmentID: appt.ID,
			PetID:         f.pet.ID,
			VisitDate:     datatypes.Date(slot(day, 0)),
			Diagnosis:     "checkup",
			Prescription:  string(rune('a' + i)),
		}))
	}

	last, err = f.store.MedicalRecords.LastVisitDate(ctx, f.pet.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, 20, last.Day())
}

func TestUserRepository_FindByUniqueFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	byPhone, err := f.store.Users.FindByPhone(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, f.owner.ID, byPhone.ID)

	byCode, err := f.store.Users.FindByIdentityCode(ctx, "ID-200")
	require.NoError(t, err)
	assert.Equal(t, "drsmith", byCode.Username)

	_, err = f.store.Users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
