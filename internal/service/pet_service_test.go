package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	apperrors "petclinic/internal/errors"
	"petclinic/internal/model"
)

func TestPetService_AddAndList(t *testing.T) {
	c := newClinic(t)
	pets := NewPetService(c.store, nil)
	ctx := context.Background()

	added, err := pets.AddPet(ctx, c.aliceP, PetInput{Name: "Milo", Species: "cat", Breed: "siamese", BirthDate: time.Date(2022, 3, 4, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, c.alice.ID, added.OwnerID)

	_, err = pets.AddPet(ctx, c.smithP, PetInput{Name: "Nope"})
	assert.ErrorIs(t, err, apperrors.ErrRoleNotPermitted)

	appt, err := newScheduler(c).CreateAppointment(ctx, AppointmentInput{PetID: c.rex.ID, DoctorID: 7, Time: at(22, 10, 0)})
	require.NoError(t, err)
	require.NoError(t, c.store.MedicalRecords.Create(ctx, &model.MedicalRecord{
		AppointmentID: appt.ID, PetID: c.rex.ID, VisitDate: datatypes.Date(at(22, 0, 0)), Diagnosis: "ok", Prescription: "none",
	}))

	list, err := pets.ListPets(ctx, c.aliceP)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Rex", list[0].Name)
	require.NotNil(t, list[0].LastVisitDate)
	assert.Equal(t, 22, list[0].LastVisitDate.Day())
	assert.Equal(t, "Milo", list[1].Name)
	assert.Nil(t, list[1].LastVisitDate)

	doctorView, err := pets.ListPets(ctx, c.smithP)
	require.NoError(t, err)
	assert.Empty(t, doctorView)
}

func TestPetService_GetHidesOtherOwnersPets(t *testing.T) {
	c := newClinic(t)
	pets := NewPetService(c.store, nil)
	ctx := context.Background()

	got, err := pets.GetPet(ctx, c.aliceP, c.rex.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.Name)

	_, err = pets.GetPet(ctx, c.aliceP, c.tom.ID)
	assert.ErrorIs(t, err, apperrors.ErrPetNotFound)

	_, err = pets.GetPet(ctx, c.aliceP, 999)
	assert.ErrorIs(t, err, apperrors.ErrPetNotFound)
}

func TestPetService_DeleteCascades(t *testing.T) {
	c := newClinic(t)
	pets := NewPetService(c.store, nil)
	scheduler := newScheduler(c)
	ctx := context.Background()

	first, err := scheduler.Book(ctx, c.aliceP, AppointmentInput{PetID: c.rex.ID, DoctorID: 7, Time: at(22, 10, 0)})
	require.NoError(t, err)
	_, err = scheduler.Book(ctx, c.aliceP, AppointmentInput{PetID: c.rex.ID, DoctorID: 9, Time: at(23, 10, 0)})
	require.NoError(t, err)
	_, err = scheduler.Book(ctx, c.bobP, AppointmentInput{PetID: c.tom.ID, DoctorID: 7, Time: at(22, 11, 0)})
	require.NoError(t, err)
	require.NoError(t, c.store.MedicalRecords.Create(ctx, &model.MedicalRecord{
		AppointmentID: first.ID, PetID: c.rex.ID, VisitDate: datatypes.Date(at(22, 0, 0)), Diagnosis: "ok", Prescription: "none",
	}))

	assert.ErrorIs(t, pets.DeletePet(ctx, c.bobP, c.rex.ID), apperrors.ErrNotOwner)
	assert.ErrorIs(t, pets.DeletePet(ctx, c.smithP, c.rex.ID), apperrors.ErrRoleNotPermitted)
	assert.ErrorIs(t, pets.DeletePet(ctx, c.aliceP, 999), apperrors.ErrPetNotFound)
	assert.Equal(t, int64(3), c.appointmentCount(t))

	require.NoError(t, pets.DeletePet(ctx, c.aliceP, c.rex.ID))

	assert.Equal(t, int64(1), c.appointmentCount(t))
	records, err := c.store.MedicalRecords.FindByPetID(ctx, c.rex.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
	_, err = pets.GetPet(ctx, c.aliceP, c.rex.ID)
	assert.ErrorIs(t, err, apperrors.ErrPetNotFound)
}
