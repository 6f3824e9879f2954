package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"petclinic/internal/db/dbtest"
	"petclinic/internal/model"
	"petclinic/internal/repository"
)

// clinic is a seeded store with two owners and two doctors.
type clinic struct {
	store *repository.Store

	alice, bob      *model.User
	aliceP, bobP    Principal
	drSmith, drJone *model.Doctor
	smithP          Principal

	rex, tom *model.Pet // rex belongs to alice, tom to bob
}

func newClinic(t *testing.T) *clinic {
	t.Helper()
	return newClinicOn(t, dbtest.NewSQLite(t))
}

func newClinicOn(t *testing.T, gormDB *gorm.DB) *clinic {
	t.Helper()
	ctx := context.Background()
	store := repository.NewStore(gormDB)
	c := &clinic{store: store}

	c.alice = createUser(t, store, "alice", model.RoleOwner, "100")
	c.bob = createUser(t, store, "bob", model.RoleOwner, "101")
	smithUser := createUser(t, store, "drsmith", model.RoleDoctor, "200")
	jonesUser := createUser(t, store, "drjones", model.RoleDoctor, "201")

	c.drSmith = &model.Doctor{ID: 7, UserID: smithUser.ID, Specialization: model.DefaultSpecialization, Active: true}
	require.NoError(t, store.Doctors.Create(ctx, c.drSmith))
	c.drJone = &model.Doctor{ID: 9, UserID: jonesUser.ID, Specialization: "Surgery", Active: true}
	require.NoError(t, store.Doctors.Create(ctx, c.drJone))

	c.rex = createPet(t, store, c.alice.ID, "Rex")
	c.tom = createPet(t, store, c.bob.ID, "Tom")

	c.aliceP = Principal{UserID: c.alice.ID, Username: "alice", Role: model.RoleOwner}
	c.bobP = Principal{UserID: c.bob.ID, Username: "bob", Role: model.RoleOwner}
	c.smithP = Principal{UserID: smithUser.ID, Username: "drsmith", Role: model.RoleDoctor}
	return c
}

func createUser(t *testing.T, store *repository.Store, username string, role model.Role, phone string) *model.User {
	t.Helper()
	user := &model.User{Username: username, PasswordHash: "x", Role: role, Phone: phone, IdentityCode: "ID-" + phone}
	require.NoError(t, store.Users.Create(context.Background(), user))
	return user
}

func createPet(t *testing.T, store *repository.Store, ownerID uint, name string) *model.Pet {
	t.Helper()
	pet := &model.Pet{OwnerID: ownerID, Name: name, Species: "dog", Breed: "mixed", BirthDate: datatypes.Date(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))}
	require.NoError(t, store.Pets.Create(context.Background(), pet))
	return pet
}

func (c *clinic) deactivate(t *testing.T, doctor *model.Doctor) {
	t.Helper()
	doctor.Active = false
	require.NoError(t, c.store.Doctors.Update(context.Background(), doctor))
}

func (c *clinic) appointmentCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	for _, d := range []*model.Doctor{c.drSmith, c.drJone} {
		appts, err := c.store.Appointments.FindByDoctorID(context.Background(), d.ID)
		require.NoError(t, err)
		count += int64(len(appts))
	}
	return count
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 11, day, hour, minute, 0, 0, time.UTC)
}
