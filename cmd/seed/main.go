package main

import (
	"context"
	"errors"
	"log"
	"time"

	"petclinic/internal/auth"
	"petclinic/internal/config"
	"petclinic/internal/db"
	apperrors "petclinic/internal/errors"
	"petclinic/internal/logger"
	"petclinic/internal/model"
	"petclinic/internal/repository"
	"petclinic/internal/service"
)

const demoPassword = "petclinic123"

var demoUsers = []service.RegisterInput{
	{Username: "owner.alice", Password: demoPassword, Role: model.RoleOwner, Phone: "+10000000001", IdentityCode: "OWN-0001"},
	{Username: "dr.smith", Password: demoPassword, Role: model.RoleDoctor, Phone: "+10000000002", IdentityCode: "DOC-0001"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, db.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	store := repository.NewStore(gormDB)
	// Tokens minted here are discarded, so no Redis is needed.
	authService := service.NewAuthService(store, auth.NewJWTService(cfg.JWTSecret), auth.NewTokenStore(nil))
	doctorService := service.NewDoctorService(store, nil, appLog)
	petService := service.NewPetService(store, appLog)
	appointmentService := service.NewAppointmentService(store, service.WithLogger(appLog))

	ctx := context.Background()

	users := make(map[model.Role]*model.User, len(demoUsers))
	for _, in := range demoUsers {
		user, err := ensureUser(ctx, authService, in)
		if err != nil {
			log.Fatalf("Failed to seed user %s: %v", in.Username, err)
		}
		users[in.Role] = user
	}
	owner := service.Principal{UserID: users[model.RoleOwner].ID, Username: users[model.RoleOwner].Username, Role: model.RoleOwner}

	doctorID, err := findDoctorID(ctx, doctorService, users[model.RoleDoctor].ID)
	if err != nil {
		log.Fatalf("Failed to find demo doctor: %v", err)
	}

	pets, err := petService.ListPets(ctx, owner)
	if err != nil {
		log.Fatalf("Failed to list pets: %v", err)
	}
	if len(pets) > 0 {
		log.Printf("Owner %s already has %d pets, skipping pet and appointment", owner.Username, len(pets))
		return
	}

	pet, err := petService.AddPet(ctx, owner, service.PetInput{
		Name:      "Rex",
		Species:   "dog",
		Breed:     "labrador",
		BirthDate: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		log.Fatalf("Failed to seed pet: %v", err)
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	slot := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, time.UTC)
	appointment, err := appointmentService.Book(ctx, owner, service.AppointmentInput{
		PetID:    pet.ID,
		DoctorID: doctorID,
		Time:     slot,
	})
	if err != nil {
		log.Fatalf("Failed to seed appointment: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users: %s, %s (password %q)", demoUsers[0].Username, demoUsers[1].Username, demoPassword)
	log.Printf("  - Pet: %s (id %d)", pet.Name, pet.ID)
	log.Printf("  - Appointment: %s at %s", appointment.Code, slot.Format("2006-01-02 15:04"))
}

// ensureUser registers the user, or logs in when it already exists.
func ensureUser(ctx context.Context, authService service.AuthService, in service.RegisterInput) (*model.User, error) {
	user, err := authService.Register(ctx, in)
	if err == nil {
		log.Printf("Created %s %s", in.Role, in.Username)
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserExists) {
		return nil, err
	}
	_, _, user, err = authService.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	log.Printf("User %s already exists", in.Username)
	return user, nil
}

func findDoctorID(ctx context.Context, doctorService service.DoctorService, userID uint) (uint, error) {
	doctors, err := doctorService.ListActive(ctx)
	if err != nil {
		return 0, err
	}
	for _, d := range doctors {
		if d.UserID == userID {
			return d.DoctorID, nil
		}
	}
	return 0, apperrors.ErrDoctorNotFound
}
