package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"petclinic/docs"
	"petclinic/internal/auth"
	"petclinic/internal/cache"
	"petclinic/internal/config"
	"petclinic/internal/db"
	"petclinic/internal/handler"
	"petclinic/internal/logger"
	"petclinic/internal/metrics"
	"petclinic/internal/model"
	"petclinic/internal/repository"
	"petclinic/internal/router"
	"petclinic/internal/service"
)

// @title Pet Clinic API
// @version 1.0
// @description Pet clinic backend: owners register pets and book appointments, doctors review their schedule and record diagnoses.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	appLog := logger.New(cfg.LogLevel, cfg.LogFormat)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, db.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		if err := model.DropAll(gormDB); err != nil {
			log.Printf("Warning: failed to drop tables: %v", err)
		}
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		appLog.Warn("redis unavailable, running without cache", "addr", cfg.RedisAddr, "error", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	schedulerMetrics := metrics.New(reg)

	store := repository.NewStore(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTServiceWithTTL(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(store, jwtService, tokenStore)
	doctorService := service.NewDoctorService(store, cacheClient, appLog)
	petService := service.NewPetService(store, appLog)
	appointmentService := service.NewAppointmentService(store,
		service.WithLogger(appLog),
		service.WithMetrics(schedulerMetrics),
	)
	recordService := service.NewMedicalRecordService(store, appLog)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, router.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		User:          handler.NewUserHandler(doctorService),
		Pet:           handler.NewPetHandler(petService),
		Appointment:   handler.NewAppointmentHandler(appointmentService),
		MedicalRecord: handler.NewMedicalRecordHandler(recordService),
	}, tokenStore, reg, appLog)

	swaggerURL := "http://localhost:5000/swagger/index.html"
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include a scheme.
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
		docs.SwaggerInfo.Host = host
		if strings.HasPrefix(cfg.SwaggerHost, "http") {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = serve(ctx, e, ":"+cfg.ServerPort, 10*time.Second)
	stop()
	_ = cacheClient.Close()
	if err != nil {
		log.Fatalf("server: %v", err)
	}
}

// serve runs e until ctx is done or the listener fails, then shuts it down.
func serve(ctx context.Context, e *echo.Echo, addr string, grace time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("start: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
