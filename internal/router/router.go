package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"petclinic/internal/auth"
	"petclinic/internal/config"
	"petclinic/internal/errors"
	"petclinic/internal/handler"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Pet           *handler.PetHandler
	Appointment   *handler.AppointmentHandler
	MedicalRecord *handler.MedicalRecordHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	h Handlers,
	tokenStore auth.TokenStoreInterface,
	gatherer prometheus.Gatherer,
	log *slog.Logger,
) {
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.Validator = handler.NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid token",
				Code:  "INVALID_TOKEN",
			})
		},
	}), rejectRevoked(tokenStore, log))

	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/me", h.User.Me)

	// Doctor directory
	secured.GET("/users/doctors", h.User.ListDoctors)
	secured.PATCH("/users/doctors/me", h.User.UpdateDoctorProfile)

	// Pet routes
	secured.POST("/pets", h.Pet.Create)
	secured.GET("/pets", h.Pet.List)
	secured.GET("/pets/:id", h.Pet.Get)
	secured.DELETE("/pets/:id", h.Pet.Delete)

	// Appointment routes
	secured.POST("/appointments", h.Appointment.Create)
	secured.GET("/appointments", h.Appointment.List)
	secured.PUT("/appointments/:id", h.Appointment.Update)
	secured.DELETE("/appointments/:id", h.Appointment.Delete)

	// Medical record routes
	secured.POST("/medical-records", h.MedicalRecord.Create)
	secured.GET("/medical-records/pet/:petId", h.MedicalRecord.ListForPet)
}

// rejectRevoked refuses refresh tokens and access tokens that were
// blacklisted by logout. Lookup failures let the request through, matching
// the fail-safe cache.
func rejectRevoked(tokenStore auth.TokenStoreInterface, log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return next(c)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || !claims.IsAccess() {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "access token required",
					Code:  "INVALID_TOKEN",
				})
			}
			if claims.ID == "" {
				return next(c)
			}
			revoked, err := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if err != nil {
				log.Warn("blacklist lookup failed", "error", err)
				return next(c)
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "token has been revoked",
					Code:  "TOKEN_REVOKED",
				})
			}
			return next(c)
		}
	}
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Error != nil:
				level = slog.LevelWarn
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			log.LogAttrs(context.Background(), level, "request", attrs...)
			return nil
		},
	})
}
