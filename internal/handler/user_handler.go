package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petclinic/internal/service"
)

//go:generate mockgen -source=../service/doctor_service.go -destination=mocks/doctor_service_mock.go -package=mocks DoctorService

// UserHandler serves the caller's identity and the doctor directory.
type UserHandler struct {
	doctorService service.DoctorService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(doctorService service.DoctorService) *UserHandler {
	return &UserHandler{doctorService: doctorService}
}

// MeResponse echoes the authenticated principal.
type MeResponse struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// DoctorProfileRequest updates the calling doctor's profile.
type DoctorProfileRequest struct {
	Specialization *string `json:"specialization" validate:"omitempty,min=1,max=100"`
	Active         *bool   `json:"active"`
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := claimsFrom(c)
	if !ok {
		return errInvalidToken()
	}
	return c.JSON(http.StatusOK, MeResponse{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
}

// ListDoctors godoc
// @Summary List doctors open for booking
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.DoctorSummary
// @Router /users/doctors [get]
func (h *UserHandler) ListDoctors(c echo.Context) error {
	doctors, err := h.doctorService.ListActive(c.Request().Context())
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, doctors)
}

// UpdateDoctorProfile godoc
// @Summary Update the calling doctor's specialization or availability
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DoctorProfileRequest true "Profile changes"
// @Success 200 {object} service.DoctorSummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/doctors/me [patch]
func (h *UserHandler) UpdateDoctorProfile(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req DoctorProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	summary, err := h.doctorService.UpdateOwn(c.Request().Context(), p, service.DoctorUpdateInput{
		Specialization: req.Specialization,
		Active:         req.Active,
	})
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
