package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petclinic/internal/errors"
	"petclinic/internal/model"
	"petclinic/internal/service"
)

//go:generate mockgen -source=../service/appointment_service.go -destination=mocks/appointment_service_mock.go -package=mocks AppointmentService

// AppointmentHandler handles appointment endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// AppointmentRequest is the body of create and update calls.
type AppointmentRequest struct {
	PetID    uint   `json:"petId" validate:"required"`
	DoctorID uint   `json:"doctorId" validate:"required"`
	Time     string `json:"time" validate:"required" example:"2025-11-22T10:00"`
}

// AppointmentResponse is the public view of an appointment.
type AppointmentResponse struct {
	ID         uint   `json:"id"`
	Code       string `json:"code"`
	Time       string `json:"time"`
	PetID      uint   `json:"petId"`
	DoctorID   uint   `json:"doctorId"`
	Status     string `json:"status"`
	PetName    string `json:"petName"`
	DoctorName string `json:"doctorName"`
}

// NewAppointmentResponse maps an appointment with preloaded pet and doctor.
func NewAppointmentResponse(a *model.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID,
		Code:       a.Code,
		Time:       a.Time.Format(TimeLayout),
		PetID:      a.PetID,
		DoctorID:   a.DoctorID,
		Status:     string(a.Status),
		PetName:    a.Pet.Name,
		DoctorName: a.Doctor.DisplayName(),
	}
}

func (req *AppointmentRequest) toInput() (service.AppointmentInput, error) {
	at, err := parseNaiveTime(req.Time)
	if err != nil {
		return service.AppointmentInput{}, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "time must look like 2025-11-22T10:00",
			Code:  "INVALID_TIME",
		})
	}
	return service.AppointmentInput{PetID: req.PetID, DoctorID: req.DoctorID, Time: at}, nil
}

// Create godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AppointmentRequest true "Appointment data"
// @Success 201 {object} AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req AppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	appt, err := h.appointmentService.Book(c.Request().Context(), p, in)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, NewAppointmentResponse(appt))
}

// List godoc
// @Summary List appointments visible to the caller
// @Description Owners see their pets' appointments; doctors see their own schedule for the next year.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AppointmentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	appointments, err := h.appointmentService.List(c.Request().Context(), p)
	if err != nil {
		return domainError(err)
	}

	resp := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		resp = append(resp, NewAppointmentResponse(&appointments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Reschedule an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body AppointmentRequest true "Appointment data"
// @Success 200 {object} AppointmentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req AppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	appt, err := h.appointmentService.Reschedule(c.Request().Context(), p, id, in)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, NewAppointmentResponse(appt))
}

// Delete godoc
// @Summary Cancel an appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.appointmentService.Cancel(c.Request().Context(), p, id); err != nil {
		return domainError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
