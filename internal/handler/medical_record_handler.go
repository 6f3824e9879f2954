package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"petclinic/internal/errors"
	"petclinic/internal/model"
	"petclinic/internal/service"
)

//go:generate mockgen -source=../service/medical_record_service.go -destination=mocks/medical_record_service_mock.go -package=mocks MedicalRecordService

// MedicalRecordHandler handles medical record endpoints.
type MedicalRecordHandler struct {
	recordService service.MedicalRecordService
}

// NewMedicalRecordHandler creates a new medical record handler.
func NewMedicalRecordHandler(recordService service.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordService: recordService}
}

// MedicalRecordRequest represents a doctor's notes for one appointment.
type MedicalRecordRequest struct {
	AppointmentID uint   `json:"appointmentId" validate:"required"`
	VisitDate     string `json:"visitDate" example:"2025-11-22"`
	Diagnosis     string `json:"diagnosis" validate:"required"`
	Prescription  string `json:"prescription" validate:"required"`
}

// MedicalRecordResponse is the public view of a medical record.
type MedicalRecordResponse struct {
	ID            uint   `json:"id"`
	AppointmentID uint   `json:"appointmentId"`
	PetID         uint   `json:"petId"`
	VisitDate     string `json:"visitDate"`
	Diagnosis     string `json:"diagnosis"`
	Prescription  string `json:"prescription"`
}

func newMedicalRecordResponse(r *model.MedicalRecord) MedicalRecordResponse {
	return MedicalRecordResponse{
		ID:            r.ID,
		AppointmentID: r.AppointmentID,
		PetID:         r.PetID,
		VisitDate:     time.Time(r.VisitDate).Format(dateLayout),
		Diagnosis:     r.Diagnosis,
		Prescription:  r.Prescription,
	}
}

// Create godoc
// @Summary Record the outcome of an appointment
// @Tags medical-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MedicalRecordRequest true "Record data"
// @Success 201 {object} MedicalRecordResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /medical-records [post]
func (h *MedicalRecordHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req MedicalRecordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	in := service.MedicalRecordInput{
		AppointmentID: req.AppointmentID,
		Diagnosis:     req.Diagnosis,
		Prescription:  req.Prescription,
	}
	if req.VisitDate != "" {
		visit, err := time.Parse(dateLayout, req.VisitDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "visitDate must look like 2025-11-22",
				Code:  "INVALID_DATE",
			})
		}
		in.VisitDate = &visit
	}

	record, err := h.recordService.Create(c.Request().Context(), p, in)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, newMedicalRecordResponse(record))
}

// ListForPet godoc
// @Summary List a pet's medical records
// @Tags medical-records
// @Produce json
// @Security BearerAuth
// @Param petId path int true "Pet ID"
// @Success 200 {array} MedicalRecordResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /medical-records/pet/{petId} [get]
func (h *MedicalRecordHandler) ListForPet(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	petID, err := paramID(c, "petId")
	if err != nil {
		return err
	}

	records, err := h.recordService.ListForPet(c.Request().Context(), p, petID)
	if err != nil {
		return domainError(err)
	}
	resp := make([]MedicalRecordResponse, 0, len(records))
	for i := range records {
		resp = append(resp, newMedicalRecordResponse(&records[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
