package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"

	apperrors "petclinic/internal/errors"
	"petclinic/internal/handler/mocks"
	"petclinic/internal/model"
	"petclinic/internal/service"
)

func TestMedicalRecordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockMedicalRecordService(ctrl)
	h := NewMedicalRecordHandler(mockService)
	e, g := newTestEcho(doctorClaims)
	g.POST("/medical-records", h.Create)
	g.GET("/medical-records/pet/:petId", h.ListForPet)

	t.Run("create with explicit visit date", func(t *testing.T) {
		visit := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
		mockService.EXPECT().Create(gomock.Any(), gomock.Any(), service.MedicalRecordInput{
			AppointmentID: 11, VisitDate: &visit, Diagnosis: "otitis", Prescription: "drops",
		}).Return(&model.MedicalRecord{
			ID: 1, AppointmentID: 11, PetID: 5, VisitDate: datatypes.Date(visit), Diagnosis: "otitis", Prescription: "drops",
		}, nil)

		rec := doRequest(t, e, http.MethodPost, "/api/medical-records",
			`{"appointmentId":11,"visitDate":"2025-11-22","diagnosis":"otitis","prescription":"drops"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":1,"appointmentId":11,"petId":5,"visitDate":"2025-11-22","diagnosis":"otitis","prescription":"drops"}`, rec.Body.String())
	})

	t.Run("another doctor's appointment", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotAssignedDoctor)

		rec := doRequest(t, e, http.MethodPost, "/api/medical-records", `{"appointmentId":12,"diagnosis":"x","prescription":"y"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_ASSIGNED_DOCTOR", decodeError(t, rec)["code"])
	})

	t.Run("duplicate record", func(t *testing.T) {
		mockService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRecordExists)

		rec := doRequest(t, e, http.MethodPost, "/api/medical-records", `{"appointmentId":11,"diagnosis":"x","prescription":"y"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("list for pet", func(t *testing.T) {
		mockService.EXPECT().ListForPet(gomock.Any(), gomock.Any(), uint(5)).Return([]model.MedicalRecord{}, nil)

		rec := doRequest(t, e, http.MethodGet, "/api/medical-records/pet/5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
