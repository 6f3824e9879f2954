package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"petclinic/internal/auth"
	apperrors "petclinic/internal/errors"
	"petclinic/internal/handler/mocks"
	"petclinic/internal/model"
	"petclinic/internal/service"
)

type AppointmentHandlerSuite struct {
	suite.Suite
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerSuite))
}

func (s *AppointmentHandlerSuite) newHandler(t *testing.T, claims *auth.Claims) (*mocks.MockAppointmentService, *echo.Echo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockAppointmentService(ctrl)
	h := NewAppointmentHandler(mockService)
	e, g := newTestEcho(claims)
	g.POST("/appointments", h.Create)
	g.GET("/appointments", h.List)
	g.PUT("/appointments/:id", h.Update)
	g.DELETE("/appointments/:id", h.Delete)
	return mockService, e
}

func sampleAppointment() *model.Appointment {
	return &model.Appointment{
		ID:       11,
		Code:     "APT-20251122-D007-001",
		PetID:    5,
		DoctorID: 7,
		Time:     time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC),
		Status:   model.AppointmentStatusScheduled,
		Pet:      model.Pet{ID: 5, Name: "Rex"},
		Doctor:   model.Doctor{ID: 7, User: model.User{Username: "drsmith"}},
	}
}

func (s *AppointmentHandlerSuite) TestCreate() {
	owner := service.Principal{UserID: 1, Username: "alice", Role: model.RoleOwner}

	s.T().Run("books and returns the DTO - 201", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Book(gomock.Any(), owner, service.AppointmentInput{
			PetID: 5, DoctorID: 7, Time: time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC),
		}).Return(sampleAppointment(), nil)

		rec := doRequest(t, e, http.MethodPost, "/api/appointments", `{"petId":5,"doctorId":7,"time":"2025-11-22T10:00"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, AppointmentResponse{
			ID: 11, Code: "APT-20251122-D007-001", Time: "2025-11-22T10:00:00", PetID: 5, DoctorID: 7,
			Status: "SCHEDULED", PetName: "Rex", DoctorName: "drsmith",
		}, got)
	})

	s.T().Run("slot taken - 409", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrSlotTaken)

		rec := doRequest(t, e, http.MethodPost, "/api/appointments", `{"petId":5,"doctorId":7,"time":"2025-11-22T10:00:00"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "SLOT_TAKEN", decodeError(t, rec)["code"])
	})

	s.T().Run("inactive doctor - 422", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrDoctorInactive)

		rec := doRequest(t, e, http.MethodPost, "/api/appointments", `{"petId":5,"doctorId":7,"time":"2025-11-22T10:00"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "DOCTOR_INACTIVE", decodeError(t, rec)["code"])
	})

	s.T().Run("bad time - 400", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := doRequest(t, e, http.MethodPost, "/api/appointments", `{"petId":5,"doctorId":7,"time":"next tuesday"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_TIME", decodeError(t, rec)["code"])
	})

	s.T().Run("missing fields - 400", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := doRequest(t, e, http.MethodPost, "/api/appointments", `{"petId":5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec)["code"])
	})

	s.T().Run("no token - 401", func(t *testing.T) {
		mockService, e := s.newHandler(t, nil)
		mockService.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := doRequest(t, e, http.MethodPost, "/api/appointments", `{"petId":5,"doctorId":7,"time":"2025-11-22T10:00"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func (s *AppointmentHandlerSuite) TestList() {
	s.T().Run("doctor principal is passed through - 200", func(t *testing.T) {
		mockService, e := s.newHandler(t, doctorClaims)
		mockService.EXPECT().List(gomock.Any(), service.Principal{UserID: 3, Username: "drsmith", Role: model.RoleDoctor}).
			Return([]model.Appointment{*sampleAppointment()}, nil)

		rec := doRequest(t, e, http.MethodGet, "/api/appointments", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Rex", got[0].PetName)
	})

	s.T().Run("unknown role maps to empty role - 200", func(t *testing.T) {
		mockService, e := s.newHandler(t, &auth.Claims{UserID: 9, Username: "mallory", Role: "ADMIN"})
		mockService.EXPECT().List(gomock.Any(), service.Principal{UserID: 9, Username: "mallory"}).
			Return([]model.Appointment{}, nil)

		rec := doRequest(t, e, http.MethodGet, "/api/appointments", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func (s *AppointmentHandlerSuite) TestUpdateAndDelete() {
	s.T().Run("update forwards the path id - 200", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Reschedule(gomock.Any(), gomock.Any(), uint(11), gomock.Any()).Return(sampleAppointment(), nil)

		rec := doRequest(t, e, http.MethodPut, "/api/appointments/11", `{"petId":5,"doctorId":7,"time":"2025-11-22T10:00"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	s.T().Run("update not owner - 403", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Reschedule(gomock.Any(), gomock.Any(), uint(11), gomock.Any()).Return(nil, apperrors.ErrNotOwner)

		rec := doRequest(t, e, http.MethodPut, "/api/appointments/11", `{"petId":5,"doctorId":7,"time":"2025-11-22T10:00"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "NOT_OWNER", decodeError(t, rec)["code"])
	})

	s.T().Run("delete - 204", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Cancel(gomock.Any(), gomock.Any(), uint(11)).Return(nil)

		rec := doRequest(t, e, http.MethodDelete, "/api/appointments/11", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	s.T().Run("delete missing - 404", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Cancel(gomock.Any(), gomock.Any(), uint(12)).Return(apperrors.ErrAppointmentNotFound)

		rec := doRequest(t, e, http.MethodDelete, "/api/appointments/12", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "APPOINTMENT_NOT_FOUND", decodeError(t, rec)["code"])
	})

	s.T().Run("delete bad id - 400", func(t *testing.T) {
		mockService, e := s.newHandler(t, ownerClaims)
		mockService.EXPECT().Cancel(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		rec := doRequest(t, e, http.MethodDelete, "/api/appointments/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
