package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"pet not found", ErrPetNotFound, http.StatusNotFound, "PET_NOT_FOUND"},
		{"appointment not found", ErrAppointmentNotFound, http.StatusNotFound, "APPOINTMENT_NOT_FOUND"},
		{"doctor inactive", ErrDoctorInactive, http.StatusUnprocessableEntity, "DOCTOR_INACTIVE"},
		{"slot taken", ErrSlotTaken, http.StatusConflict, "SLOT_TAKEN"},
		{"wrapped slot taken", fmt.Errorf("create appointment: %w", ErrSlotTaken), http.StatusConflict, "SLOT_TAKEN"},
		{"not owner", ErrNotOwner, http.StatusForbidden, "NOT_OWNER"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestError_IsMatchesKindAndSubject(t *testing.T) {
	copyOfSlotTaken := &Error{Kind: KindConflict, Subject: SubjectSlotTaken, Message: "different text"}

	assert.True(t, errors.Is(copyOfSlotTaken, ErrSlotTaken))
	assert.False(t, errors.Is(ErrRecordExists, ErrSlotTaken))
	assert.False(t, errors.Is(ErrPetNotFound, ErrDoctorNotFound))
}
