package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindInvalidState Kind = "INVALID_STATE"
	KindConflict     Kind = "CONFLICT"
	KindForbidden    Kind = "FORBIDDEN"
)

// Subject names the entity or reason attached to a Kind.
type Subject string

const (
	SubjectUser          Subject = "USER"
	SubjectDoctor        Subject = "DOCTOR"
	SubjectPet           Subject = "PET"
	SubjectAppointment   Subject = "APPOINTMENT"
	SubjectMedicalRecord Subject = "MEDICAL_RECORD"

	SubjectDoctorInactive    Subject = "DOCTOR_INACTIVE"
	SubjectSlotTaken         Subject = "SLOT_TAKEN"
	SubjectRecordExists      Subject = "RECORD_EXISTS"
	SubjectUserExists        Subject = "USER_EXISTS"
	SubjectNotOwner          Subject = "NOT_OWNER"
	SubjectRoleNotPermitted  Subject = "ROLE_NOT_PERMITTED"
	SubjectNotAssignedDoctor Subject = "NOT_ASSIGNED_DOCTOR"
)

// Error is a semantic rejection surfaced directly to the caller.
type Error struct {
	Kind    Kind
	Subject Subject
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches on Kind and Subject so sentinel comparisons work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Subject == t.Subject
}

func newError(kind Kind, subject Subject, message string) *Error {
	return &Error{Kind: kind, Subject: subject, Message: message}
}

var (
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = newError(KindNotFound, SubjectUser, "user not found")
	// ErrDoctorNotFound is returned when a referenced doctor does not exist.
	ErrDoctorNotFound = newError(KindNotFound, SubjectDoctor, "doctor not found")
	// ErrPetNotFound is returned when a referenced pet does not exist.
	ErrPetNotFound = newError(KindNotFound, SubjectPet, "pet not found")
	// ErrAppointmentNotFound is returned when a referenced appointment does not exist.
	ErrAppointmentNotFound = newError(KindNotFound, SubjectAppointment, "appointment not found")
	// ErrMedicalRecordNotFound is returned when a referenced medical record does not exist.
	ErrMedicalRecordNotFound = newError(KindNotFound, SubjectMedicalRecord, "medical record not found")

	// ErrDoctorInactive is returned when booking against a deactivated doctor.
	ErrDoctorInactive = newError(KindInvalidState, SubjectDoctorInactive, "doctor is not active")

	// ErrSlotTaken is returned when the doctor already has an appointment at that time.
	ErrSlotTaken = newError(KindConflict, SubjectSlotTaken, "time slot unavailable for this doctor")
	// ErrRecordExists is returned when an appointment already has a medical record.
	ErrRecordExists = newError(KindConflict, SubjectRecordExists, "medical record already exists for appointment")
	// ErrUserExists is returned when username, phone or identity code is already registered.
	ErrUserExists = newError(KindConflict, SubjectUserExists, "user already registered, please login")

	// ErrNotOwner is returned when the caller does not own the pet behind the resource.
	ErrNotOwner = newError(KindForbidden, SubjectNotOwner, "you can only manage your own pets and appointments")
	// ErrRoleNotPermitted is returned when the caller's role may not perform the operation.
	ErrRoleNotPermitted = newError(KindForbidden, SubjectRoleNotPermitted, "operation not permitted for this role")
	// ErrNotAssignedDoctor is returned when a doctor acts on another doctor's appointment.
	ErrNotAssignedDoctor = newError(KindForbidden, SubjectNotAssignedDoctor, "appointment is assigned to another doctor")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// Code returns the stable machine-readable code for a domain error,
// e.g. PET_NOT_FOUND or SLOT_TAKEN.
func (e *Error) Code() string {
	if e.Kind == KindNotFound {
		return fmt.Sprintf("%s_NOT_FOUND", e.Subject)
	}
	return string(e.Subject)
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var domainErr *Error
	if !errors.As(err, &domainErr) {
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}

	switch domainErr.Kind {
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, domainErr.Message, domainErr.Code())
	case KindInvalidState:
		return NewHTTPError(http.StatusUnprocessableEntity, domainErr.Message, domainErr.Code())
	case KindConflict:
		return NewHTTPError(http.StatusConflict, domainErr.Message, domainErr.Code())
	case KindForbidden:
		return NewHTTPError(http.StatusForbidden, domainErr.Message, domainErr.Code())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
