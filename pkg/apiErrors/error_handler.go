// Package apiErrors standardizes the error payloads returned by the API and
// maps application error codes to HTTP status codes.
package apiErrors

import (
	"encoding/json"
	"net/http"
)

const (
	// Authentication errors.
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_004"
	ErrExpiredToken          = "AUTH_005"
	ErrInsufficientPrivilege = "AUTH_006"
	ErrUserAlreadyExists     = "AUTH_007"

	// Validation errors.
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Consultation lifecycle errors.
	ErrConsultationNotFound  = "CONS_001"
	ErrConsultationCompleted = "CONS_002"
	ErrReportAlreadyExists   = "CONS_003"
	ErrReportNotFound        = "CONS_004"
	ErrConsultationOpen      = "CONS_005"

	// Server errors.
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003"
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrConsultationNotFound:  http.StatusNotFound,
	ErrConsultationCompleted: http.StatusConflict,
	ErrReportAlreadyExists:   http.StatusConflict,
	ErrReportNotFound:        http.StatusNotFound,
	ErrConsultationOpen:      http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError is the error body sent to clients.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the response. Unknown codes are
// reported as internal server errors.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
