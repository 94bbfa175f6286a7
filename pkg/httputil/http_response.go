package httputil

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"

	errorvalues "github.com/limbo/dayflow/internal/error_values"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// StatusFor maps an error kind to the response status.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, errorvalues.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errorvalues.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, errorvalues.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errorvalues.ErrIntervalAlreadyOpen):
		return http.StatusConflict
	case errors.Is(err, errorvalues.ErrMissingCredentials):
		return http.StatusServiceUnavailable
	case errors.Is(err, errorvalues.ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError tells whether err details are safe to show to the caller.
func IsClientError(err error) bool {
	status := StatusFor(err)
	return status >= 400 && status < 500
}
