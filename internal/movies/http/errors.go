package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bruinmovies/server/internal/movies/service"
	"github.com/bruinmovies/server/internal/movies/store"
	"github.com/bruinmovies/server/pkg/httpx"
)

const (
	ErrorCodeInvalidArgument    = "invalid_argument"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeExpired            = "expired"
	ErrorCodeConflict           = "conflict"
	ErrorCodeServerError        = "server_error"
)

// APIError is the JSON error envelope every endpoint returns on failure.
type APIError struct {
	StatusCode int `json:"-"`

	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error to the response in the standard envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidArgument,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	ErrPasscodeExpired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeExpired,
		Description: "passcode expired, request a new one",
	}

	ErrNoPendingPasscode = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "no pending passcode, sign in first",
	}

	ErrEmailTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "email already registered",
	}

	ErrDeliveryFailed = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "failed to deliver passcode email",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// mapServiceError translates service and store errors into API errors so
// handlers never leak internals in response bodies.
func mapServiceError(err error) *APIError {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return ErrInvalidRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, service.ErrPasscodeExpired):
		return ErrPasscodeExpired
	case errors.Is(err, service.ErrNoPendingPasscode):
		return ErrNoPendingPasscode
	case errors.Is(err, service.ErrEmailTaken):
		return ErrEmailTaken
	case errors.Is(err, service.ErrDeliveryFailed):
		return ErrDeliveryFailed
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	default:
		return ErrServerError
	}
}
