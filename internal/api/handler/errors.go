package handler

import (
	"net/http"

	"github.com/garrastaldea/bolilla/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodeForbidden          = apierr.CodeForbidden
	CodeUserNotFound       = apierr.CodeUserNotFound
	CodeMatchNotFound      = apierr.CodeMatchNotFound
	CodePredictionNotFound = apierr.CodePredictionNotFound
	CodeMatchFinished      = apierr.CodeMatchFinished
	CodeDeadlinePassed     = apierr.CodeDeadlinePassed
	CodeInvalidGoals       = apierr.CodeInvalidGoals
	CodeMissingFields      = apierr.CodeMissingFields
	CodeUsernameExists     = apierr.CodeUsernameExists
	CodePasswordTooShort   = apierr.CodePasswordTooShort
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
