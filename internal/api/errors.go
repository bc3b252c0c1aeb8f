package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/clevercore-api/internal/api/shared"
	"github.com/phrazzld/clevercore-api/internal/credential"
	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/redact"
)

// Machine-readable reasons attached to error bodies.
const (
	ReasonCredentialRequired = "credential_required"
	ReasonGenerationFailed   = "generation_failed"
	ReasonInvalidRequest     = "invalid_request"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var genErr *generation.GenerationError

	switch {
	// The caller must select a paid credential and retry
	case errors.Is(err, generation.ErrCredentialRequired):
		return http.StatusPaymentRequired

	case errors.Is(err, generation.ErrInvalidRequest),
		errors.Is(err, credential.ErrEmptyKey):
		return http.StatusBadRequest

	// The provider failed or returned an unusable payload
	case errors.As(err, &genErr):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// ErrorReason returns the machine-readable reason for err, or "" when the
// client cannot act on it.
func ErrorReason(err error) string {
	switch MapErrorToStatusCode(err) {
	case http.StatusPaymentRequired:
		return ReasonCredentialRequired
	case http.StatusBadRequest:
		return ReasonInvalidRequest
	case http.StatusBadGateway:
		return ReasonGenerationFailed
	default:
		return ""
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrCredentialRequired):
		return "A paid API key must be selected to generate videos"

	case errors.Is(err, credential.ErrEmptyKey):
		return "API key cannot be empty"

	case errors.Is(err, generation.ErrInvalidRequest):
		return invalidRequestMessage(err)
	}

	// Generation messages are meant for the user but may quote provider text
	if genErr, ok := generation.AsGenerationError(err); ok {
		return redact.String(genErr.Message)
	}

	return "An unexpected error occurred"
}

// invalidRequestMessage keeps the detail after the sentinel prefix, such as
// `unsupported tone "Sarcastic"`.
func invalidRequestMessage(err error) string {
	prefix := generation.ErrInvalidRequest.Error() + ": "
	msg := err.Error()
	if i := strings.Index(msg, prefix); i >= 0 {
		return "Invalid request: " + redact.String(msg[i+len(prefix):])
	}
	return "Invalid request"
}

// HandleAPIError writes the mapped status, safe message and reason for err and
// logs the redacted error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	opts := []shared.ResponseOption{}
	if reason := ErrorReason(err); reason != "" {
		opts = append(opts, shared.WithReason(reason))
	}
	if status == http.StatusPaymentRequired {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'ChatRequest.Message' Error:Field validation for 'Message' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
