package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/clevercore-api/internal/generation"
	"google.golang.org/genai"
)

// entityNotFound is what the Gemini API answers when the selected key cannot
// see the requested video model.
const entityNotFound = "Requested entity was not found"

// classify maps any failure raised while dispatching kind into the caller-facing
// taxonomy: generation.ErrCredentialRequired or *generation.GenerationError.
// Invalid requests pass through untouched.
func classify(kind generation.Kind, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, generation.ErrCredentialRequired),
		errors.Is(err, generation.ErrInvalidRequest):
		return err
	}

	if genErr, ok := generation.AsGenerationError(err); ok {
		return genErr
	}

	if kind == generation.KindVideo && isCredentialRejection(err) {
		return fmt.Errorf("%w: provider rejected the selected key", generation.ErrCredentialRequired)
	}

	return generation.NewGenerationError(kind, failureMessage(err), err)
}

// failureMessage picks the human-readable part of err, or "" when none is safe to show.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, generation.ErrNoImageData),
		errors.Is(err, generation.ErrNoVideoURI),
		errors.Is(err, generation.ErrPollTimeout):
		return err.Error()
	}

	var opErr *operationError
	if errors.As(err, &opErr) && opErr.Message != "" {
		return opErr.Message
	}

	if _, msg, ok := apiErrorDetails(err); ok {
		return msg
	}

	return ""
}

// isCredentialRejection reports whether the provider refused the key itself.
func isCredentialRejection(err error) bool {
	code, msg, ok := apiErrorDetails(err)
	if !ok {
		return false
	}

	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusNotFound:
		return strings.Contains(msg, entityNotFound)
	default:
		return false
	}
}

func apiErrorDetails(err error) (int, string, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message, true
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, apiErrPtr.Message, true
	}

	return 0, "", false
}
