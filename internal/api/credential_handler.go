package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/clevercore-api/internal/api/shared"
	"github.com/phrazzld/clevercore-api/internal/credential"
)

// CredentialStore is the host-side credential selection channel.
type CredentialStore interface {
	Current(ctx context.Context) (credential.State, error)
	Select(apiKey string) error
	Clear()
	Selected() bool
}

// CredentialHandler lets the host select or clear the paid-tier API key.
// Keys are accepted but never returned or logged.
type CredentialHandler struct {
	store     CredentialStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewCredentialHandler creates a new CredentialHandler.
func NewCredentialHandler(store CredentialStore, logger *slog.Logger) *CredentialHandler {
	return &CredentialHandler{
		store:     store,
		validator: validator.New(),
		logger:    logger.With("component", "credential_handler"),
	}
}

// GetCredential handles GET /api/credential requests.
func (h *CredentialHandler) GetCredential(w http.ResponseWriter, r *http.Request) {
	h.respondStatus(w, r)
}

// SelectCredential handles PUT /api/credential requests.
func (h *CredentialHandler) SelectCredential(w http.ResponseWriter, r *http.Request) {
	var req SelectCredentialRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err,
			shared.WithReason(ReasonInvalidRequest))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err,
			shared.WithReason(ReasonInvalidRequest))
		return
	}

	if err := h.store.Select(req.APIKey); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "paid credential selected", "trace_id", shared.GetTraceID(r.Context()))
	h.respondStatus(w, r)
}

// ClearCredential handles DELETE /api/credential requests.
func (h *CredentialHandler) ClearCredential(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	h.logger.InfoContext(r.Context(), "credential selection cleared", "trace_id", shared.GetTraceID(r.Context()))
	h.respondStatus(w, r)
}

func (h *CredentialHandler) respondStatus(w http.ResponseWriter, r *http.Request) {
	state, err := h.store.Current(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CredentialStatusResponse{
		Selected: h.store.Selected(),
		Paid:     state.HasSelectedAPIKey(),
	})
}
