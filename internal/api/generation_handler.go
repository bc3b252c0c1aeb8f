package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/clevercore-api/internal/api/shared"
	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/service"
)

// GenerationHandler handles generation and chat HTTP requests.
type GenerationHandler struct {
	generationService service.GenerationService
	validator         *validator.Validate
	now               func() time.Time
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		validator:         validator.New(),
		now:               time.Now,
	}
}

// GenerateText handles POST /api/generate/text requests.
func (h *GenerationHandler) GenerateText(w http.ResponseWriter, r *http.Request) {
	var req GenerateTextRequest
	if !h.decode(w, r, &req) {
		return
	}

	content, err := h.generationService.GenerateText(r.Context(), req.Prompt, req.Tone, req.Format)
	h.respond(w, r, generation.KindText, content, err)
}

// GenerateImage handles POST /api/generate/image requests.
func (h *GenerationHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	h.generateMedia(w, r, generation.KindImage, h.generationService.GenerateImage)
}

// GenerateVideo handles POST /api/generate/video requests.
// The request blocks until the provider finishes rendering.
func (h *GenerationHandler) GenerateVideo(w http.ResponseWriter, r *http.Request) {
	h.generateMedia(w, r, generation.KindVideo, h.generationService.GenerateVideo)
}

func (h *GenerationHandler) generateMedia(
	w http.ResponseWriter,
	r *http.Request,
	kind generation.Kind,
	generate func(ctx context.Context, prompt string) (string, error),
) {
	var req GenerateMediaRequest
	if !h.decode(w, r, &req) {
		return
	}

	content, err := generate(r.Context(), req.Prompt)
	h.respond(w, r, kind, content, err)
}

// Chat handles POST /api/chat requests. It always answers 200 once the body is valid.
func (h *GenerationHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !h.decode(w, r, &req) {
		return
	}

	history := make([]generation.ChatMessage, 0, len(req.History))
	for _, msg := range req.History {
		history = append(history, generation.ChatMessage{Role: generation.Role(msg.Role), Text: msg.Text})
	}

	reply := h.generationService.Converse(r.Context(), history, req.Message)
	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{
		Role: string(generation.RoleModel),
		Text: reply,
	})
}

// decode parses and validates the body into v, writing a 400 on failure.
func (h *GenerationHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err,
			shared.WithReason(ReasonInvalidRequest))
		return false
	}
	if err := h.validator.Struct(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err,
			shared.WithReason(ReasonInvalidRequest))
		return false
	}
	return true
}

func (h *GenerationHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	kind generation.Kind,
	content string,
	err error,
) {
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GeneratedContentResponse{
		Type:      kind.String(),
		Content:   content,
		Timestamp: h.now().UnixMilli(),
	})
}
