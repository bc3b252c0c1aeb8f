package gemini

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/phrazzld/clevercore-api/internal/generation"
	"google.golang.org/genai"
)

const (
	// NoContentText is returned for text generations that yield no text.
	NoContentText = "No content generated."

	imageDataURIPrefix = "data:image/png;base64,"
)

// NormalizeText returns the text of the first candidate, or NoContentText when
// the provider produced none.
func NormalizeText(resp *genai.GenerateContentResponse) string {
	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return NoContentText
	}
	return text
}

// NormalizeImage scans the first candidate's parts and returns the first
// inline image as a data URI. It fails with generation.ErrNoImageData when no
// part carries inline data.
func NormalizeImage(resp *genai.GenerateContentResponse) (string, error) {
	for _, part := range firstCandidateParts(resp) {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return imageDataURIPrefix + base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
		}
	}
	return "", generation.ErrNoImageData
}

// NormalizeVideo extracts the first generated video's URI from a completed
// operation and appends the API key so the URI is directly playable.
func NormalizeVideo(op *genai.GenerateVideosOperation, apiKey string) (string, error) {
	if op == nil {
		return "", generation.ErrNoVideoURI
	}
	if op.Error != nil {
		return "", newOperationError(op.Error)
	}

	resp := op.Response
	if resp == nil || len(resp.GeneratedVideos) == 0 ||
		resp.GeneratedVideos[0] == nil || resp.GeneratedVideos[0].Video == nil ||
		resp.GeneratedVideos[0].Video.URI == "" {
		if resp != nil && len(resp.RAIMediaFilteredReasons) > 0 {
			return "", fmt.Errorf("%w: %s", generation.ErrNoVideoURI,
				strings.Join(resp.RAIMediaFilteredReasons, "; "))
		}
		return "", generation.ErrNoVideoURI
	}

	return resp.GeneratedVideos[0].Video.URI + "&key=" + url.QueryEscape(apiKey), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, part := range firstCandidateParts(resp) {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil
	}
	return candidate.Content.Parts
}

// operationError is a failure reported inside a completed operation.
type operationError struct {
	Code    int
	Message string
}

func newOperationError(payload map[string]any) *operationError {
	opErr := &operationError{}
	if msg, ok := payload["message"].(string); ok {
		opErr.Message = msg
	}
	switch code := payload["code"].(type) {
	case float64:
		opErr.Code = int(code)
	case int:
		opErr.Code = code
	}
	return opErr
}

func (e *operationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("video operation failed with code %d", e.Code)
	}
	return fmt.Sprintf("video operation failed: %s", e.Message)
}
