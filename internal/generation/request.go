package generation

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies the type of content being generated. It determines both the
// provider request shape and how the response is normalized.
type Kind string

// Supported generation kinds.
const (
	KindText  Kind = "text"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is a known generation kind.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindImage, KindVideo:
		return true
	default:
		return false
	}
}

// Tones offered by the copywriter. The first entry is the default.
var Tones = []string{"Professional", "Friendly", "Witty", "Urgent", "Luxury"}

// Formats offered by the copywriter. The first entry is the default.
var Formats = []string{"Social Media Post", "Email Subject Line", "Product Description", "Blog Intro"}

// Request is an immutable, per-action generation request. Tone and Format only
// apply to KindText.
type Request struct {
	kind   Kind
	prompt string
	tone   string
	format string
}

// NewTextRequest builds a text request. Empty tone or format select the defaults.
func NewTextRequest(prompt, tone, format string) (Request, error) {
	if tone == "" {
		tone = Tones[0]
	}
	if format == "" {
		format = Formats[0]
	}
	if !slices.Contains(Tones, tone) {
		return Request{}, fmt.Errorf("%w: unsupported tone %q", ErrInvalidRequest, tone)
	}
	if !slices.Contains(Formats, format) {
		return Request{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidRequest, format)
	}
	return newRequest(KindText, prompt, tone, format)
}

// NewImageRequest builds an image request.
func NewImageRequest(prompt string) (Request, error) {
	return newRequest(KindImage, prompt, "", "")
}

// NewVideoRequest builds a video request.
func NewVideoRequest(prompt string) (Request, error) {
	return newRequest(KindVideo, prompt, "", "")
}

func newRequest(kind Kind, prompt, tone, format string) (Request, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return Request{}, fmt.Errorf("%w: prompt cannot be empty", ErrInvalidRequest)
	}
	return Request{kind: kind, prompt: prompt, tone: tone, format: format}, nil
}

// Kind returns the generation kind.
func (r Request) Kind() Kind { return r.kind }

// Prompt returns the trimmed user prompt.
func (r Request) Prompt() string { return r.prompt }

// Tone returns the copy tone (text requests only).
func (r Request) Tone() string { return r.tone }

// Format returns the copy format (text requests only).
func (r Request) Format() string { return r.format }

// Result is the display-ready output of a generation: plain text for KindText,
// a data URI for KindImage and a directly playable URI for KindVideo.
type Result struct {
	Kind    Kind
	Content string
}

// Role identifies the author of a chat message.
type Role string

// Chat roles.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is a single turn of a chat transcript.
type ChatMessage struct {
	Role Role
	Text string
}
