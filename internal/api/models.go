package api

// GenerateTextRequest defines the payload for the copywriting endpoint.
type GenerateTextRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
	Tone   string `json:"tone"   validate:"omitempty,oneof=Professional Friendly Witty Urgent Luxury"`
	Format string `json:"format" validate:"omitempty,oneof='Social Media Post' 'Email Subject Line' 'Product Description' 'Blog Intro'"`
}

// GenerateMediaRequest defines the payload for the image and video endpoints.
type GenerateMediaRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
}

// GeneratedContentResponse is the display-ready result of one generation.
type GeneratedContentResponse struct {
	// Type is one of "text", "image" or "video"
	Type string `json:"type"`

	// Content is plain text, an image data URI or a playable video URI
	Content string `json:"content"`

	// Timestamp is the completion time in Unix milliseconds
	Timestamp int64 `json:"timestamp"`
}

// ChatMessageDTO is one transcript entry.
type ChatMessageDTO struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}

// ChatRequest defines the payload for a chat turn.
type ChatRequest struct {
	History []ChatMessageDTO `json:"history" validate:"max=100,dive"`
	Message string           `json:"message" validate:"required,max=4000"`
}

// ChatResponse is the assistant's reply.
type ChatResponse struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// SelectCredentialRequest selects a paid-tier API key.
type SelectCredentialRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// CredentialStatusResponse describes the active credential without revealing it.
type CredentialStatusResponse struct {
	// Selected is true when a key was selected at runtime
	Selected bool `json:"selected"`

	// Paid is true when video generation is available
	Paid bool `json:"paid"`
}
