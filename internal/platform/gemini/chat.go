package gemini

import (
	"context"
	"strings"

	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/redact"
	"google.golang.org/genai"
)

const (
	// AssistantPersona is the system instruction of the chat assistant.
	AssistantPersona = "You are CleverCore, a helpful AI assistant for a Digital Marketing Agency. " +
		"You help users understand services like SEO, Social Media, and AI solutions. " +
		"You are professional, concise, and friendly."

	// ChatEmptyReply is returned when the model answers with no text.
	ChatEmptyReply = "I'm having trouble understanding that."

	// ChatOfflineReply is returned for any chat failure.
	ChatOfflineReply = "Sorry, I am currently offline. Please try again later."
)

// Converse implements generation.Gateway. Failures are logged and absorbed.
func (g *Gateway) Converse(ctx context.Context, history []generation.ChatMessage, message string) string {
	provider, err := g.provider(ctx)
	if err != nil {
		g.logger.ErrorContext(ctx, "chat unavailable", "error", redact.Error(err))
		return ChatOfflineReply
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == generation.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := provider.GenerateContent(ctx, g.llm.ChatModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(AssistantPersona, genai.RoleUser),
	})
	if err != nil {
		g.logger.ErrorContext(ctx, "chat turn failed",
			"history_length", len(history),
			"error", redact.Error(err))
		return ChatOfflineReply
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return ChatEmptyReply
	}
	return text
}
