// File: services/assistant/geminiClient.go
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "models/gemini-1.5-flash"

// ErrMissingAPIKey marks the documented configuration-failure path: no
// credential was supplied, so no remote session can be constructed.
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// ChatClient is one remote conversational session. The remote service keeps
// the accumulated history; this side only sends the next message.
type ChatClient interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

// ClientFactory constructs a ChatClient. Injectable so tests can substitute a
// fake remote service.
type ClientFactory func(ctx context.Context, apiKey, systemPrompt string) (ChatClient, error)

// GeminiChatClient wraps a genai chat session configured with a fixed system
// instruction.
type GeminiChatClient struct {
	chat *genai.ChatSession
}

// NewGeminiChatClient is the production ClientFactory.
func NewGeminiChatClient(ctx context.Context, apiKey, systemPrompt string) (ChatClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &GeminiChatClient{chat: model.StartChat()}, nil
}

func (g *GeminiChatClient) SendMessage(ctx context.Context, text string) (string, error) {
	resp, err := g.chat.SendMessage(ctx, genai.Text(text))
	if err != nil {
		return "", fmt.Errorf("gemini send error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
