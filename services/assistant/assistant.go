// File: services/assistant/assistant.go
package assistant

import (
	"context"
	"errors"
	"sync"

	"luxdrive/models"
	"luxdrive/utils"

	"go.uber.org/zap"
)

// Fixed fallback replies. Every failure mode of the gateway degrades to one
// of these instead of surfacing an error to the caller.
const (
	unavailableReply = "I'm sorry, I cannot connect to the AI service at the moment. Please check your API configuration."
	emptyReply       = "I didn't catch that. Could you please repeat?"
	troubleReply     = "I'm having trouble processing your request right now. Please try again later."
)

// Gateway owns the single remote chat session handle. Construction is lazy:
// the first send (or an explicit Initialize) builds the session through the
// injected factory, and a missing credential leaves the gateway unavailable
// without raising.
type Gateway struct {
	mu           sync.Mutex
	apiKey       string
	systemPrompt string
	factory      ClientFactory
	client       ChatClient
	status       StatusInfo
	transcripts  TranscriptStore
}

func NewGateway(apiKey, systemPrompt string, factory ClientFactory, transcripts TranscriptStore) *Gateway {
	return &Gateway{
		apiKey:       apiKey,
		systemPrompt: systemPrompt,
		factory:      factory,
		transcripts:  transcripts,
		status:       StatusInfo{State: StatusUninitialized},
	}
}

// Initialize attempts to construct the remote session. A missing credential
// degrades silently; the reason is recorded on the status instead.
func (g *Gateway) Initialize(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.initLocked(ctx)
}

func (g *Gateway) initLocked(ctx context.Context) {
	if g.client != nil {
		return
	}
	logger := utils.GetLogger()

	if g.apiKey == "" {
		// No remote call is attempted without a credential.
		g.status = StatusInfo{State: StatusUnavailable, Reason: ErrMissingAPIKey.Error()}
		logger.Warn("Assistant gateway left uninitialized", zap.String("reason", g.status.Reason))
		return
	}

	client, err := g.factory(ctx, g.apiKey, g.systemPrompt)
	if err != nil {
		g.status = StatusInfo{State: StatusUnavailable, Reason: err.Error()}
		logger.Warn("Failed to construct assistant session", zap.Error(err))
		return
	}
	g.client = client
	g.status = StatusInfo{State: StatusReady}
	logger.Info("Assistant session ready")
}

// Status reports whether the gateway is ready, and if not, why.
func (g *Gateway) Status() StatusInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// SendMessage forwards the user's text to the remote assistant and returns
// the reply text. It never returns an error: a gateway that cannot be
// initialized, a failed remote call, or an empty response each yield a fixed
// fallback string. Both the user line and the reply are appended to the
// conversation transcript.
func (g *Gateway) SendMessage(ctx context.Context, conversationID, text string) string {
	logger := utils.GetLogger()

	g.appendTranscript(ctx, conversationID, models.ChatMessage{Role: models.RoleUser, Text: text})

	g.mu.Lock()
	g.initLocked(ctx)
	client := g.client
	g.mu.Unlock()

	if client == nil {
		g.appendTranscript(ctx, conversationID, models.ChatMessage{Role: models.RoleAssistant, Text: unavailableReply, IsError: true})
		return unavailableReply
	}

	reply, err := client.SendMessage(ctx, text)
	if err != nil {
		logger.Error("Assistant request failed", zap.Error(err))
		g.appendTranscript(ctx, conversationID, models.ChatMessage{Role: models.RoleAssistant, Text: troubleReply, IsError: true})
		return troubleReply
	}
	if reply == "" {
		reply = emptyReply
	}

	g.appendTranscript(ctx, conversationID, models.ChatMessage{Role: models.RoleAssistant, Text: reply})
	return reply
}

// Transcript returns the ordered message sequence of a conversation.
func (g *Gateway) Transcript(ctx context.Context, conversationID string) ([]models.ChatMessage, error) {
	return g.transcripts.Get(ctx, conversationID)
}

// Reset clears a conversation transcript. The remote session handle is left
// untouched; it is never torn down deliberately.
func (g *Gateway) Reset(ctx context.Context, conversationID string) error {
	return g.transcripts.Clear(ctx, conversationID)
}

func (g *Gateway) appendTranscript(ctx context.Context, conversationID string, msg models.ChatMessage) {
	if err := g.transcripts.Append(ctx, conversationID, msg); err != nil && !errors.Is(err, context.Canceled) {
		utils.GetLogger().Warn("Failed to append chat transcript", zap.Error(err))
	}
}
