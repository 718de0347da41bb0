package assistant_test

import (
	"context"
	"errors"
	"testing"

	"luxdrive/models"
	"luxdrive/services/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unavailableReply = "I'm sorry, I cannot connect to the AI service at the moment. Please check your API configuration."
	emptyReply       = "I didn't catch that. Could you please repeat?"
	troubleReply     = "I'm having trouble processing your request right now. Please try again later."
)

// scriptedClient replays a fixed sequence of replies/errors.
type scriptedClient struct {
	replies []string
	errs    []error
	calls   int
}

func (c *scriptedClient) SendMessage(ctx context.Context, text string) (string, error) {
	i := c.calls
	c.calls++
	var reply string
	var err error
	if i < len(c.replies) {
		reply = c.replies[i]
	}
	if i < len(c.errs) {
		err = c.errs[i]
	}
	return reply, err
}

func factoryFor(client assistant.ChatClient, err error, calls *int) assistant.ClientFactory {
	return func(ctx context.Context, apiKey, systemPrompt string) (assistant.ChatClient, error) {
		if calls != nil {
			*calls++
		}
		return client, err
	}
}

func TestSendMessage_MissingCredentialFallbackIsDeterministic(t *testing.T) {
	factoryCalls := 0
	g := assistant.NewGateway("", "persona", factoryFor(nil, nil, &factoryCalls), assistant.NewMemoryTranscriptStore())
	ctx := context.Background()

	first := g.SendMessage(ctx, "c1", "hello")
	second := g.SendMessage(ctx, "c1", "anyone there?")

	assert.Equal(t, unavailableReply, first)
	assert.Equal(t, first, second)
	// No remote construction is ever attempted without a credential.
	assert.Zero(t, factoryCalls)

	status := g.Status()
	assert.Equal(t, assistant.StatusUnavailable, status.State)
	assert.Contains(t, status.Reason, "not configured")
}

func TestInitialize_MissingCredentialDoesNotPanic(t *testing.T) {
	g := assistant.NewGateway("", "persona", factoryFor(nil, nil, nil), assistant.NewMemoryTranscriptStore())
	g.Initialize(context.Background())

	assert.Equal(t, assistant.StatusUnavailable, g.Status().State)
}

func TestSendMessage_RemoteFailureIsContained(t *testing.T) {
	client := &scriptedClient{
		replies: []string{"", "The Porsche 911 Carrera is our fastest option."},
		errs:    []error{errors.New("rate limited"), nil},
	}
	g := assistant.NewGateway("key", "persona", factoryFor(client, nil, nil), assistant.NewMemoryTranscriptStore())
	ctx := context.Background()

	reply := g.SendMessage(ctx, "c1", "what's fast?")
	assert.Equal(t, troubleReply, reply)

	// The session handle stays usable after a failed call.
	reply = g.SendMessage(ctx, "c1", "what's fast?")
	assert.Equal(t, "The Porsche 911 Carrera is our fastest option.", reply)
	assert.Equal(t, assistant.StatusReady, g.Status().State)
}

func TestSendMessage_EmptyReplyFallback(t *testing.T) {
	client := &scriptedClient{replies: []string{""}}
	g := assistant.NewGateway("key", "persona", factoryFor(client, nil, nil), assistant.NewMemoryTranscriptStore())

	reply := g.SendMessage(context.Background(), "c1", "hm")
	assert.Equal(t, emptyReply, reply)
}

func TestSendMessage_ConstructionFailureRetriesOnNextCall(t *testing.T) {
	attempts := 0
	client := &scriptedClient{replies: []string{"Welcome to LuxDrive."}}
	factory := func(ctx context.Context, apiKey, systemPrompt string) (assistant.ChatClient, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("dial error")
		}
		return client, nil
	}
	g := assistant.NewGateway("key", "persona", factory, assistant.NewMemoryTranscriptStore())
	ctx := context.Background()

	assert.Equal(t, unavailableReply, g.SendMessage(ctx, "c1", "hi"))
	assert.Equal(t, assistant.StatusUnavailable, g.Status().State)

	assert.Equal(t, "Welcome to LuxDrive.", g.SendMessage(ctx, "c1", "hi"))
	assert.Equal(t, assistant.StatusReady, g.Status().State)
}

func TestTranscript_AppendsInOrderAndFlagsFallbacks(t *testing.T) {
	client := &scriptedClient{
		replies: []string{"Happy to help.", ""},
		errs:    []error{nil, errors.New("boom")},
	}
	g := assistant.NewGateway("key", "persona", factoryFor(client, nil, nil), assistant.NewMemoryTranscriptStore())
	ctx := context.Background()

	g.SendMessage(ctx, "c1", "hello")
	g.SendMessage(ctx, "c1", "and now?")

	msgs, err := g.Transcript(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 4)

	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Text: "hello"}, msgs[0])
	assert.Equal(t, models.ChatMessage{Role: models.RoleAssistant, Text: "Happy to help."}, msgs[1])
	assert.Equal(t, models.ChatMessage{Role: models.RoleUser, Text: "and now?"}, msgs[2])
	assert.Equal(t, models.ChatMessage{Role: models.RoleAssistant, Text: troubleReply, IsError: true}, msgs[3])

	// Conversations are isolated.
	other, err := g.Transcript(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, g.Reset(ctx, "c1"))
	msgs, err = g.Transcript(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
