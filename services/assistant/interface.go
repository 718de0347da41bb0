package assistant

import (
	"context"

	"luxdrive/models"
)

// Status tags the gateway's connection to the remote assistant service.
type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusReady         Status = "ready"
	StatusUnavailable   Status = "unavailable"
)

// StatusInfo pairs the status tag with the reason the gateway is not ready,
// so callers can distinguish "never tried" from "tried and failed".
type StatusInfo struct {
	State  Status `json:"state"`
	Reason string `json:"reason,omitempty"`
}

// AssistantService is the concierge surface consumed by the handlers. It
// never returns an error for a message send: every failure mode degrades to a
// fixed fallback reply.
type AssistantService interface {
	Initialize(ctx context.Context)
	Status() StatusInfo
	SendMessage(ctx context.Context, conversationID, text string) string
	Transcript(ctx context.Context, conversationID string) ([]models.ChatMessage, error)
	Reset(ctx context.Context, conversationID string) error
}
