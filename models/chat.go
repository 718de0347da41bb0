package models

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one line of a conversation transcript. IsError marks
// fallback replies emitted in place of a real assistant response.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Text    string   `json:"text"`
	IsError bool     `json:"isError,omitempty"`
}

// ChatRequest is the payload coming from the frontend into /api/assistant/chat.
type ChatRequest struct {
	ConversationID string `json:"conversationId"`
	Text           string `json:"text" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	ConversationID string `json:"conversationId"`
	Reply          string `json:"reply"`
	Status         string `json:"status"`
}
