package handlers

import (
	"net/http"

	"luxdrive/models"
	"luxdrive/services/assistant"
	"luxdrive/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultConversationID backs callers that do not track a conversation of
// their own (the web UI has a single chat surface).
const defaultConversationID = "default"

// AssistantHandler exposes the concierge chat gateway.
type AssistantHandler struct {
	Svc assistant.AssistantService
}

func NewAssistantHandler(svc assistant.AssistantService) *AssistantHandler {
	return &AssistantHandler{Svc: svc}
}

// ChatHandler forwards one user message and returns the assistant's reply.
// The reply is always a plain string; gateway failures surface as fixed
// fallback sentences, never as HTTP errors.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = defaultConversationID
	}

	reply := h.Svc.SendMessage(c.Request.Context(), req.ConversationID, req.Text)
	status := h.Svc.Status()

	c.JSON(http.StatusOK, models.ChatResponse{
		ConversationID: req.ConversationID,
		Reply:          reply,
		Status:         string(status.State),
	})
}

// TranscriptHandler returns the accumulated message sequence of a conversation.
func (h *AssistantHandler) TranscriptHandler(c *gin.Context) {
	conversationID := c.Param("conversationID")
	msgs, err := h.Svc.Transcript(c.Request.Context(), conversationID)
	if err != nil {
		utils.GetLogger().Error("Failed to load transcript", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load transcript", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"conversationId": conversationID, "messages": msgs})
}

// ResetHandler clears a conversation transcript. The remote session handle
// stays up.
func (h *AssistantHandler) ResetHandler(c *gin.Context) {
	conversationID := c.Param("conversationID")
	if err := h.Svc.Reset(c.Request.Context(), conversationID); err != nil {
		utils.GetLogger().Error("Failed to reset transcript", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset transcript", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
