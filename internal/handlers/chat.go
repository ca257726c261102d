package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifementor/backend/internal/apierror"
	"github.com/lifementor/backend/internal/logger"
	"github.com/lifementor/backend/internal/models"
	"github.com/lifementor/backend/internal/service"
)

// defaultHistoryLimit caps the chat history returned without ?limit=
const defaultHistoryLimit = 20

// ChatHandler handles mentor conversation HTTP requests
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// PostMessage sends a message to the mentor and returns its reply
// POST /api/v1/chat
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), err.Error()))
		return
	}

	reply, err := h.chatService.Respond(c.Request.Context(), req.Message)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to generate chat reply", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, reply)
}

// GetHistory returns the most recent chat messages
// GET /api/v1/chat/history?limit=20
func (h *ChatHandler) GetHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	messages, err := h.chatService.History(c.Request.Context(), limit)
	if err != nil {
		logger.Ctx(c.Request.Context()).Error("failed to load chat history", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(apierror.GetRequestID(c)))
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
