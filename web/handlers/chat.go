package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"insight-copilot/web/services"
	"insight-copilot/web/types"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxQuestionLength = 2000

type ChatHandler struct {
	chatService *services.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask handles POST /api/ask.
func (h *ChatHandler) Ask(c *gin.Context) {
	sessionID := sessionIDFrom(c)

	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "A question is required")
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		respondWithClientError(c, http.StatusBadRequest, "A question is required")
		return
	}
	if len(question) > maxQuestionLength {
		respondWithClientError(c, http.StatusBadRequest, "Question is too long")
		return
	}

	resp, err := h.chatService.Ask(c.Request.Context(), sessionID, question)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.AbortWithStatus(http.StatusRequestTimeout)
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to answer question", h.logger,
			zap.String("session_id", sessionID.String()))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Messages handles GET /api/messages. The anomaliesOnly query parameter
// restricts the log to pushed alerts.
func (h *ChatHandler) Messages(c *gin.Context) {
	sessionID := sessionIDFrom(c)
	anomaliesOnly := c.Query("anomaliesOnly") == "true"

	c.JSON(http.StatusOK, types.MessagesResponse{
		Messages: h.chatService.Messages(sessionID, anomaliesOnly),
	})
}

// StarterQuestions handles GET /api/questions/starter.
func (h *ChatHandler) StarterQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, types.StarterQuestionsResponse{
		Questions: h.chatService.StarterQuestions(c.Request.Context()),
	})
}

func sessionIDFrom(c *gin.Context) uuid.UUID {
	v, _ := c.Get("sessionID")
	id, _ := v.(uuid.UUID)
	return id
}
