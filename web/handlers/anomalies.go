package handlers

import (
	"net/http"

	"insight-copilot/fixtures"
	"insight-copilot/web/services"
	"insight-copilot/web/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnomalyHandler struct {
	chatService *services.ChatService
	logger      *zap.Logger
}

func NewAnomalyHandler(chatService *services.ChatService, logger *zap.Logger) *AnomalyHandler {
	return &AnomalyHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Push handles POST /api/anomalies. The batch joins the session log as one
// anomaly message without resetting the active exchange.
func (h *AnomalyHandler) Push(c *gin.Context) {
	var req types.AnomalyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "At least one anomaly with type and description is required")
		return
	}

	batch := make([]fixtures.Anomaly, 0, len(req.Anomalies))
	for _, item := range req.Anomalies {
		severity := item.Severity
		switch severity {
		case fixtures.SeverityLow, fixtures.SeverityMedium, fixtures.SeverityHigh:
		case "":
			severity = fixtures.SeverityMedium
		default:
			respondWithClientError(c, http.StatusBadRequest, "Severity must be low, medium, or high")
			return
		}
		batch = append(batch, fixtures.Anomaly{
			Type:        item.Type,
			Severity:    severity,
			Description: item.Description,
			Impact:      item.Impact,
		})
	}

	msg := h.chatService.PushAnomalies(sessionIDFrom(c), batch)

	c.JSON(http.StatusCreated, msg)
}
