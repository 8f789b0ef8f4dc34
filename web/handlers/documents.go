package handlers

import (
	"net/http"

	"insight-copilot/fixtures"
	"insight-copilot/web/services"
	"insight-copilot/web/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	chatService *services.ChatService
	store       *fixtures.Store
	logger      *zap.Logger
}

func NewDocumentHandler(chatService *services.ChatService, store *fixtures.Store, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		chatService: chatService,
		store:       store,
		logger:      logger,
	}
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	docs := h.store.Documents()
	items := make([]types.DocumentListItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, types.DocumentListItem{
			ID:    d.ID,
			Title: d.Title,
			Pages: d.Pages,
			Type:  d.Type,
		})
	}
	c.JSON(http.StatusOK, gin.H{"documents": items})
}

// Get handles GET /api/documents/:id. Unknown ids still return a document,
// synthesized from the session's active answer when one exists.
func (h *DocumentHandler) Get(c *gin.Context) {
	key := c.Param("id")
	if key == "" {
		respondWithClientError(c, http.StatusBadRequest, "A document id is required")
		return
	}
	highlight := c.Query("highlight")

	resp := h.chatService.ResolveDocument(sessionIDFrom(c), key, highlight)
	c.JSON(http.StatusOK, resp)
}
