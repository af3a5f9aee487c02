package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstrex/internal/service"
)

// CollectionHandler handles collection exploration endpoints.
type CollectionHandler struct {
	explorerService service.ExplorerService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(explorerService service.ExplorerService) *CollectionHandler {
	return &CollectionHandler{explorerService: explorerService}
}

// List handles GET /api/collections
func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.explorerService.Collections(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"collections": collections})
}

// Fields handles GET /api/fields
func (h *CollectionHandler) Fields(c *gin.Context) {
	collection := c.Query("collection")
	if collection == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "collection query parameter is required")
		return
	}

	fields, err := h.explorerService.Fields(c.Request.Context(), collection)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"collection": collection, "fields": fields})
}
