package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstrex/internal/domain"
	"gstrex/internal/service"
)

// QueryHandler handles query, export, and receipt endpoints.
type QueryHandler struct {
	explorerService service.ExplorerService
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(explorerService service.ExplorerService) *QueryHandler {
	return &QueryHandler{explorerService: explorerService}
}

type gstConfigRequest struct {
	Enabled    bool    `json:"enabled"`
	Field      string  `json:"field"`
	Percentage float64 `json:"percentage"`
}

func (r *gstConfigRequest) toDomain() *domain.GSTConfig {
	if r == nil {
		return &domain.GSTConfig{}
	}
	return &domain.GSTConfig{Enabled: r.Enabled, Field: r.Field, Percentage: r.Percentage}
}

// Query handles POST /api/query
func (h *QueryHandler) Query(c *gin.Context) {
	var req struct {
		Collection string            `json:"collection" binding:"required"`
		Fields     []string          `json:"fields"`
		Limit      int64             `json:"limit"`
		GSTConfig  *gstConfigRequest `json:"gstConfig"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "collection is required")
		return
	}

	records, err := h.explorerService.Query(c.Request.Context(), req.Collection, req.Fields, req.Limit, req.GSTConfig.toDomain())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"collection": req.Collection, "count": len(records), "records": records})
}

// Export handles POST /api/export
func (h *QueryHandler) Export(c *gin.Context) {
	var req struct {
		Data     []map[string]any `json:"data" binding:"required"`
		Format   string           `json:"format" binding:"required"`
		Filename string           `json:"filename"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "data and format are required")
		return
	}

	payload, mimeType, filename, err := h.explorerService.Export(req.Data, domain.ExportFormat(req.Format), req.Filename)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"payload":  base64.StdEncoding.EncodeToString(payload),
		"mimeType": mimeType,
		"filename": filename,
	})
}

// Receipt handles POST /api/receipt/:collection/:documentId
func (h *QueryHandler) Receipt(c *gin.Context) {
	collection := c.Param("collection")
	documentID := c.Param("documentId")

	var req struct {
		GSTConfig *gstConfigRequest `json:"gstConfig"`
	}
	// Body is optional; a receipt without a surcharge block is valid.
	_ = c.ShouldBindJSON(&req)

	payload, filename, err := h.explorerService.Receipt(c.Request.Context(), collection, documentID, req.GSTConfig.toDomain())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"payload":  base64.StdEncoding.EncodeToString(payload),
		"mimeType": "application/pdf",
		"filename": filename,
	})
}
