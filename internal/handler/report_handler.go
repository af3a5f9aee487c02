package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gstrex/internal/service"
)

// ReportHandler handles GSTR-3B report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateGSTR3B handles POST /api/report/gstr3b
func (h *ReportHandler) GenerateGSTR3B(c *gin.Context) {
	var req struct {
		CompanyID string `json:"companyId" binding:"required"`
		Year      int    `json:"year" binding:"required"`
		Month     int    `json:"month" binding:"required"`
		Format    string `json:"format"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "companyId, year and month are required")
		return
	}
	if req.Format == "" {
		req.Format = "json"
	}
	if req.Format != "json" && req.Format != "pdf" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be json or pdf")
		return
	}

	report, err := h.reportService.GenerateGSTR3B(c.Request.Context(), req.CompanyID, req.Year, req.Month)
	if err != nil {
		HandleError(c, err)
		return
	}

	if req.Format == "json" {
		RespondOK(c, report)
		return
	}

	payload, err := h.reportService.RenderGSTR3B(report)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"payload":  base64.StdEncoding.EncodeToString(payload),
		"mimeType": "application/pdf",
		"filename": fmt.Sprintf("gstr3b-%s-%02d-%d.pdf", req.CompanyID, req.Month, req.Year),
	})
}

// Liability handles GET /api/report/liability
func (h *ReportHandler) Liability(c *gin.Context) {
	companyID, year, month, ok := parseReportQuery(c)
	if !ok {
		return
	}

	liability, err := h.reportService.Liability(c.Request.Context(), companyID, year, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, liability)
}

// Summary handles GET /api/report/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	companyID, year, month, ok := parseReportQuery(c)
	if !ok {
		return
	}

	summary, err := h.reportService.TransactionSummary(c.Request.Context(), companyID, year, month)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// parseReportQuery extracts companyId, year and month from query params.
// Returns false if any is missing or malformed (error response already written).
func parseReportQuery(c *gin.Context) (companyID string, year, month int, ok bool) {
	companyID = c.Query("companyId")
	if companyID == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "companyId query parameter is required")
		return "", 0, 0, false
	}

	var err error
	year, err = strconv.Atoi(c.Query("year"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "year query parameter must be an integer")
		return "", 0, 0, false
	}
	month, err = strconv.Atoi(c.Query("month"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "month query parameter must be an integer")
		return "", 0, 0, false
	}
	return companyID, year, month, true
}
