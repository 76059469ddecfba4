package handlers

import (
	"io"
	"net/http"
	"strings"

	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles HTTP requests for data snapshots
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// CreateExport handles POST /api/export
func (h *ExportHandler) CreateExport(c *gin.Context) {
	result, err := h.exportService.Snapshot(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, result)
}

// DownloadExport handles GET /api/export/download. The path query parameter
// must be a storage path returned by a previous export; path traversal is
// rejected before it reaches the backend.
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	path := c.Query("path")
	if path == "" || strings.Contains(path, "..") || !strings.HasPrefix(path, "snapshots/") {
		respondValidationError(c, "invalid storage path")
		return
	}

	body, err := h.exportService.Download(c.Request.Context(), path)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", "attachment; filename=\"devtrack-export.json\"")
	c.Header("Content-Type", "application/json")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, body)
}
