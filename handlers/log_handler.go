package handlers

import (
	"net/http"
	"time"

	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogHandler handles HTTP requests for daily activity logs
type LogHandler struct {
	logService *service.LogService
}

// NewLogHandler creates a new log handler
func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// CreateLogRequest represents the request body for recording an activity
type CreateLogRequest struct {
	LogDate         string     `json:"logDate" binding:"required"`
	ActivityBlockID string     `json:"activityBlockId" binding:"required"`
	Completed       bool       `json:"completed"`
	ActualStartTime *time.Time `json:"actualStartTime"`
	ActualEndTime   *time.Time `json:"actualEndTime"`
	Notes           *string    `json:"notes"`
	EnergyLevel     *int       `json:"energyLevel"`
}

// CreateLog handles POST /api/daily-logs
func (h *LogHandler) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	logDate, err := parseDate(req.LogDate)
	if err != nil {
		respondValidationError(c, "invalid logDate format")
		return
	}
	blockID, err := uuid.Parse(req.ActivityBlockID)
	if err != nil {
		respondValidationError(c, "invalid activityBlockId format")
		return
	}

	log, err := h.logService.CreateDailyLog(c.Request.Context(), service.CreateLogRequest{
		UserID:          currentUserID(c),
		LogDate:         logDate,
		ActivityBlockID: blockID,
		Completed:       req.Completed,
		ActualStartTime: req.ActualStartTime,
		ActualEndTime:   req.ActualEndTime,
		Notes:           req.Notes,
		EnergyLevel:     req.EnergyLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, log)
}

// ListLogs handles GET /api/daily-logs. The date query parameter defaults to
// the current UTC day.
func (h *LogHandler) ListLogs(c *gin.Context) {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			respondValidationError(c, "invalid date format")
			return
		}
		date = parsed
	}

	logs, err := h.logService.ListDailyLogs(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, logs)
}

// UpdateLogRequest represents the request body for patching a log
type UpdateLogRequest struct {
	Completed       *bool      `json:"completed"`
	ActualStartTime *time.Time `json:"actualStartTime"`
	ActualEndTime   *time.Time `json:"actualEndTime"`
	Notes           *string    `json:"notes"`
	EnergyLevel     *int       `json:"energyLevel"`
}

// UpdateLog handles PUT /api/daily-logs/:id
func (h *LogHandler) UpdateLog(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	log, err := h.logService.UpdateDailyLog(c.Request.Context(), service.UpdateLogRequest{
		ID:              id,
		UserID:          currentUserID(c),
		Completed:       req.Completed,
		ActualStartTime: req.ActualStartTime,
		ActualEndTime:   req.ActualEndTime,
		Notes:           req.Notes,
		EnergyLevel:     req.EnergyLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, log)
}

// DeleteLog handles DELETE /api/daily-logs/:id
func (h *LogHandler) DeleteLog(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.logService.DeleteDailyLog(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "log deleted"})
}
