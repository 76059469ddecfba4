package handlers

import (
	"net/http"
	"time"

	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles HTTP requests for daily summaries
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// UpsertSummaryRequest represents the request body for submitting a day's
// summary. Omitted numeric fields count as zero; the submission replaces
// whatever was stored for that day.
type UpsertSummaryRequest struct {
	LogDate           string   `json:"logDate" binding:"required"`
	DsaProblems       int      `json:"dsaProblems"`
	ProjectHours      float64  `json:"projectHours"`
	CommitsPushed     int      `json:"commitsPushed"`
	SystemDesignTopic *string  `json:"systemDesignTopic"`
	ApplicationsSent  int      `json:"applicationsSent"`
	MockInterviews    int      `json:"mockInterviews"`
	EnergyRating      *int     `json:"energyRating"`
	Blocker           *string  `json:"blocker"`
	Top3Priorities    []string `json:"top3Priorities"`
}

// UpsertSummary handles POST /api/daily-summary. Responds 201 when a new
// day's record was created and 200 when an existing one was updated.
func (h *SummaryHandler) UpsertSummary(c *gin.Context) {
	var req UpsertSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	logDate, err := parseDate(req.LogDate)
	if err != nil {
		respondValidationError(c, "invalid logDate format")
		return
	}

	result, err := h.summaryService.UpsertDailySummary(c.Request.Context(), service.UpsertSummaryRequest{
		UserID:            currentUserID(c),
		LogDate:           logDate,
		DsaProblems:       req.DsaProblems,
		ProjectHours:      req.ProjectHours,
		CommitsPushed:     req.CommitsPushed,
		SystemDesignTopic: req.SystemDesignTopic,
		ApplicationsSent:  req.ApplicationsSent,
		MockInterviews:    req.MockInterviews,
		EnergyRating:      req.EnergyRating,
		Blocker:           req.Blocker,
		Top3Priorities:    req.Top3Priorities,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	respondData(c, status, result.Summary)
}

// ListSummaries handles GET /api/daily-summary. Accepts either a single date
// or a startDate/endDate pair; with no parameters it returns the current UTC
// day. Results are most recent first.
func (h *SummaryHandler) ListSummaries(c *gin.Context) {
	userID := currentUserID(c)
	ctx := c.Request.Context()

	startRaw, endRaw := c.Query("startDate"), c.Query("endDate")
	if startRaw != "" || endRaw != "" {
		if startRaw == "" || endRaw == "" {
			respondValidationError(c, "startDate and endDate must be provided together")
			return
		}
		start, err := parseDate(startRaw)
		if err != nil {
			respondValidationError(c, "invalid startDate format")
			return
		}
		end, err := parseDate(endRaw)
		if err != nil {
			respondValidationError(c, "invalid endDate format")
			return
		}

		summaries, err := h.summaryService.GetSummariesForRange(ctx, userID, start, end)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, summaries)
		return
	}

	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			respondValidationError(c, "invalid date format")
			return
		}
		date = parsed
	}

	summaries, err := h.summaryService.GetSummariesForDay(ctx, userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, summaries)
}
