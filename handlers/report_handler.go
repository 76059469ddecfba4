package handlers

import (
	"log"
	"net/http"
	"time"

	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for daily and weekly reports
type ReportHandler struct {
	reportService  *service.ReportService
	insightService *service.InsightService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, insightService *service.InsightService) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		insightService: insightService,
	}
}

// DailyReport handles GET /api/reports/daily
func (h *ReportHandler) DailyReport(c *gin.Context) {
	date, ok := reportDate(c)
	if !ok {
		return
	}

	report, err := h.reportService.DailyReport(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, report)
}

// WeeklyReport handles GET /api/reports/weekly. When insight generation is
// configured the response carries a coaching note alongside the aggregates;
// an insight failure degrades to the bare report rather than failing the
// request.
func (h *ReportHandler) WeeklyReport(c *gin.Context) {
	date, ok := reportDate(c)
	if !ok {
		return
	}

	report, err := h.reportService.WeeklyReport(c.Request.Context(), currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.insightService == nil || !h.insightService.Enabled() {
		respondData(c, http.StatusOK, report)
		return
	}

	insight, err := h.insightService.WeeklyInsight(c.Request.Context(), report)
	if err != nil {
		log.Printf("weekly insight generation failed: %v", err)
		respondData(c, http.StatusOK, report)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"report":  report,
		"insight": insight,
	})
}

func reportDate(c *gin.Context) (time.Time, bool) {
	date := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			respondValidationError(c, "invalid date format")
			return time.Time{}, false
		}
		date = parsed
	}
	return date, true
}
