package handlers

import (
	"net/http"

	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
)

// DefaultPlanHandler handles HTTP requests for the template catalog
type DefaultPlanHandler struct {
	cloneService *service.CloneService
}

// NewDefaultPlanHandler creates a new default plan handler
func NewDefaultPlanHandler(cloneService *service.CloneService) *DefaultPlanHandler {
	return &DefaultPlanHandler{
		cloneService: cloneService,
	}
}

// ListDefaultPlans handles GET /api/default-plans. The catalog is static and
// public; no authentication required.
func (h *DefaultPlanHandler) ListDefaultPlans(c *gin.Context) {
	respondData(c, http.StatusOK, h.cloneService.ListDefaultPlans())
}

// ClonePlanRequest represents the request body for cloning a default plan
type ClonePlanRequest struct {
	PlanName string `json:"planName" binding:"required"`
}

// ClonePlan handles POST /api/default-plans/clone
func (h *DefaultPlanHandler) ClonePlan(c *gin.Context) {
	var req ClonePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.cloneService.ClonePlan(c.Request.Context(), service.ClonePlanRequest{
		UserID:   currentUserID(c),
		PlanName: req.PlanName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"plan":       result.Plan,
		"activities": result.Activities,
	})
}
