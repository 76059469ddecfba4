package handlers

import (
	"net/http"

	"devtrack-backend/models"
	"devtrack-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlanHandler handles HTTP requests for plans and their activities
type PlanHandler struct {
	planService *service.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// NewActivityRequest is one inline activity in a plan creation request
type NewActivityRequest struct {
	Name        string  `json:"name" binding:"required"`
	StartTime   string  `json:"startTime" binding:"required"`
	EndTime     string  `json:"endTime" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description"`
}

// CreatePlanRequest represents the request body for creating a plan
type CreatePlanRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description *string              `json:"description"`
	DayType     string               `json:"dayType"`
	Activities  []NewActivityRequest `json:"activities"`
}

// CreatePlan handles POST /api/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	activities := make([]service.NewActivity, 0, len(req.Activities))
	for _, a := range req.Activities {
		activities = append(activities, service.NewActivity{
			Name:        a.Name,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			Category:    a.Category,
			Description: a.Description,
		})
	}

	result, err := h.planService.CreatePlan(c.Request.Context(), service.CreatePlanRequest{
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		DayType:     models.DayType(req.DayType),
		Activities:  activities,
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

// ListPlans handles GET /api/plans
func (h *PlanHandler) ListPlans(c *gin.Context) {
	dayType, ok := dayTypeFilter(c)
	if !ok {
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), currentUserID(c), dayType)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, plans)
}

// UpdatePlanRequest represents the request body for updating a plan
type UpdatePlanRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DayType     *string `json:"dayType"`
}

// UpdatePlan handles PUT /api/plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var dayType *models.DayType
	if req.DayType != nil {
		dt := models.DayType(*req.DayType)
		dayType = &dt
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), service.UpdatePlanRequest{
		ID:          id,
		UserID:      currentUserID(c),
		Name:        req.Name,
		Description: req.Description,
		DayType:     dayType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, plan)
}

// DeletePlan handles DELETE /api/plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.planService.DeletePlan(c.Request.Context(), id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "plan deleted"})
}

// ListPlanActivities handles GET /api/plans/:id/activities
func (h *PlanHandler) ListPlanActivities(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	activities, err := h.planService.ListPlanActivities(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, activities)
}

// AddActivityRequest represents the request body for appending an activity
type AddActivityRequest struct {
	Name        string  `json:"name" binding:"required"`
	StartTime   string  `json:"startTime" binding:"required"`
	EndTime     string  `json:"endTime" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description *string `json:"description"`
}

// AddPlanActivity handles POST /api/plans/:id/activities
func (h *PlanHandler) AddPlanActivity(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	block, err := h.planService.AddPlanActivity(c.Request.Context(), service.AddActivityRequest{
		PlanID:      id,
		UserID:      currentUserID(c),
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, block)
}

// DeletePlanActivity handles DELETE /api/plans/:id/activities/:activityId
func (h *PlanHandler) DeletePlanActivity(c *gin.Context) {
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	activityID, ok := pathUUID(c, "activityId")
	if !ok {
		return
	}

	if err := h.planService.DeletePlanActivity(c.Request.Context(), activityID, planID, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "activity deleted"})
}

// ListActivityBlocks handles GET /api/plans/:id/blocks
func (h *PlanHandler) ListActivityBlocks(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	dayType, ok := dayTypeFilter(c)
	if !ok {
		return
	}

	blocks, err := h.planService.ListActivityBlocks(c.Request.Context(), id, currentUserID(c), dayType)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, blocks)
}

// pathUUID parses a UUID path parameter, responding 400 on bad input
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondValidationError(c, "invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// dayTypeFilter parses the optional dayType query parameter
func dayTypeFilter(c *gin.Context) (*models.DayType, bool) {
	raw := c.Query("dayType")
	if raw == "" {
		return nil, true
	}

	dt := models.DayType(raw)
	if dt != models.DayTypeWeekday && dt != models.DayTypeWeekend {
		respondValidationError(c, "dayType must be weekday or weekend")
		return nil, false
	}
	return &dt, true
}
