package service

import (
	"context"
	"errors"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound          = errors.New("plan not found")
	ErrNameRequired          = errors.New("plan name is required")
	ErrActivityFieldsMissing = errors.New("activity name, startTime, endTime and category are required")
	ErrInvalidDayType        = errors.New("dayType must be weekday or weekend")
)

// PlanService handles plan and activity block management
type PlanService struct {
	planStore        PlanStore
	blockStore       ActivityBlockStore
	customBlockStore CustomActivityBlockStore
}

// PlanServiceOption is a functional option for PlanService
type PlanServiceOption func(*PlanService)

// PlanWithPlanStore sets the plan store
func PlanWithPlanStore(store PlanStore) PlanServiceOption {
	return func(s *PlanService) {
		s.planStore = store
	}
}

// PlanWithActivityBlockStore sets the template-origin block store
func PlanWithActivityBlockStore(store ActivityBlockStore) PlanServiceOption {
	return func(s *PlanService) {
		s.blockStore = store
	}
}

// PlanWithCustomActivityBlockStore sets the custom block store
func PlanWithCustomActivityBlockStore(store CustomActivityBlockStore) PlanServiceOption {
	return func(s *PlanService) {
		s.customBlockStore = store
	}
}

// NewPlanService creates a new plan service
func NewPlanService(opts ...PlanServiceOption) *PlanService {
	s := &PlanService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewActivity is one activity supplied inline with a plan creation
type NewActivity struct {
	Name        string
	StartTime   string
	EndTime     string
	Category    string
	Description *string
}

// CreatePlanRequest represents a request to create a plan, optionally with
// inline custom activities
type CreatePlanRequest struct {
	UserID      uuid.UUID
	Name        string
	Description *string
	DayType     models.DayType
	Activities  []NewActivity
}

// CreatePlanResult carries the new plan and any inline activities created
type CreatePlanResult struct {
	Plan       *models.Plan
	Activities []*models.CustomActivityBlock
}

// CreatePlan creates a user-owned plan. Inline activities get their order
// from their position in the request and their duration from their times.
func (s *PlanService) CreatePlan(ctx context.Context, req CreatePlanRequest) (*CreatePlanResult, error) {
	if s.planStore == nil || s.customBlockStore == nil {
		return nil, errors.New("plan service stores not set")
	}

	if req.Name == "" {
		return nil, ErrNameRequired
	}
	dayType := req.DayType
	if dayType == "" {
		dayType = models.DayTypeWeekday
	}
	if dayType != models.DayTypeWeekday && dayType != models.DayTypeWeekend {
		return nil, ErrInvalidDayType
	}

	blocks := make([]*models.CustomActivityBlock, 0, len(req.Activities))
	for i, activity := range req.Activities {
		if activity.Name == "" || activity.StartTime == "" || activity.EndTime == "" || activity.Category == "" {
			return nil, ErrActivityFieldsMissing
		}
		duration, err := ComputeDuration(activity.StartTime, activity.EndTime)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, &models.CustomActivityBlock{
			Name:            activity.Name,
			StartTime:       activity.StartTime,
			EndTime:         activity.EndTime,
			DurationMinutes: duration,
			Category:        activity.Category,
			Description:     activity.Description,
			Order:           i,
		})
	}

	plan := &models.Plan{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		DayType:     dayType,
	}
	if err := s.planStore.Create(ctx, plan); err != nil {
		return nil, err
	}

	for _, block := range blocks {
		block.PlanID = plan.ID
		if err := s.customBlockStore.Create(ctx, block); err != nil {
			return nil, err
		}
	}

	return &CreatePlanResult{Plan: plan, Activities: blocks}, nil
}

// ListPlans returns the user's plans, newest first, optionally filtered by
// day type.
func (s *PlanService) ListPlans(ctx context.Context, userID uuid.UUID, dayType *models.DayType) ([]*models.Plan, error) {
	if s.planStore == nil {
		return nil, errors.New("plan store not set")
	}
	return s.planStore.ListByUser(ctx, userID, dayType)
}

// UpdatePlanRequest patches a plan's fields; nil fields are left unchanged
type UpdatePlanRequest struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        *string
	Description *string
	DayType     *models.DayType
}

// UpdatePlan applies a partial update to an owned plan
func (s *PlanService) UpdatePlan(ctx context.Context, req UpdatePlanRequest) (*models.Plan, error) {
	if s.planStore == nil {
		return nil, errors.New("plan store not set")
	}

	plan, err := s.planStore.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrNameRequired
		}
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.DayType != nil {
		if *req.DayType != models.DayTypeWeekday && *req.DayType != models.DayTypeWeekend {
			return nil, ErrInvalidDayType
		}
		plan.DayType = *req.DayType
	}

	if err := s.planStore.Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// DeletePlan deletes an owned plan together with all of its activity blocks
func (s *PlanService) DeletePlan(ctx context.Context, id, userID uuid.UUID) error {
	if s.planStore == nil {
		return errors.New("plan store not set")
	}
	return s.planStore.DeleteCascade(ctx, id, userID)
}

// ListPlanActivities returns an owned plan's custom blocks in position order
func (s *PlanService) ListPlanActivities(ctx context.Context, planID, userID uuid.UUID) ([]*models.CustomActivityBlock, error) {
	if s.planStore == nil || s.customBlockStore == nil {
		return nil, errors.New("plan service stores not set")
	}

	if _, err := s.planStore.GetByID(ctx, planID, userID); err != nil {
		return nil, err
	}

	return s.customBlockStore.ListByPlan(ctx, planID)
}

// AddActivityRequest represents a request to append an activity to a plan
type AddActivityRequest struct {
	PlanID      uuid.UUID
	UserID      uuid.UUID
	Name        string
	StartTime   string
	EndTime     string
	Category    string
	Description *string
}

// AddPlanActivity appends a custom activity block to an owned plan. The new
// block's order is one past the current maximum, so order values stay sparse
// after deletions.
func (s *PlanService) AddPlanActivity(ctx context.Context, req AddActivityRequest) (*models.CustomActivityBlock, error) {
	if s.planStore == nil || s.customBlockStore == nil {
		return nil, errors.New("plan service stores not set")
	}

	if _, err := s.planStore.GetByID(ctx, req.PlanID, req.UserID); err != nil {
		return nil, err
	}

	if req.Name == "" || req.StartTime == "" || req.EndTime == "" || req.Category == "" {
		return nil, ErrActivityFieldsMissing
	}
	duration, err := ComputeDuration(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	order, err := s.customBlockStore.NextOrder(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	block := &models.CustomActivityBlock{
		PlanID:          req.PlanID,
		Name:            req.Name,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: duration,
		Category:        req.Category,
		Description:     req.Description,
		Order:           order,
	}
	if err := s.customBlockStore.Create(ctx, block); err != nil {
		return nil, err
	}

	return block, nil
}

// DeletePlanActivity removes one custom block from an owned plan
func (s *PlanService) DeletePlanActivity(ctx context.Context, activityID, planID, userID uuid.UUID) error {
	if s.planStore == nil || s.customBlockStore == nil {
		return errors.New("plan service stores not set")
	}

	if _, err := s.planStore.GetByID(ctx, planID, userID); err != nil {
		return err
	}

	return s.customBlockStore.Delete(ctx, activityID, planID)
}

// ListActivityBlocks returns an owned plan's template-origin blocks in
// position order, optionally filtered by day type.
func (s *PlanService) ListActivityBlocks(ctx context.Context, planID, userID uuid.UUID, dayType *models.DayType) ([]*models.ActivityBlock, error) {
	if s.planStore == nil || s.blockStore == nil {
		return nil, errors.New("plan service stores not set")
	}

	if _, err := s.planStore.GetByID(ctx, planID, userID); err != nil {
		return nil, err
	}

	return s.blockStore.ListByPlan(ctx, planID, dayType)
}
