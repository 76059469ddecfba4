package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"devtrack-backend/catalog"
	"devtrack-backend/models"

	"github.com/google/uuid"
)

var (
	ErrPlanNameRequired  = errors.New("planName is required")
	ErrTemplateNotFound  = errors.New("default plan not found")
	ErrCloneInconsistent = errors.New("plan clone left an orphan plan")
)

// CloneService copies a default plan template into a user-owned plan and its
// ordered activity blocks.
type CloneService struct {
	planStore  PlanStore
	blockStore ActivityBlockStore
	templates  []models.DefaultPlanTemplate
}

// CloneServiceOption is a functional option for CloneService
type CloneServiceOption func(*CloneService)

// CloneWithPlanStore sets the plan store
func CloneWithPlanStore(store PlanStore) CloneServiceOption {
	return func(s *CloneService) {
		s.planStore = store
	}
}

// CloneWithActivityBlockStore sets the activity block store
func CloneWithActivityBlockStore(store ActivityBlockStore) CloneServiceOption {
	return func(s *CloneService) {
		s.blockStore = store
	}
}

// CloneWithTemplates overrides the template catalog (used by tests)
func CloneWithTemplates(templates []models.DefaultPlanTemplate) CloneServiceOption {
	return func(s *CloneService) {
		s.templates = templates
	}
}

// NewCloneService creates a new clone service backed by the default catalog
func NewCloneService(opts ...CloneServiceOption) *CloneService {
	s := &CloneService{
		templates: catalog.DefaultPlans,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClonePlanRequest represents a request to clone a default plan
type ClonePlanRequest struct {
	UserID   uuid.UUID
	PlanName string
}

// ClonePlanResult carries the new plan and its activity blocks in template order
type ClonePlanResult struct {
	Plan       *models.Plan
	Activities []*models.ActivityBlock
}

// ClonePlan instantiates the named template for the user. Cloning the same
// template repeatedly produces independent plans. The plan write and the
// block inserts are not one transaction; if the block insert fails, the new
// plan is deleted again so no orphan survives, and a failed cleanup is
// reported rather than swallowed.
func (s *CloneService) ClonePlan(ctx context.Context, req ClonePlanRequest) (*ClonePlanResult, error) {
	if s.planStore == nil {
		return nil, errors.New("plan store not set")
	}
	if s.blockStore == nil {
		return nil, errors.New("activity block store not set")
	}

	if req.PlanName == "" {
		return nil, ErrPlanNameRequired
	}

	var template *models.DefaultPlanTemplate
	for i := range s.templates {
		if s.templates[i].Name == req.PlanName {
			template = &s.templates[i]
			break
		}
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	// Derive durations before any write so a malformed template cannot
	// leave partial state behind.
	durations := make([]int, len(template.Activities))
	for i, activity := range template.Activities {
		d, err := ComputeDuration(activity.StartTime, activity.EndTime)
		if err != nil {
			return nil, fmt.Errorf("template %q activity %q: %w", template.Name, activity.Name, err)
		}
		durations[i] = d
	}

	description := template.Description
	plan := &models.Plan{
		UserID:      req.UserID,
		Name:        template.Name,
		Description: &description,
		DayType:     template.DayType,
	}
	if err := s.planStore.Create(ctx, plan); err != nil {
		return nil, err
	}

	blocks := make([]*models.ActivityBlock, len(template.Activities))
	for i, activity := range template.Activities {
		block := &models.ActivityBlock{
			PlanID:          plan.ID,
			Name:            activity.Name,
			StartTime:       activity.StartTime,
			EndTime:         activity.EndTime,
			DurationMinutes: durations[i],
			Category:        activity.Category,
			DayType:         template.DayType,
			Order:           i,
		}
		if activity.Description != "" {
			desc := activity.Description
			block.Description = &desc
		}
		blocks[i] = block
	}

	if err := s.blockStore.BulkInsert(ctx, blocks); err != nil {
		if cleanupErr := s.planStore.Delete(ctx, plan.ID); cleanupErr != nil {
			log.Printf("plan clone cleanup failed, orphan plan %s remains: %v (insert error: %v)", plan.ID, cleanupErr, err)
			return nil, fmt.Errorf("%w: plan %s: %v", ErrCloneInconsistent, plan.ID, err)
		}
		return nil, err
	}

	return &ClonePlanResult{Plan: plan, Activities: blocks}, nil
}

// ListDefaultPlans returns the fixed template catalog in stable order
func (s *CloneService) ListDefaultPlans() []models.DefaultPlanTemplate {
	return s.templates
}
