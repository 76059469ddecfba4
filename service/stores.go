package service

import (
	"context"
	"time"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The repository package provides
// the pgx-backed implementations; tests substitute in-memory fakes.

// UserStore persists users and their selected-plan preference
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateSelectedPlan(ctx context.Context, userID uuid.UUID, planID *uuid.UUID, planName *string) error
}

// PlanStore persists user-owned plans
type PlanStore interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Plan, error)
	ListByUser(ctx context.Context, userID uuid.UUID, dayType *models.DayType) ([]*models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteCascade(ctx context.Context, id, userID uuid.UUID) error
}

// ActivityBlockStore persists template-origin activity blocks
type ActivityBlockStore interface {
	BulkInsert(ctx context.Context, blocks []*models.ActivityBlock) error
	ListByPlan(ctx context.Context, planID uuid.UUID, dayType *models.DayType) ([]*models.ActivityBlock, error)
	DeleteByPlan(ctx context.Context, planID uuid.UUID) error
}

// CustomActivityBlockStore persists user-authored activity blocks
type CustomActivityBlockStore interface {
	Create(ctx context.Context, block *models.CustomActivityBlock) error
	NextOrder(ctx context.Context, planID uuid.UUID) (int, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]*models.CustomActivityBlock, error)
	Delete(ctx context.Context, id, planID uuid.UUID) error
	DeleteByPlan(ctx context.Context, planID uuid.UUID) error
}

// DailyLogStore persists per-activity completion records
type DailyLogStore interface {
	Create(ctx context.Context, log *models.DailyLog) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.DailyLog, error)
	ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.DailyLog, error)
	Update(ctx context.Context, log *models.DailyLog) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// DailySummaryStore persists end-of-day summaries. Create must fail with
// repository.ErrConflict when the (user, day) unique constraint is violated.
type DailySummaryStore interface {
	Create(ctx context.Context, summary *models.DailySummary) error
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) (*models.DailySummary, error)
	ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.DailySummary, error)
	Update(ctx context.Context, summary *models.DailySummary) error
}
