package repository

import (
	"context"
	"fmt"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// PlanRepository handles database operations for plans
type PlanRepository struct {
	db Querier
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db Querier) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create creates a new plan
func (r *PlanRepository) Create(ctx context.Context, plan *models.Plan) error {
	query := `
		INSERT INTO plans (user_id, name, description, day_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		plan.UserID,
		plan.Name,
		plan.Description,
		plan.DayType,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return mapError(err, "create plan")
	}

	return nil
}

// GetByID retrieves a plan by ID, scoped to its owner
func (r *PlanRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Plan, error) {
	plan := &models.Plan{}
	query := `
		SELECT id, user_id, name, description, day_type, created_at, updated_at
		FROM plans
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.Name,
		&plan.Description,
		&plan.DayType,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "get plan by id")
	}

	return plan, nil
}

// ListByUser retrieves all plans for a user, newest first. dayType filters
// when non-nil.
func (r *PlanRepository) ListByUser(ctx context.Context, userID uuid.UUID, dayType *models.DayType) ([]*models.Plan, error) {
	query := `
		SELECT id, user_id, name, description, day_type, created_at, updated_at
		FROM plans
		WHERE user_id = $1`

	args := []any{userID}
	if dayType != nil {
		query += " AND day_type = $2"
		args = append(args, *dayType)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list plans")
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		plan := &models.Plan{}
		err := rows.Scan(
			&plan.ID,
			&plan.UserID,
			&plan.Name,
			&plan.Description,
			&plan.DayType,
			&plan.CreatedAt,
			&plan.UpdatedAt,
		)
		if err != nil {
			return nil, mapError(err, "list plans")
		}
		plans = append(plans, plan)
	}

	return plans, mapError(rows.Err(), "list plans")
}

// Update updates a plan's mutable fields, scoped to its owner
func (r *PlanRepository) Update(ctx context.Context, plan *models.Plan) error {
	query := `
		UPDATE plans SET
			name = $3,
			description = $4,
			day_type = $5,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		plan.ID,
		plan.UserID,
		plan.Name,
		plan.Description,
		plan.DayType,
	).Scan(&plan.UpdatedAt)
	if err != nil {
		return mapError(err, "update plan")
	}

	return nil
}

// Delete deletes a plan without touching its blocks. Used by the cloning
// compensation path; regular deletes go through DeleteCascade.
func (r *PlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "delete plan")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete plan: %w", ErrNotFound)
	}

	return nil
}

// DeleteCascade deletes a plan and all of its activity blocks, template-origin
// and custom, in one transaction. The store has no cascade constraint, so the
// dependents are removed explicitly before the plan row.
func (r *PlanRepository) DeleteCascade(ctx context.Context, id, userID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapError(err, "delete plan cascade")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM activity_blocks WHERE plan_id = $1`, id); err != nil {
		return mapError(err, "delete plan cascade: activity blocks")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM custom_activity_blocks WHERE plan_id = $1`, id); err != nil {
		return mapError(err, "delete plan cascade: custom activity blocks")
	}

	tag, err := tx.Exec(ctx, `DELETE FROM plans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return mapError(err, "delete plan cascade: plan")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete plan cascade: %w", ErrNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError(err, "delete plan cascade: commit")
	}

	return nil
}
