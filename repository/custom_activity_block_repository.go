package repository

import (
	"context"
	"fmt"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// CustomActivityBlockRepository handles database operations for user-authored
// activity blocks
type CustomActivityBlockRepository struct {
	db Querier
}

// NewCustomActivityBlockRepository creates a new custom activity block repository
func NewCustomActivityBlockRepository(db Querier) *CustomActivityBlockRepository {
	return &CustomActivityBlockRepository{db: db}
}

// Create creates a custom activity block at the given position
func (r *CustomActivityBlockRepository) Create(ctx context.Context, block *models.CustomActivityBlock) error {
	query := `
		INSERT INTO custom_activity_blocks (
			plan_id, name, start_time, end_time, duration_minutes,
			category, description, block_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		block.PlanID,
		block.Name,
		block.StartTime,
		block.EndTime,
		block.DurationMinutes,
		block.Category,
		block.Description,
		block.Order,
	).Scan(&block.ID, &block.CreatedAt)
	if err != nil {
		return mapError(err, "create custom activity block")
	}

	return nil
}

// NextOrder returns the position after the plan's current last block. Order
// values stay sparse after deletions, so this is max+1, not count.
func (r *CustomActivityBlockRepository) NextOrder(ctx context.Context, planID uuid.UUID) (int, error) {
	var next int
	query := `
		SELECT COALESCE(MAX(block_order) + 1, 0)
		FROM custom_activity_blocks
		WHERE plan_id = $1`

	if err := r.db.QueryRow(ctx, query, planID).Scan(&next); err != nil {
		return 0, mapError(err, "next custom activity block order")
	}

	return next, nil
}

// ListByPlan retrieves a plan's custom blocks ordered by position
func (r *CustomActivityBlockRepository) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*models.CustomActivityBlock, error) {
	query := `
		SELECT id, plan_id, name, start_time, end_time, duration_minutes,
			category, description, block_order, created_at
		FROM custom_activity_blocks
		WHERE plan_id = $1
		ORDER BY block_order ASC`

	rows, err := r.db.Query(ctx, query, planID)
	if err != nil {
		return nil, mapError(err, "list custom activity blocks")
	}
	defer rows.Close()

	var blocks []*models.CustomActivityBlock
	for rows.Next() {
		block := &models.CustomActivityBlock{}
		err := rows.Scan(
			&block.ID,
			&block.PlanID,
			&block.Name,
			&block.StartTime,
			&block.EndTime,
			&block.DurationMinutes,
			&block.Category,
			&block.Description,
			&block.Order,
			&block.CreatedAt,
		)
		if err != nil {
			return nil, mapError(err, "list custom activity blocks")
		}
		blocks = append(blocks, block)
	}

	return blocks, mapError(rows.Err(), "list custom activity blocks")
}

// Delete removes one custom block from a plan. Remaining order values are not
// renormalized; relative order stays stable.
func (r *CustomActivityBlockRepository) Delete(ctx context.Context, id, planID uuid.UUID) error {
	query := `DELETE FROM custom_activity_blocks WHERE id = $1 AND plan_id = $2`

	tag, err := r.db.Exec(ctx, query, id, planID)
	if err != nil {
		return mapError(err, "delete custom activity block")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete custom activity block: %w", ErrNotFound)
	}

	return nil
}

// DeleteByPlan removes every custom block belonging to a plan
func (r *CustomActivityBlockRepository) DeleteByPlan(ctx context.Context, planID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM custom_activity_blocks WHERE plan_id = $1`, planID)
	return mapError(err, "delete custom activity blocks by plan")
}
