package repository

import (
	"context"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// ActivityBlockRepository handles database operations for template-origin
// activity blocks
type ActivityBlockRepository struct {
	db Querier
}

// NewActivityBlockRepository creates a new activity block repository
func NewActivityBlockRepository(db Querier) *ActivityBlockRepository {
	return &ActivityBlockRepository{db: db}
}

// Create creates a single activity block
func (r *ActivityBlockRepository) Create(ctx context.Context, block *models.ActivityBlock) error {
	query := `
		INSERT INTO activity_blocks (
			plan_id, name, start_time, end_time, duration_minutes,
			category, day_type, description, block_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRow(
		ctx, query,
		block.PlanID,
		block.Name,
		block.StartTime,
		block.EndTime,
		block.DurationMinutes,
		block.Category,
		block.DayType,
		block.Description,
		block.Order,
	).Scan(&block.ID, &block.CreatedAt)
	if err != nil {
		return mapError(err, "create activity block")
	}

	return nil
}

// BulkInsert inserts blocks in order. Not atomic: the caller is responsible
// for compensation when an insert fails partway through.
func (r *ActivityBlockRepository) BulkInsert(ctx context.Context, blocks []*models.ActivityBlock) error {
	for _, block := range blocks {
		if err := r.Create(ctx, block); err != nil {
			return err
		}
	}
	return nil
}

// ListByPlan retrieves a plan's blocks ordered by their position. dayType
// filters when non-nil.
func (r *ActivityBlockRepository) ListByPlan(ctx context.Context, planID uuid.UUID, dayType *models.DayType) ([]*models.ActivityBlock, error) {
	query := `
		SELECT id, plan_id, name, start_time, end_time, duration_minutes,
			category, day_type, description, block_order, created_at
		FROM activity_blocks
		WHERE plan_id = $1`

	args := []any{planID}
	if dayType != nil {
		query += " AND day_type = $2"
		args = append(args, *dayType)
	}
	query += " ORDER BY block_order ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list activity blocks")
	}
	defer rows.Close()

	var blocks []*models.ActivityBlock
	for rows.Next() {
		block := &models.ActivityBlock{}
		err := rows.Scan(
			&block.ID,
			&block.PlanID,
			&block.Name,
			&block.StartTime,
			&block.EndTime,
			&block.DurationMinutes,
			&block.Category,
			&block.DayType,
			&block.Description,
			&block.Order,
			&block.CreatedAt,
		)
		if err != nil {
			return nil, mapError(err, "list activity blocks")
		}
		blocks = append(blocks, block)
	}

	return blocks, mapError(rows.Err(), "list activity blocks")
}

// DeleteByPlan removes every block belonging to a plan
func (r *ActivityBlockRepository) DeleteByPlan(ctx context.Context, planID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM activity_blocks WHERE plan_id = $1`, planID)
	return mapError(err, "delete activity blocks by plan")
}
