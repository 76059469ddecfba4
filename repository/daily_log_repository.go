package repository

import (
	"context"
	"time"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// DailyLogRepository handles database operations for daily logs
type DailyLogRepository struct {
	db Querier
}

// NewDailyLogRepository creates a new daily log repository
func NewDailyLogRepository(db Querier) *DailyLogRepository {
	return &DailyLogRepository{db: db}
}

// Create creates a new daily log
func (r *DailyLogRepository) Create(ctx context.Context, log *models.DailyLog) error {
	query := `
		INSERT INTO daily_logs (
			user_id, log_date, activity_block_id, completed,
			actual_start_time, actual_end_time, notes, energy_level
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		log.UserID,
		log.LogDate,
		log.ActivityBlockID,
		log.Completed,
		log.ActualStartTime,
		log.ActualEndTime,
		log.Notes,
		log.EnergyLevel,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		return mapError(err, "create daily log")
	}

	return nil
}

// GetByID retrieves a daily log, scoped to its owner
func (r *DailyLogRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.DailyLog, error) {
	log := &models.DailyLog{}
	query := `
		SELECT id, user_id, log_date, activity_block_id, completed,
			actual_start_time, actual_end_time, notes, energy_level,
			created_at, updated_at
		FROM daily_logs
		WHERE id = $1 AND user_id = $2`

	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&log.ID,
		&log.UserID,
		&log.LogDate,
		&log.ActivityBlockID,
		&log.Completed,
		&log.ActualStartTime,
		&log.ActualEndTime,
		&log.Notes,
		&log.EnergyLevel,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "get daily log by id")
	}

	return log, nil
}

// ListByUserAndRange retrieves a user's logs with log_date in [from, to),
// oldest first.
func (r *DailyLogRepository) ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.DailyLog, error) {
	query := `
		SELECT id, user_id, log_date, activity_block_id, completed,
			actual_start_time, actual_end_time, notes, energy_level,
			created_at, updated_at
		FROM daily_logs
		WHERE user_id = $1 AND log_date >= $2 AND log_date < $3
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, mapError(err, "list daily logs")
	}
	defer rows.Close()

	var logs []*models.DailyLog
	for rows.Next() {
		log := &models.DailyLog{}
		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.LogDate,
			&log.ActivityBlockID,
			&log.Completed,
			&log.ActualStartTime,
			&log.ActualEndTime,
			&log.Notes,
			&log.EnergyLevel,
			&log.CreatedAt,
			&log.UpdatedAt,
		)
		if err != nil {
			return nil, mapError(err, "list daily logs")
		}
		logs = append(logs, log)
	}

	return logs, mapError(rows.Err(), "list daily logs")
}

// Update updates a daily log's mutable fields, scoped to its owner
func (r *DailyLogRepository) Update(ctx context.Context, log *models.DailyLog) error {
	query := `
		UPDATE daily_logs SET
			completed = $3,
			actual_start_time = $4,
			actual_end_time = $5,
			notes = $6,
			energy_level = $7,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		log.ID,
		log.UserID,
		log.Completed,
		log.ActualStartTime,
		log.ActualEndTime,
		log.Notes,
		log.EnergyLevel,
	).Scan(&log.UpdatedAt)
	if err != nil {
		return mapError(err, "update daily log")
	}

	return nil
}

// Delete removes a daily log, scoped to its owner
func (r *DailyLogRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM daily_logs WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return mapError(err, "delete daily log")
	}
	if tag.RowsAffected() == 0 {
		return mapError(ErrNotFound, "delete daily log")
	}

	return nil
}
