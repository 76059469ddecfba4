package repository

import (
	"context"
	"time"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// DailySummaryRepository handles database operations for daily summaries.
// The daily_summaries table carries a unique index on (user_id, log_date);
// together with day-start normalization in the service layer, this backs the
// one-summary-per-user-per-day invariant. A concurrent double insert for the
// same day surfaces here as ErrConflict.
type DailySummaryRepository struct {
	db Querier
}

// NewDailySummaryRepository creates a new daily summary repository
func NewDailySummaryRepository(db Querier) *DailySummaryRepository {
	return &DailySummaryRepository{db: db}
}

// Create creates a new daily summary. log_date must already be normalized to
// the UTC day start.
func (r *DailySummaryRepository) Create(ctx context.Context, summary *models.DailySummary) error {
	query := `
		INSERT INTO daily_summaries (
			user_id, log_date, dsa_problems, project_hours, commits_pushed,
			system_design_topic, applications_sent, mock_interviews,
			energy_rating, blocker, top3_priorities
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		summary.UserID,
		summary.LogDate,
		summary.DsaProblems,
		summary.ProjectHours,
		summary.CommitsPushed,
		summary.SystemDesignTopic,
		summary.ApplicationsSent,
		summary.MockInterviews,
		summary.EnergyRating,
		summary.Blocker,
		summary.Top3Priorities,
	).Scan(&summary.ID, &summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		return mapError(err, "create daily summary")
	}

	return nil
}

// FindByUserAndDay retrieves the summary whose log_date falls inside
// [dayStart, dayStart+24h). Returns ErrNotFound when the day has no summary.
func (r *DailySummaryRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) (*models.DailySummary, error) {
	summary := &models.DailySummary{}
	query := `
		SELECT id, user_id, log_date, dsa_problems, project_hours, commits_pushed,
			system_design_topic, applications_sent, mock_interviews,
			energy_rating, blocker, top3_priorities, created_at, updated_at
		FROM daily_summaries
		WHERE user_id = $1 AND log_date >= $2 AND log_date < $3`

	err := r.db.QueryRow(ctx, query, userID, dayStart, dayStart.Add(24*time.Hour)).Scan(
		&summary.ID,
		&summary.UserID,
		&summary.LogDate,
		&summary.DsaProblems,
		&summary.ProjectHours,
		&summary.CommitsPushed,
		&summary.SystemDesignTopic,
		&summary.ApplicationsSent,
		&summary.MockInterviews,
		&summary.EnergyRating,
		&summary.Blocker,
		&summary.Top3Priorities,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "find daily summary by day")
	}

	return summary, nil
}

// ListByUserAndRange retrieves summaries with log_date in [from, to),
// most recent first.
func (r *DailySummaryRepository) ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.DailySummary, error) {
	query := `
		SELECT id, user_id, log_date, dsa_problems, project_hours, commits_pushed,
			system_design_topic, applications_sent, mock_interviews,
			energy_rating, blocker, top3_priorities, created_at, updated_at
		FROM daily_summaries
		WHERE user_id = $1 AND log_date >= $2 AND log_date < $3
		ORDER BY log_date DESC`

	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, mapError(err, "list daily summaries")
	}
	defer rows.Close()

	var summaries []*models.DailySummary
	for rows.Next() {
		summary := &models.DailySummary{}
		err := rows.Scan(
			&summary.ID,
			&summary.UserID,
			&summary.LogDate,
			&summary.DsaProblems,
			&summary.ProjectHours,
			&summary.CommitsPushed,
			&summary.SystemDesignTopic,
			&summary.ApplicationsSent,
			&summary.MockInterviews,
			&summary.EnergyRating,
			&summary.Blocker,
			&summary.Top3Priorities,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, mapError(err, "list daily summaries")
		}
		summaries = append(summaries, summary)
	}

	return summaries, mapError(rows.Err(), "list daily summaries")
}

// Update replaces the summary's mutable fields in full and stamps updated_at
func (r *DailySummaryRepository) Update(ctx context.Context, summary *models.DailySummary) error {
	query := `
		UPDATE daily_summaries SET
			dsa_problems = $3,
			project_hours = $4,
			commits_pushed = $5,
			system_design_topic = $6,
			applications_sent = $7,
			mock_interviews = $8,
			energy_rating = $9,
			blocker = $10,
			top3_priorities = $11,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		summary.ID,
		summary.UserID,
		summary.DsaProblems,
		summary.ProjectHours,
		summary.CommitsPushed,
		summary.SystemDesignTopic,
		summary.ApplicationsSent,
		summary.MockInterviews,
		summary.EnergyRating,
		summary.Blocker,
		summary.Top3Priorities,
	).Scan(&summary.UpdatedAt)
	if err != nil {
		return mapError(err, "update daily summary")
	}

	return nil
}
