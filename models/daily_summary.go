package models

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary is the end-of-day aggregate record of self-reported metrics.
// At most one summary exists per (user, UTC calendar day); LogDate is always
// stored truncated to 00:00:00 UTC of its day, and the daily_summaries table
// backs the invariant with a unique index on (user_id, log_date).
type DailySummary struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	LogDate           time.Time `json:"log_date"`
	DsaProblems       int       `json:"dsa_problems"`
	ProjectHours      float64   `json:"project_hours"`
	CommitsPushed     int       `json:"commits_pushed"`
	SystemDesignTopic *string   `json:"system_design_topic,omitempty"`
	ApplicationsSent  int       `json:"applications_sent"`
	MockInterviews    int       `json:"mock_interviews"`
	EnergyRating      *int      `json:"energy_rating,omitempty"` // 1..5
	Blocker           *string   `json:"blocker,omitempty"`
	Top3Priorities    []string  `json:"top3_priorities"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
