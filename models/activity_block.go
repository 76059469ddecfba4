package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityBlock is a scheduled slot within a plan, created by cloning a
// default plan template. Times are HH:MM wall-clock strings; DurationMinutes
// must equal the minute difference between EndTime and StartTime.
type ActivityBlock struct {
	ID              uuid.UUID `json:"id"`
	PlanID          uuid.UUID `json:"plan_id"`
	Name            string    `json:"name"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Category        string    `json:"category"`
	DayType         DayType   `json:"day_type"`
	Description     *string   `json:"description,omitempty"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}

// CustomActivityBlock is a user-authored slot within a plan. Order is the
// insertion position; it stays sparse after deletions (no renormalization).
type CustomActivityBlock struct {
	ID              uuid.UUID `json:"id"`
	PlanID          uuid.UUID `json:"plan_id"`
	Name            string    `json:"name"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Category        string    `json:"category"`
	Description     *string   `json:"description,omitempty"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}
