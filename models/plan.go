package models

import (
	"time"

	"github.com/google/uuid"
)

// DayType classifies a plan as a weekday or weekend schedule
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// Plan represents a user-owned daily plan composed of activity blocks
type Plan struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	DayType     DayType   `json:"day_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
