package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is a per-day, per-activity completion record
type DailyLog struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	LogDate         time.Time  `json:"log_date"`
	ActivityBlockID uuid.UUID  `json:"activity_block_id"`
	Completed       bool       `json:"completed"`
	ActualStartTime *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime   *time.Time `json:"actual_end_time,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	EnergyLevel     *int       `json:"energy_level,omitempty"` // 1..5
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
