package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user entity
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Selected plan preference, cleared to null when the plan is deselected
	SelectedPlanID   *uuid.UUID `json:"selected_plan_id,omitempty"`
	SelectedPlanName *string    `json:"selected_plan_name,omitempty"`
}
