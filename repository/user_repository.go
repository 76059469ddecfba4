package repository

import (
	"context"
	"fmt"
	"strings"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new user repository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. Emails are stored lowercased; a duplicate email
// surfaces as ErrConflict.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		strings.ToLower(user.Email),
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapError(err, "create user")
	}

	user.Email = strings.ToLower(user.Email)
	return nil
}

// GetByEmail retrieves a user by email, case-insensitively
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, password_hash, selected_plan_id, selected_plan_name,
			created_at, updated_at
		FROM users
		WHERE email = $1`

	err := r.db.QueryRow(ctx, query, strings.ToLower(email)).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.SelectedPlanID,
		&user.SelectedPlanName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "get user by email")
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, password_hash, selected_plan_id, selected_plan_name,
			created_at, updated_at
		FROM users
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.SelectedPlanID,
		&user.SelectedPlanName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, "get user by id")
	}

	return user, nil
}

// UpdateSelectedPlan sets the user's selected plan preference. Passing nil
// for both values clears the preference.
func (r *UserRepository) UpdateSelectedPlan(ctx context.Context, userID uuid.UUID, planID *uuid.UUID, planName *string) error {
	query := `
		UPDATE users SET
			selected_plan_id = $2,
			selected_plan_name = $3,
			updated_at = NOW()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, planID, planName)
	if err != nil {
		return mapError(err, "update selected plan")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update selected plan: %w", ErrNotFound)
	}

	return nil
}
