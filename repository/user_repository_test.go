package repository

import (
	"context"
	"testing"
	"time"

	"devtrack-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepoMock(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestUserCreateLowercasesEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("dev@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(uuid.New(), now, now))

	user := &models.User{Email: "Dev@Example.COM", PasswordHash: "hash"}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("dev@example.com", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := repo.Create(context.Background(), &models.User{Email: "dev@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByEmailNotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs("nobody@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "Nobody@Example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSelectedPlanNotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	userID := uuid.New()

	var planID *uuid.UUID
	var planName *string

	mock.ExpectExec(`UPDATE users SET`).
		WithArgs(userID, planID, planName).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := repo.UpdateSelectedPlan(context.Background(), userID, planID, planName)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSelectedPlan(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	userID := uuid.New()
	planID := uuid.New()
	planName := "Weekday Grind"

	mock.ExpectExec(`UPDATE users SET`).
		WithArgs(userID, &planID, &planName).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateSelectedPlan(context.Background(), userID, &planID, &planName)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
