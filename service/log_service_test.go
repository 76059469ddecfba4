package service

import (
	"context"
	"testing"
	"time"

	"devtrack-backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDailyLogNormalizesDate(t *testing.T) {
	svc := NewLogService(LogWithStore(newFakeLogStore()))

	log, err := svc.CreateDailyLog(context.Background(), CreateLogRequest{
		UserID:          uuid.New(),
		LogDate:         time.Date(2026, 3, 14, 17, 45, 0, 0, time.UTC),
		ActivityBlockID: uuid.New(),
		Completed:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), log.LogDate)
}

func TestCreateDailyLogValidation(t *testing.T) {
	svc := NewLogService(LogWithStore(newFakeLogStore()))
	ctx := context.Background()

	_, err := svc.CreateDailyLog(ctx, CreateLogRequest{UserID: uuid.New(), LogDate: time.Now()})
	assert.ErrorIs(t, err, ErrLogFieldsMissing)

	_, err = svc.CreateDailyLog(ctx, CreateLogRequest{
		UserID:          uuid.New(),
		LogDate:         time.Now(),
		ActivityBlockID: uuid.New(),
		EnergyLevel:     intPtr(9),
	})
	assert.ErrorIs(t, err, ErrInvalidEnergyLevel)
}

func TestListDailyLogsFiltersByDay(t *testing.T) {
	store := newFakeLogStore()
	svc := NewLogService(LogWithStore(store))
	ctx := context.Background()
	userID := uuid.New()

	for _, date := range []time.Time{
		time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC),
	} {
		_, err := svc.CreateDailyLog(ctx, CreateLogRequest{
			UserID:          userID,
			LogDate:         date,
			ActivityBlockID: uuid.New(),
		})
		require.NoError(t, err)
	}

	logs, err := svc.ListDailyLogs(ctx, userID, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestUpdateDailyLogPartial(t *testing.T) {
	store := newFakeLogStore()
	svc := NewLogService(LogWithStore(store))
	ctx := context.Background()
	userID := uuid.New()

	notes := "started late"
	created, err := svc.CreateDailyLog(ctx, CreateLogRequest{
		UserID:          userID,
		LogDate:         time.Now().UTC(),
		ActivityBlockID: uuid.New(),
		Notes:           &notes,
	})
	require.NoError(t, err)

	completed := true
	updated, err := svc.UpdateDailyLog(ctx, UpdateLogRequest{
		ID:        created.ID,
		UserID:    userID,
		Completed: &completed,
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, notes, *updated.Notes)
}

func TestDeleteDailyLogOwnership(t *testing.T) {
	store := newFakeLogStore()
	svc := NewLogService(LogWithStore(store))
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreateDailyLog(ctx, CreateLogRequest{
		UserID:          userID,
		LogDate:         time.Now().UTC(),
		ActivityBlockID: uuid.New(),
	})
	require.NoError(t, err)

	err = svc.DeleteDailyLog(ctx, created.ID, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, svc.DeleteDailyLog(ctx, created.ID, userID))
}
