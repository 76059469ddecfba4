package service

import (
	"context"
	"errors"
	"time"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

var (
	ErrLogFieldsMissing   = errors.New("logDate and activityBlockId are required")
	ErrInvalidEnergyLevel = errors.New("energy level must be between 1 and 5")
)

// LogService handles per-activity completion records
type LogService struct {
	logStore DailyLogStore
}

// LogServiceOption is a functional option for LogService
type LogServiceOption func(*LogService)

// LogWithStore sets the daily log store
func LogWithStore(store DailyLogStore) LogServiceOption {
	return func(s *LogService) {
		s.logStore = store
	}
}

// NewLogService creates a new log service
func NewLogService(opts ...LogServiceOption) *LogService {
	s := &LogService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateLogRequest represents a request to record one activity for one day
type CreateLogRequest struct {
	UserID          uuid.UUID
	LogDate         time.Time
	ActivityBlockID uuid.UUID
	Completed       bool
	ActualStartTime *time.Time
	ActualEndTime   *time.Time
	Notes           *string
	EnergyLevel     *int
}

// CreateDailyLog records an activity for a day. The log date is normalized
// to the UTC day start, the same convention the read-side range filters use.
func (s *LogService) CreateDailyLog(ctx context.Context, req CreateLogRequest) (*models.DailyLog, error) {
	if s.logStore == nil {
		return nil, errors.New("log store not set")
	}

	if req.LogDate.IsZero() || req.ActivityBlockID == uuid.Nil {
		return nil, ErrLogFieldsMissing
	}
	if req.EnergyLevel != nil && (*req.EnergyLevel < 1 || *req.EnergyLevel > 5) {
		return nil, ErrInvalidEnergyLevel
	}

	log := &models.DailyLog{
		UserID:          req.UserID,
		LogDate:         StartOfDayUTC(req.LogDate),
		ActivityBlockID: req.ActivityBlockID,
		Completed:       req.Completed,
		ActualStartTime: req.ActualStartTime,
		ActualEndTime:   req.ActualEndTime,
		Notes:           req.Notes,
		EnergyLevel:     req.EnergyLevel,
	}
	if err := s.logStore.Create(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

// ListDailyLogs returns the user's logs for one UTC calendar day, oldest first
func (s *LogService) ListDailyLogs(ctx context.Context, userID uuid.UUID, date time.Time) ([]*models.DailyLog, error) {
	if s.logStore == nil {
		return nil, errors.New("log store not set")
	}

	from, to := DayBoundsUTC(date)
	return s.logStore.ListByUserAndRange(ctx, userID, from, to)
}

// UpdateLogRequest patches a log's fields; nil fields are left unchanged
type UpdateLogRequest struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Completed       *bool
	ActualStartTime *time.Time
	ActualEndTime   *time.Time
	Notes           *string
	EnergyLevel     *int
}

// UpdateDailyLog applies a partial update to an owned log
func (s *LogService) UpdateDailyLog(ctx context.Context, req UpdateLogRequest) (*models.DailyLog, error) {
	if s.logStore == nil {
		return nil, errors.New("log store not set")
	}

	if req.EnergyLevel != nil && (*req.EnergyLevel < 1 || *req.EnergyLevel > 5) {
		return nil, ErrInvalidEnergyLevel
	}

	log, err := s.logStore.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Completed != nil {
		log.Completed = *req.Completed
	}
	if req.ActualStartTime != nil {
		log.ActualStartTime = req.ActualStartTime
	}
	if req.ActualEndTime != nil {
		log.ActualEndTime = req.ActualEndTime
	}
	if req.Notes != nil {
		log.Notes = req.Notes
	}
	if req.EnergyLevel != nil {
		log.EnergyLevel = req.EnergyLevel
	}

	if err := s.logStore.Update(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

// DeleteDailyLog removes an owned log by id
func (s *LogService) DeleteDailyLog(ctx context.Context, id, userID uuid.UUID) error {
	if s.logStore == nil {
		return errors.New("log store not set")
	}
	return s.logStore.Delete(ctx, id, userID)
}
