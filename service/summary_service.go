package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"devtrack-backend/models"
	"devtrack-backend/repository"

	"github.com/google/uuid"
)

var (
	ErrLogDateRequired     = errors.New("logDate is required")
	ErrInvalidEnergyRating = errors.New("energy rating must be between 1 and 5")
	// ErrSummaryConflict means a concurrent upsert for the same (user, day)
	// won the insert race. The caller should re-fetch and retry.
	ErrSummaryConflict = errors.New("a summary for this day was written concurrently")
)

// SummaryService maintains the one-summary-per-user-per-day invariant across
// repeated submissions.
type SummaryService struct {
	summaryStore DailySummaryStore
}

// SummaryServiceOption is a functional option for SummaryService
type SummaryServiceOption func(*SummaryService)

// SummaryWithStore sets the daily summary store
func SummaryWithStore(store DailySummaryStore) SummaryServiceOption {
	return func(s *SummaryService) {
		s.summaryStore = store
	}
}

// NewSummaryService creates a new summary service
func NewSummaryService(opts ...SummaryServiceOption) *SummaryService {
	s := &SummaryService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UpsertSummaryRequest carries one day's summary fields. Numeric fields
// default to zero when absent from the submission; optional fields stay nil.
type UpsertSummaryRequest struct {
	UserID            uuid.UUID
	LogDate           time.Time
	DsaProblems       int
	ProjectHours      float64
	CommitsPushed     int
	SystemDesignTopic *string
	ApplicationsSent  int
	MockInterviews    int
	EnergyRating      *int
	Blocker           *string
	Top3Priorities    []string
}

// UpsertSummaryResult carries the stored record and whether it was created
// (201) or an existing day's record updated in place (200).
type UpsertSummaryResult struct {
	Summary *models.DailySummary
	Created bool
}

// UpsertDailySummary creates or fully replaces the summary for the UTC
// calendar day containing req.LogDate.
//
// The write is check-then-write: an existence query over the day's
// [start, next-day) bounds, then either an in-place update or an insert
// anchored at the day start. The check and the insert are not atomic; the
// (user_id, log_date) unique index closes the race, and the losing insert
// comes back as ErrSummaryConflict.
func (s *SummaryService) UpsertDailySummary(ctx context.Context, req UpsertSummaryRequest) (*UpsertSummaryResult, error) {
	if s.summaryStore == nil {
		return nil, errors.New("summary store not set")
	}

	if req.LogDate.IsZero() {
		return nil, ErrLogDateRequired
	}
	if req.EnergyRating != nil && (*req.EnergyRating < 1 || *req.EnergyRating > 5) {
		return nil, ErrInvalidEnergyRating
	}

	day := StartOfDayUTC(req.LogDate)
	priorities := filterPriorities(req.Top3Priorities)

	existing, err := s.summaryStore.FindByUserAndDay(ctx, req.UserID, day)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		// Full replace of the mutable fields: absent optional fields
		// overwrite what was stored, they are not preserved.
		existing.DsaProblems = req.DsaProblems
		existing.ProjectHours = req.ProjectHours
		existing.CommitsPushed = req.CommitsPushed
		existing.SystemDesignTopic = req.SystemDesignTopic
		existing.ApplicationsSent = req.ApplicationsSent
		existing.MockInterviews = req.MockInterviews
		existing.EnergyRating = req.EnergyRating
		existing.Blocker = req.Blocker
		existing.Top3Priorities = priorities

		if err := s.summaryStore.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &UpsertSummaryResult{Summary: existing, Created: false}, nil
	}

	summary := &models.DailySummary{
		UserID:            req.UserID,
		LogDate:           day,
		DsaProblems:       req.DsaProblems,
		ProjectHours:      req.ProjectHours,
		CommitsPushed:     req.CommitsPushed,
		SystemDesignTopic: req.SystemDesignTopic,
		ApplicationsSent:  req.ApplicationsSent,
		MockInterviews:    req.MockInterviews,
		EnergyRating:      req.EnergyRating,
		Blocker:           req.Blocker,
		Top3Priorities:    priorities,
	}

	if err := s.summaryStore.Create(ctx, summary); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrSummaryConflict
		}
		return nil, err
	}

	return &UpsertSummaryResult{Summary: summary, Created: true}, nil
}

// GetSummariesForDay returns the summaries for a single UTC calendar day
// (at most one per the invariant), most recent first.
func (s *SummaryService) GetSummariesForDay(ctx context.Context, userID uuid.UUID, date time.Time) ([]*models.DailySummary, error) {
	if s.summaryStore == nil {
		return nil, errors.New("summary store not set")
	}

	from, to := DayBoundsUTC(date)
	return s.summaryStore.ListByUserAndRange(ctx, userID, from, to)
}

// GetSummariesForRange returns the summaries for the UTC days spanning
// [startDate's day, endDate's day], most recent first.
func (s *SummaryService) GetSummariesForRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*models.DailySummary, error) {
	if s.summaryStore == nil {
		return nil, errors.New("summary store not set")
	}

	from := StartOfDayUTC(startDate)
	_, to := DayBoundsUTC(endDate)
	return s.summaryStore.ListByUserAndRange(ctx, userID, from, to)
}

// filterPriorities drops blank and whitespace-only entries, preserving order
func filterPriorities(priorities []string) []string {
	filtered := make([]string, 0, len(priorities))
	for _, p := range priorities {
		if strings.TrimSpace(p) != "" {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
