package service

import (
	"context"
	"errors"
	"math"
	"time"

	"devtrack-backend/models"

	"github.com/google/uuid"
)

// ReportService reduces stored logs and summaries into daily and weekly
// reports. Pure read-and-reduce: no mutation, and empty input yields zeroed
// aggregates rather than an error.
type ReportService struct {
	logStore     DailyLogStore
	summaryStore DailySummaryStore
}

// ReportServiceOption is a functional option for ReportService
type ReportServiceOption func(*ReportService)

// ReportWithLogStore sets the daily log store
func ReportWithLogStore(store DailyLogStore) ReportServiceOption {
	return func(s *ReportService) {
		s.logStore = store
	}
}

// ReportWithSummaryStore sets the daily summary store
func ReportWithSummaryStore(store DailySummaryStore) ReportServiceOption {
	return func(s *ReportService) {
		s.summaryStore = store
	}
}

// NewReportService creates a new report service
func NewReportService(opts ...ReportServiceOption) *ReportService {
	s := &ReportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DailyReport joins one day's log completion rate with that day's summary
type DailyReport struct {
	Date                time.Time            `json:"date"`
	TotalActivities     int                  `json:"total_activities"`
	CompletedActivities int                  `json:"completed_activities"`
	CompletionRate      int                  `json:"completion_rate"` // nearest percent, 0 when no logs
	Summary             *models.DailySummary `json:"summary,omitempty"`
}

// DailyReport builds the report for the UTC calendar day containing date
func (s *ReportService) DailyReport(ctx context.Context, userID uuid.UUID, date time.Time) (*DailyReport, error) {
	if s.logStore == nil || s.summaryStore == nil {
		return nil, errors.New("report service stores not set")
	}

	from, to := DayBoundsUTC(date)

	logs, err := s.logStore.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:            from,
		TotalActivities: len(logs),
	}
	for _, log := range logs {
		if log.Completed {
			report.CompletedActivities++
		}
	}
	if report.TotalActivities > 0 {
		report.CompletionRate = int(math.Round(float64(report.CompletedActivities) / float64(report.TotalActivities) * 100))
	}

	summaries, err := s.summaryStore.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(summaries) > 0 {
		report.Summary = summaries[0]
	}

	return report, nil
}

// WeeklyReport sums the numeric summary fields across one Sunday-to-Saturday
// week
type WeeklyReport struct {
	WeekStart             time.Time `json:"week_start"`
	WeekEnd               time.Time `json:"week_end"` // exclusive
	TotalDsaProblems      int       `json:"total_dsa_problems"`
	TotalProjectHours     float64   `json:"total_project_hours"`
	TotalCommitsPushed    int       `json:"total_commits_pushed"`
	TotalApplicationsSent int       `json:"total_applications_sent"`
	TotalMockInterviews   int       `json:"total_mock_interviews"`
	AvgEnergyRating       float64   `json:"avg_energy_rating"` // 1 decimal, 0 when no ratings
	DaysTracked           int       `json:"days_tracked"`      // days with a summary, out of 7
}

// WeeklyReport builds the report for the week containing date
func (s *ReportService) WeeklyReport(ctx context.Context, userID uuid.UUID, date time.Time) (*WeeklyReport, error) {
	if s.summaryStore == nil {
		return nil, errors.New("summary store not set")
	}

	from, to := WeekBoundsUTC(date)

	summaries, err := s.summaryStore.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	report := &WeeklyReport{
		WeekStart:   from,
		WeekEnd:     to,
		DaysTracked: len(summaries),
	}

	var energySum, energyCount int
	for _, summary := range summaries {
		report.TotalDsaProblems += summary.DsaProblems
		report.TotalProjectHours += summary.ProjectHours
		report.TotalCommitsPushed += summary.CommitsPushed
		report.TotalApplicationsSent += summary.ApplicationsSent
		report.TotalMockInterviews += summary.MockInterviews
		if summary.EnergyRating != nil {
			energySum += *summary.EnergyRating
			energyCount++
		}
	}
	if energyCount > 0 {
		report.AvgEnergyRating = math.Round(float64(energySum)/float64(energyCount)*10) / 10
	}

	return report, nil
}
