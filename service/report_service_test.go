package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportServiceForTest() (*ReportService, *fakeLogStore, *fakeSummaryStore) {
	logStore := newFakeLogStore()
	summaryStore := newFakeSummaryStore()
	svc := NewReportService(
		ReportWithLogStore(logStore),
		ReportWithSummaryStore(summaryStore),
	)
	return svc, logStore, summaryStore
}

func TestDailyReportCompletionRate(t *testing.T) {
	svc, logStore, _ := newReportServiceForTest()
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	logSvc := NewLogService(LogWithStore(logStore))
	for i, completed := range []bool{true, true, false} {
		_, err := logSvc.CreateDailyLog(ctx, CreateLogRequest{
			UserID:          userID,
			LogDate:         day.Add(time.Duration(i) * time.Hour),
			ActivityBlockID: uuid.New(),
			Completed:       completed,
		})
		require.NoError(t, err)
	}

	report, err := svc.DailyReport(ctx, userID, day)
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalActivities)
	assert.Equal(t, 2, report.CompletedActivities)
	assert.Equal(t, 67, report.CompletionRate)
	assert.Nil(t, report.Summary)
}

func TestDailyReportEmptyDay(t *testing.T) {
	svc, _, _ := newReportServiceForTest()

	report, err := svc.DailyReport(context.Background(), uuid.New(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalActivities)
	assert.Equal(t, 0, report.CompletionRate)
	assert.Nil(t, report.Summary)
}

func TestDailyReportIncludesSummary(t *testing.T) {
	svc, _, summaryStore := newReportServiceForTest()
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	summarySvc := NewSummaryService(SummaryWithStore(summaryStore))
	_, err := summarySvc.UpsertDailySummary(ctx, UpsertSummaryRequest{
		UserID:      userID,
		LogDate:     day,
		DsaProblems: 4,
	})
	require.NoError(t, err)

	report, err := svc.DailyReport(ctx, userID, day)
	require.NoError(t, err)
	require.NotNil(t, report.Summary)
	assert.Equal(t, 4, report.Summary.DsaProblems)
}

func TestWeeklyReportAggregates(t *testing.T) {
	svc, _, summaryStore := newReportServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	summarySvc := NewSummaryService(SummaryWithStore(summaryStore))

	// Monday and Tuesday of the week containing Wednesday 2026-03-11
	days := []struct {
		date         time.Time
		dsa          int
		hours        float64
		commits      int
		applications int
		mocks        int
		energy       *int
	}{
		{time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), 2, 3.5, 4, 1, 0, intPtr(4)},
		{time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 3, 1.5, 2, 2, 1, intPtr(3)},
	}
	for _, d := range days {
		_, err := summarySvc.UpsertDailySummary(ctx, UpsertSummaryRequest{
			UserID:           userID,
			LogDate:          d.date,
			DsaProblems:      d.dsa,
			ProjectHours:     d.hours,
			CommitsPushed:    d.commits,
			ApplicationsSent: d.applications,
			MockInterviews:   d.mocks,
			EnergyRating:     d.energy,
		})
		require.NoError(t, err)
	}

	report, err := svc.WeeklyReport(ctx, userID, time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), report.WeekStart)
	assert.Equal(t, 5, report.TotalDsaProblems)
	assert.InDelta(t, 5.0, report.TotalProjectHours, 0.001)
	assert.Equal(t, 6, report.TotalCommitsPushed)
	assert.Equal(t, 3, report.TotalApplicationsSent)
	assert.Equal(t, 1, report.TotalMockInterviews)
	assert.InDelta(t, 3.5, report.AvgEnergyRating, 0.001)
	assert.Equal(t, 2, report.DaysTracked)
}

func TestWeeklyReportEnergyIgnoresUnrated(t *testing.T) {
	svc, _, summaryStore := newReportServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	summarySvc := NewSummaryService(SummaryWithStore(summaryStore))
	_, err := summarySvc.UpsertDailySummary(ctx, UpsertSummaryRequest{
		UserID:       userID,
		LogDate:      time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EnergyRating: intPtr(5),
	})
	require.NoError(t, err)
	_, err = summarySvc.UpsertDailySummary(ctx, UpsertSummaryRequest{
		UserID:  userID,
		LogDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	report, err := svc.WeeklyReport(ctx, userID, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	// The mean covers only days with a rating
	assert.InDelta(t, 5.0, report.AvgEnergyRating, 0.001)
	assert.Equal(t, 2, report.DaysTracked)
}

func TestWeeklyReportEmptyWeek(t *testing.T) {
	svc, _, _ := newReportServiceForTest()

	report, err := svc.WeeklyReport(context.Background(), uuid.New(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalDsaProblems)
	assert.Equal(t, 0.0, report.AvgEnergyRating)
	assert.Equal(t, 0, report.DaysTracked)
}

func TestWeeklyReportExcludesNeighboringWeeks(t *testing.T) {
	svc, _, summaryStore := newReportServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	summarySvc := NewSummaryService(SummaryWithStore(summaryStore))
	// Saturday 03-07 belongs to the previous week, Sunday 03-15 to the next
	for _, date := range []time.Time{
		time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	} {
		_, err := summarySvc.UpsertDailySummary(ctx, UpsertSummaryRequest{
			UserID:      userID,
			LogDate:     date,
			DsaProblems: 1,
		})
		require.NoError(t, err)
	}

	report, err := svc.WeeklyReport(ctx, userID, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalDsaProblems)
	assert.Equal(t, 1, report.DaysTracked)
}
