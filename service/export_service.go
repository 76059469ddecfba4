package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"devtrack-backend/models"
	"devtrack-backend/storage"

	"github.com/google/uuid"
)

// ExportService writes a user's full tracker data as one JSON snapshot to
// the configured storage backend (local filesystem or S3).
type ExportService struct {
	planStore        PlanStore
	blockStore       ActivityBlockStore
	customBlockStore CustomActivityBlockStore
	logStore         DailyLogStore
	summaryStore     DailySummaryStore
	snapshots        storage.Storage
}

// ExportServiceOption is a functional option for ExportService
type ExportServiceOption func(*ExportService)

// ExportWithPlanStore sets the plan store
func ExportWithPlanStore(store PlanStore) ExportServiceOption {
	return func(s *ExportService) {
		s.planStore = store
	}
}

// ExportWithActivityBlockStore sets the template-origin block store
func ExportWithActivityBlockStore(store ActivityBlockStore) ExportServiceOption {
	return func(s *ExportService) {
		s.blockStore = store
	}
}

// ExportWithCustomActivityBlockStore sets the custom block store
func ExportWithCustomActivityBlockStore(store CustomActivityBlockStore) ExportServiceOption {
	return func(s *ExportService) {
		s.customBlockStore = store
	}
}

// ExportWithLogStore sets the daily log store
func ExportWithLogStore(store DailyLogStore) ExportServiceOption {
	return func(s *ExportService) {
		s.logStore = store
	}
}

// ExportWithSummaryStore sets the daily summary store
func ExportWithSummaryStore(store DailySummaryStore) ExportServiceOption {
	return func(s *ExportService) {
		s.summaryStore = store
	}
}

// ExportWithSnapshotStorage sets the snapshot storage backend
func ExportWithSnapshotStorage(snapshots storage.Storage) ExportServiceOption {
	return func(s *ExportService) {
		s.snapshots = snapshots
	}
}

// NewExportService creates a new export service
func NewExportService(opts ...ExportServiceOption) *ExportService {
	s := &ExportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// planExport is one plan with both kinds of blocks attached
type planExport struct {
	Plan             *models.Plan                  `json:"plan"`
	ActivityBlocks   []*models.ActivityBlock       `json:"activity_blocks"`
	CustomActivities []*models.CustomActivityBlock `json:"custom_activities"`
}

// snapshot is the exported document
type snapshot struct {
	ExportedAt time.Time              `json:"exported_at"`
	UserID     uuid.UUID              `json:"user_id"`
	Plans      []planExport           `json:"plans"`
	DailyLogs  []*models.DailyLog     `json:"daily_logs"`
	Summaries  []*models.DailySummary `json:"summaries"`
}

// SnapshotResult carries where the snapshot was stored
type SnapshotResult struct {
	StoragePath string `json:"storage_path"`
}

// Snapshot gathers everything the user owns and uploads it as one JSON
// document. Returns the storage path for later download.
func (s *ExportService) Snapshot(ctx context.Context, userID uuid.UUID) (*SnapshotResult, error) {
	if s.planStore == nil || s.blockStore == nil || s.customBlockStore == nil ||
		s.logStore == nil || s.summaryStore == nil {
		return nil, errors.New("export service stores not set")
	}
	if s.snapshots == nil {
		return nil, errors.New("snapshot storage not set")
	}

	now := time.Now().UTC()
	// Wide-open range: logs and summaries have no lower date bound.
	var epoch time.Time
	horizon := now.AddDate(0, 0, 1)

	plans, err := s.planStore.ListByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	doc := snapshot{
		ExportedAt: now,
		UserID:     userID,
		Plans:      make([]planExport, 0, len(plans)),
	}

	for _, plan := range plans {
		blocks, err := s.blockStore.ListByPlan(ctx, plan.ID, nil)
		if err != nil {
			return nil, err
		}
		custom, err := s.customBlockStore.ListByPlan(ctx, plan.ID)
		if err != nil {
			return nil, err
		}
		doc.Plans = append(doc.Plans, planExport{
			Plan:             plan,
			ActivityBlocks:   blocks,
			CustomActivities: custom,
		})
	}

	if doc.DailyLogs, err = s.logStore.ListByUserAndRange(ctx, userID, epoch, horizon); err != nil {
		return nil, err
	}
	if doc.Summaries, err = s.summaryStore.ListByUserAndRange(ctx, userID, epoch, horizon); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("devtrack-export-%s.json", now.Format("20060102-150405"))
	path, err := s.snapshots.Upload(ctx, uuid.New(), name, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("upload snapshot: %w", err)
	}

	return &SnapshotResult{StoragePath: path}, nil
}

// Download streams a previously stored snapshot back
func (s *ExportService) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	if s.snapshots == nil {
		return nil, errors.New("snapshot storage not set")
	}
	return s.snapshots.Download(ctx, storagePath)
}
