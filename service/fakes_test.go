package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"devtrack-backend/models"
	"devtrack-backend/repository"

	"github.com/google/uuid"
)

// In-memory store fakes. The summary fake enforces the same (user, day)
// uniqueness the daily_summaries index does, so the upsert race tests
// exercise the real conflict path.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user: %w", repository.ErrConflict)
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", repository.ErrNotFound)
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", repository.ErrNotFound)
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) UpdateSelectedPlan(ctx context.Context, userID uuid.UUID, planID *uuid.UUID, planName *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("update selected plan: %w", repository.ErrNotFound)
	}
	u.SelectedPlanID = planID
	u.SelectedPlanName = planName
	return nil
}

type fakePlanStore struct {
	mu    sync.Mutex
	plans map[uuid.UUID]*models.Plan

	createErr error
	deleteErr error
}

func newFakePlanStore() *fakePlanStore {
	return &fakePlanStore{plans: make(map[uuid.UUID]*models.Plan)}
}

func (f *fakePlanStore) Create(ctx context.Context, plan *models.Plan) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	plan.ID = uuid.New()
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = plan.CreatedAt
	stored := *plan
	f.plans[plan.ID] = &stored
	return nil
}

func (f *fakePlanStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.plans[id]
	if !ok || p.UserID != userID {
		return nil, fmt.Errorf("get plan: %w", repository.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (f *fakePlanStore) ListByUser(ctx context.Context, userID uuid.UUID, dayType *models.DayType) ([]*models.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Plan
	for _, p := range f.plans {
		if p.UserID != userID {
			continue
		}
		if dayType != nil && p.DayType != *dayType {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakePlanStore) Update(ctx context.Context, plan *models.Plan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.plans[plan.ID]; !ok {
		return fmt.Errorf("update plan: %w", repository.ErrNotFound)
	}
	stored := *plan
	f.plans[plan.ID] = &stored
	return nil
}

func (f *fakePlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.plans, id)
	return nil
}

func (f *fakePlanStore) DeleteCascade(ctx context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.plans[id]
	if !ok || p.UserID != userID {
		return fmt.Errorf("delete plan: %w", repository.ErrNotFound)
	}
	delete(f.plans, id)
	return nil
}

type fakeBlockStore struct {
	mu     sync.Mutex
	blocks []*models.ActivityBlock

	insertErr error
}

func (f *fakeBlockStore) BulkInsert(ctx context.Context, blocks []*models.ActivityBlock) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range blocks {
		b.ID = uuid.New()
		b.CreatedAt = time.Now()
		copied := *b
		f.blocks = append(f.blocks, &copied)
	}
	return nil
}

func (f *fakeBlockStore) ListByPlan(ctx context.Context, planID uuid.UUID, dayType *models.DayType) ([]*models.ActivityBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ActivityBlock
	for _, b := range f.blocks {
		if b.PlanID != planID {
			continue
		}
		if dayType != nil && b.DayType != *dayType {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBlockStore) DeleteByPlan(ctx context.Context, planID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.blocks[:0]
	for _, b := range f.blocks {
		if b.PlanID != planID {
			kept = append(kept, b)
		}
	}
	f.blocks = kept
	return nil
}

type fakeCustomBlockStore struct {
	mu     sync.Mutex
	blocks []*models.CustomActivityBlock
}

func (f *fakeCustomBlockStore) Create(ctx context.Context, block *models.CustomActivityBlock) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	block.ID = uuid.New()
	block.CreatedAt = time.Now()
	copied := *block
	f.blocks = append(f.blocks, &copied)
	return nil
}

func (f *fakeCustomBlockStore) NextOrder(ctx context.Context, planID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := 0
	for _, b := range f.blocks {
		if b.PlanID == planID && b.Order >= next {
			next = b.Order + 1
		}
	}
	return next, nil
}

func (f *fakeCustomBlockStore) ListByPlan(ctx context.Context, planID uuid.UUID) ([]*models.CustomActivityBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.CustomActivityBlock
	for _, b := range f.blocks {
		if b.PlanID == planID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCustomBlockStore) Delete(ctx context.Context, id, planID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.blocks {
		if b.ID == id && b.PlanID == planID {
			f.blocks = append(f.blocks[:i], f.blocks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete custom block: %w", repository.ErrNotFound)
}

func (f *fakeCustomBlockStore) DeleteByPlan(ctx context.Context, planID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.blocks[:0]
	for _, b := range f.blocks {
		if b.PlanID != planID {
			kept = append(kept, b)
		}
	}
	f.blocks = kept
	return nil
}

type fakeLogStore struct {
	mu   sync.Mutex
	logs map[uuid.UUID]*models.DailyLog
}

func newFakeLogStore() *fakeLogStore {
	return &fakeLogStore{logs: make(map[uuid.UUID]*models.DailyLog)}
}

func (f *fakeLogStore) Create(ctx context.Context, log *models.DailyLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.ID = uuid.New()
	log.CreatedAt = time.Now()
	log.UpdatedAt = log.CreatedAt
	stored := *log
	f.logs[log.ID] = &stored
	return nil
}

func (f *fakeLogStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.DailyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.logs[id]
	if !ok || l.UserID != userID {
		return nil, fmt.Errorf("get log: %w", repository.ErrNotFound)
	}
	copied := *l
	return &copied, nil
}

func (f *fakeLogStore) ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.DailyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.DailyLog
	for _, l := range f.logs {
		if l.UserID != userID {
			continue
		}
		if l.LogDate.Before(from) || !l.LogDate.Before(to) {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeLogStore) Update(ctx context.Context, log *models.DailyLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.logs[log.ID]; !ok {
		return fmt.Errorf("update log: %w", repository.ErrNotFound)
	}
	stored := *log
	f.logs[log.ID] = &stored
	return nil
}

func (f *fakeLogStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.logs[id]
	if !ok || l.UserID != userID {
		return fmt.Errorf("delete log: %w", repository.ErrNotFound)
	}
	delete(f.logs, id)
	return nil
}

type fakeSummaryStore struct {
	mu        sync.Mutex
	summaries map[uuid.UUID]*models.DailySummary
}

func newFakeSummaryStore() *fakeSummaryStore {
	return &fakeSummaryStore{summaries: make(map[uuid.UUID]*models.DailySummary)}
}

func (f *fakeSummaryStore) Create(ctx context.Context, summary *models.DailySummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.summaries {
		if s.UserID == summary.UserID && s.LogDate.Equal(summary.LogDate) {
			return fmt.Errorf("create daily summary: %w", repository.ErrConflict)
		}
	}
	summary.ID = uuid.New()
	summary.CreatedAt = time.Now()
	summary.UpdatedAt = summary.CreatedAt
	stored := *summary
	f.summaries[summary.ID] = &stored
	return nil
}

func (f *fakeSummaryStore) FindByUserAndDay(ctx context.Context, userID uuid.UUID, dayStart time.Time) (*models.DailySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dayEnd := dayStart.Add(24 * time.Hour)
	for _, s := range f.summaries {
		if s.UserID == userID && !s.LogDate.Before(dayStart) && s.LogDate.Before(dayEnd) {
			copied := *s
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("find daily summary by day: %w", repository.ErrNotFound)
}

func (f *fakeSummaryStore) ListByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.DailySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.DailySummary
	for _, s := range f.summaries {
		if s.UserID != userID {
			continue
		}
		if s.LogDate.Before(from) || !s.LogDate.Before(to) {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeSummaryStore) Update(ctx context.Context, summary *models.DailySummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.summaries[summary.ID]; !ok {
		return fmt.Errorf("update daily summary: %w", repository.ErrNotFound)
	}
	summary.UpdatedAt = time.Now()
	stored := *summary
	f.summaries[summary.ID] = &stored
	return nil
}
