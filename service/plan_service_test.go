package service

import (
	"context"
	"testing"

	"devtrack-backend/models"
	"devtrack-backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanServiceForTest() (*PlanService, *fakePlanStore, *fakeCustomBlockStore) {
	planStore := newFakePlanStore()
	customStore := &fakeCustomBlockStore{}
	svc := NewPlanService(
		PlanWithPlanStore(planStore),
		PlanWithActivityBlockStore(&fakeBlockStore{}),
		PlanWithCustomActivityBlockStore(customStore),
	)
	return svc, planStore, customStore
}

func TestCreatePlanWithInlineActivities(t *testing.T) {
	svc, _, _ := newPlanServiceForTest()
	userID := uuid.New()

	result, err := svc.CreatePlan(context.Background(), CreatePlanRequest{
		UserID: userID,
		Name:   "Deep Work",
		Activities: []NewActivity{
			{Name: "Focus block", StartTime: "09:00", EndTime: "11:00", Category: "project"},
			{Name: "Review", StartTime: "11:00", EndTime: "11:30", Category: "admin"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.DayTypeWeekday, result.Plan.DayType)
	require.Len(t, result.Activities, 2)
	assert.Equal(t, 0, result.Activities[0].Order)
	assert.Equal(t, 120, result.Activities[0].DurationMinutes)
	assert.Equal(t, 1, result.Activities[1].Order)
	assert.Equal(t, 30, result.Activities[1].DurationMinutes)
	assert.Equal(t, result.Plan.ID, result.Activities[0].PlanID)
}

func TestCreatePlanValidation(t *testing.T) {
	svc, planStore, _ := newPlanServiceForTest()
	ctx := context.Background()

	_, err := svc.CreatePlan(ctx, CreatePlanRequest{UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.CreatePlan(ctx, CreatePlanRequest{
		UserID:  uuid.New(),
		Name:    "Bad day type",
		DayType: models.DayType("holiday"),
	})
	assert.ErrorIs(t, err, ErrInvalidDayType)

	_, err = svc.CreatePlan(ctx, CreatePlanRequest{
		UserID: uuid.New(),
		Name:   "Missing fields",
		Activities: []NewActivity{
			{Name: "No times", Category: "dsa"},
		},
	})
	assert.ErrorIs(t, err, ErrActivityFieldsMissing)

	// Activity validation happens before the plan write
	assert.Empty(t, planStore.plans)
}

func TestUpdatePlanPatchesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := newPlanServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	desc := "original description"
	created, err := svc.CreatePlan(ctx, CreatePlanRequest{
		UserID:      userID,
		Name:        "Original",
		Description: &desc,
	})
	require.NoError(t, err)

	newName := "Renamed"
	updated, err := svc.UpdatePlan(ctx, UpdatePlanRequest{
		ID:     created.Plan.ID,
		UserID: userID,
		Name:   &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestPlanOwnershipEnforced(t *testing.T) {
	svc, _, _ := newPlanServiceForTest()
	ctx := context.Background()
	owner := uuid.New()

	created, err := svc.CreatePlan(ctx, CreatePlanRequest{UserID: owner, Name: "Private"})
	require.NoError(t, err)

	// Another user cannot see, update or delete the plan
	stranger := uuid.New()
	_, err = svc.ListPlanActivities(ctx, created.Plan.ID, stranger)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	name := "Hijacked"
	_, err = svc.UpdatePlan(ctx, UpdatePlanRequest{ID: created.Plan.ID, UserID: stranger, Name: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.DeletePlan(ctx, created.Plan.ID, stranger)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddPlanActivityAssignsSparseOrder(t *testing.T) {
	svc, _, customStore := newPlanServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreatePlan(ctx, CreatePlanRequest{
		UserID: userID,
		Name:   "Sparse",
		Activities: []NewActivity{
			{Name: "A", StartTime: "08:00", EndTime: "09:00", Category: "dsa"},
			{Name: "B", StartTime: "09:00", EndTime: "10:00", Category: "dsa"},
		},
	})
	require.NoError(t, err)
	planID := created.Plan.ID

	// Delete the first block, then append: the new block takes max+1, the
	// freed slot is not reused.
	require.NoError(t, svc.DeletePlanActivity(ctx, created.Activities[0].ID, planID, userID))

	block, err := svc.AddPlanActivity(ctx, AddActivityRequest{
		PlanID:    planID,
		UserID:    userID,
		Name:      "C",
		StartTime: "10:00",
		EndTime:   "11:00",
		Category:  "dsa",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, block.Order)

	remaining, err := customStore.ListByPlan(ctx, planID)
	require.NoError(t, err)
	assert.Len(t, remaining, 2)
}

func TestDeletePlanCascades(t *testing.T) {
	svc, planStore, _ := newPlanServiceForTest()
	ctx := context.Background()
	userID := uuid.New()

	created, err := svc.CreatePlan(ctx, CreatePlanRequest{UserID: userID, Name: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlan(ctx, created.Plan.ID, userID))
	assert.Empty(t, planStore.plans)
}
