package catalog

import (
	"testing"

	"devtrack-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlansWellFormed(t *testing.T) {
	require.NotEmpty(t, DefaultPlans)

	seen := make(map[string]bool)
	for _, plan := range DefaultPlans {
		assert.NotEmpty(t, plan.Name)
		assert.NotEmpty(t, plan.Description)
		assert.Contains(t, []models.DayType{models.DayTypeWeekday, models.DayTypeWeekend}, plan.DayType)
		assert.False(t, seen[plan.Name], "duplicate template name %q", plan.Name)
		seen[plan.Name] = true

		require.NotEmpty(t, plan.Activities, "template %q has no activities", plan.Name)
		for _, activity := range plan.Activities {
			assert.NotEmpty(t, activity.Name)
			assert.NotEmpty(t, activity.Category)
			assert.Regexp(t, `^\d{2}:\d{2}$`, activity.StartTime)
			assert.Regexp(t, `^\d{2}:\d{2}$`, activity.EndTime)
			assert.Less(t, activity.StartTime, activity.EndTime,
				"template %q activity %q must not span midnight", plan.Name, activity.Name)
		}
	}
}

func TestFindByName(t *testing.T) {
	plan := FindByName("Weekday Grind")
	require.NotNil(t, plan)
	assert.Equal(t, models.DayTypeWeekday, plan.DayType)

	// Exact match only
	assert.Nil(t, FindByName("weekday grind"))
	assert.Nil(t, FindByName(""))
}
