package catalog

import "devtrack-backend/models"

var PlanWeekendRecharge = models.DefaultPlanTemplate{
	Name:        "Weekend Recharge",
	Description: "Lighter weekend schedule that keeps momentum without burnout",
	DayType:     models.DayTypeWeekend,
	Activities: []models.TemplateActivity{
		{
			Name:        "Slow Morning",
			StartTime:   "08:00",
			EndTime:     "10:00",
			Category:    "health",
			Description: "Sleep in, long breakfast, walk",
		},
		{
			Name:        "Weekly Review",
			StartTime:   "10:00",
			EndTime:     "11:00",
			Category:    "review",
			Description: "Read the weekly report, adjust next week's plan",
		},
		{
			Name:        "Light Project Work",
			StartTime:   "11:00",
			EndTime:     "13:00",
			Category:    "project",
			Description: "Refactoring, docs, or something fun",
		},
		{
			Name:        "Free Afternoon",
			StartTime:   "13:00",
			EndTime:     "18:00",
			Category:    "break",
			Description: "No screens, see people",
		},
		{
			Name:        "Reading",
			StartTime:   "20:00",
			EndTime:     "21:00",
			Category:    "learning",
		},
	},
}
