package catalog

import "devtrack-backend/models"

var PlanWeekdayGrind = models.DefaultPlanTemplate{
	Name:        "Weekday Grind",
	Description: "Structured deep-work weekday for engineers in job-search mode",
	DayType:     models.DayTypeWeekday,
	Activities: []models.TemplateActivity{
		{
			Name:        "Morning Routine",
			StartTime:   "07:00",
			EndTime:     "08:00",
			Category:    "health",
			Description: "Wake up, exercise, breakfast",
		},
		{
			Name:        "DSA Practice",
			StartTime:   "08:00",
			EndTime:     "10:00",
			Category:    "dsa",
			Description: "Two problems: one new topic, one review",
		},
		{
			Name:        "Project Work",
			StartTime:   "10:00",
			EndTime:     "13:00",
			Category:    "project",
			Description: "Feature work on the portfolio project, commits pushed",
		},
		{
			Name:        "Lunch Break",
			StartTime:   "13:00",
			EndTime:     "14:00",
			Category:    "break",
		},
		{
			Name:        "System Design Study",
			StartTime:   "14:00",
			EndTime:     "15:30",
			Category:    "system-design",
			Description: "One topic per day with notes",
		},
		{
			Name:        "Job Applications",
			StartTime:   "15:30",
			EndTime:     "17:00",
			Category:    "applications",
			Description: "Tailored applications and follow-ups",
		},
		{
			Name:        "Mock Interview / Behavioral Prep",
			StartTime:   "17:00",
			EndTime:     "18:00",
			Category:    "interview",
		},
		{
			Name:        "Evening Review",
			StartTime:   "21:00",
			EndTime:     "21:30",
			Category:    "review",
			Description: "Fill in the daily summary, plan tomorrow's top 3",
		},
	},
}
