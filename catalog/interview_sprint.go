package catalog

import "devtrack-backend/models"

var PlanInterviewSprint = models.DefaultPlanTemplate{
	Name:        "Interview Sprint",
	Description: "Interview-heavy weekday for the final stretch before onsites",
	DayType:     models.DayTypeWeekday,
	Activities: []models.TemplateActivity{
		{
			Name:        "Warm-up Problem",
			StartTime:   "08:00",
			EndTime:     "08:45",
			Category:    "dsa",
			Description: "One easy/medium problem to get moving",
		},
		{
			Name:        "Timed Mock Interview",
			StartTime:   "09:00",
			EndTime:     "10:00",
			Category:    "interview",
			Description: "45 minute mock plus debrief notes",
		},
		{
			Name:        "Weak-area Drilling",
			StartTime:   "10:15",
			EndTime:     "12:00",
			Category:    "dsa",
			Description: "Focus topics from the last debrief",
		},
		{
			Name:        "Lunch Break",
			StartTime:   "12:00",
			EndTime:     "13:00",
			Category:    "break",
		},
		{
			Name:        "System Design Mock",
			StartTime:   "13:00",
			EndTime:     "14:00",
			Category:    "system-design",
		},
		{
			Name:        "Company Research",
			StartTime:   "14:15",
			EndTime:     "15:00",
			Category:    "applications",
			Description: "Research upcoming interviewers and products",
		},
		{
			Name:        "Behavioral Story Bank",
			StartTime:   "15:00",
			EndTime:     "16:00",
			Category:    "interview",
			Description: "STAR stories, one new story per day",
		},
	},
}
