package catalog

import "devtrack-backend/models"

// DefaultPlans is the fixed set of starter plans offered to every user.
// Order is stable and is the order returned by the default-plans endpoint.
var DefaultPlans = []models.DefaultPlanTemplate{
	PlanWeekdayGrind,
	PlanInterviewSprint,
	PlanWeekendRecharge,
}

// FindByName returns the template whose name exactly matches name, or nil.
func FindByName(name string) *models.DefaultPlanTemplate {
	for i := range DefaultPlans {
		if DefaultPlans[i].Name == name {
			return &DefaultPlans[i]
		}
	}
	return nil
}
