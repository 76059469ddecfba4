package models

// TemplateActivity is one time-boxed slot inside a default plan template.
// Duration and order are derived at clone time, not stored on the template.
type TemplateActivity struct {
	Name        string `json:"name"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// DefaultPlanTemplate is a read-only starter plan offered to all users for
// cloning. Templates live in the static catalog and are never persisted.
type DefaultPlanTemplate struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	DayType     DayType            `json:"dayType"`
	Activities  []TemplateActivity `json:"activities"`
}
