package models

import "time"

// Project owns its current assessment and the history of completed ones. An
// assessment always belongs to exactly one project via its ProjectID.
type Project struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	CreatedDate       time.Time    `json:"createdDate"`
	LastAssessed      *time.Time   `json:"lastAssessed,omitempty"`
	CurrentAssessment *Assessment  `json:"currentAssessment,omitempty"`
	AssessmentHistory []Assessment `json:"assessmentHistory"`
}
