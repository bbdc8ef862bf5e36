package models

import "time"

// AssessmentStatus follows the answered-question count: no answers, some
// answers, or all of them.
type AssessmentStatus string

const (
	StatusNotStarted AssessmentStatus = "not-started"
	StatusInProgress AssessmentStatus = "in-progress"
	StatusCompleted  AssessmentStatus = "completed"
)

// Assessment is one evaluation pass over the full question catalog for a
// project. Scores and status are derived from the answer set on every update.
//
// CompletedDate is set on the first transition into completed status and is
// never cleared, even if clearing an answer later regresses the status back to
// in-progress.
type Assessment struct {
	ID            string            `json:"id"`
	ProjectID     string            `json:"projectId"`
	ProjectName   string            `json:"projectName"`
	Assessor      string            `json:"assessor"`
	StartDate     time.Time         `json:"startDate"`
	LastUpdated   time.Time         `json:"lastUpdated"`
	CompletedDate *time.Time        `json:"completedDate,omitempty"`
	Status        AssessmentStatus  `json:"status"`
	Answers       map[string]Answer `json:"answers"`
	PillarScores  map[PillarKey]int `json:"pillarScores"`
	OverallScore  int               `json:"overallScore"`
}
