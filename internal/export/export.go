// Package export flattens completed assessments into report rows for the
// history view and CSV download.
package export

import (
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jkivisto/maturemark/internal/catalog"
	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/models"
)

// Record is one flat history row. PillarScores is keyed by the canonical
// pillar keys; consumers emit them in catalog order: code, build, codeQuality,
// security, testing, package, deploy, monitoring.
type Record struct {
	AssessmentID string                   `json:"assessmentId"`
	ProjectName  string                   `json:"projectName"`
	Assessor     string                   `json:"assessor"`
	Date         time.Time                `json:"date"`
	OverallScore int                      `json:"overallScore"`
	PillarScores map[models.PillarKey]int `json:"pillarScores"`
}

// SortField selects the history ordering.
type SortField string

const (
	SortByDate    SortField = "date"
	SortByScore   SortField = "score"
	SortByProject SortField = "project"
)

// Records flattens every history entry of the given projects into rows. The
// row date is the completion date, falling back to the last update for
// records persisted without one.
func Records(projects []models.Project) []Record {
	var records []Record
	for _, project := range projects {
		for _, assessment := range project.AssessmentHistory {
			date := assessment.LastUpdated
			if assessment.CompletedDate != nil {
				date = *assessment.CompletedDate
			}
			records = append(records, Record{
				AssessmentID: assessment.ID,
				ProjectName:  assessment.ProjectName,
				Assessor:     assessment.Assessor,
				Date:         date,
				OverallScore: assessment.OverallScore,
				PillarScores: assessment.PillarScores,
			})
		}
	}
	return records
}

// Filter keeps records whose project name or assessor contains the search
// term, case-insensitively. An empty term keeps everything.
func Filter(records []Record, search string) []Record {
	if search == "" {
		return records
	}
	search = strings.ToLower(search)
	var filtered []Record
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.ProjectName), search) ||
			strings.Contains(strings.ToLower(record.Assessor), search) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Sort orders records in place: newest first by date, highest first by score,
// or alphabetically by project name.
func Sort(records []Record, by SortField) {
	sort.SliceStable(records, func(i, j int) bool {
		switch by {
		case SortByScore:
			return records[i].OverallScore > records[j].OverallScore
		case SortByProject:
			return records[i].ProjectName < records[j].ProjectName
		default:
			return records[i].Date.After(records[j].Date)
		}
	})
}

// Stats summarizes a record list for the history overview cards.
type Stats struct {
	TotalAssessments int `json:"totalAssessments"`
	AverageScore     int `json:"averageScore"`
	ActiveProjects   int `json:"activeProjects"`
	CompletedSince   int `json:"completedSince"`
}

// Summarize computes overview stats; CompletedSince counts records dated at or
// after the cutoff.
func Summarize(records []Record, since time.Time) Stats {
	stats := Stats{TotalAssessments: len(records)}
	if len(records) == 0 {
		return stats
	}

	scoreSum := 0
	projectNames := make(map[string]struct{})
	for _, record := range records {
		scoreSum += record.OverallScore
		projectNames[record.ProjectName] = struct{}{}
		if !record.Date.Before(since) {
			stats.CompletedSince++
		}
	}
	stats.AverageScore = int(math.Round(float64(scoreSum) / float64(len(records))))
	stats.ActiveProjects = len(projectNames)
	return stats
}

// WriteCSV emits the records with the fixed header and pillar column order the
// reporting consumers depend on.
func WriteCSV(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)

	header := []string{
		"Project Name", "Assessor", "Date", "Overall Score",
		"Code", "Build", "Quality", "Security", "Testing", "Package", "Deploy", "Monitoring",
	}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	for _, record := range records {
		row := []string{
			record.ProjectName,
			record.Assessor,
			record.Date.Format(time.DateOnly),
			strconv.Itoa(record.OverallScore),
		}
		for _, key := range catalog.Keys() {
			row = append(row, strconv.Itoa(record.PillarScores[key]))
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "write csv row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return nil
}
