package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/jkivisto/maturemark/internal/export"
	"github.com/jkivisto/maturemark/internal/models"
	"github.com/stretchr/testify/require"
)

func scores(code, build, quality, security, testing, pkg, deploy, monitoring int) map[models.PillarKey]int {
	return map[models.PillarKey]int{
		models.PillarCode:        code,
		models.PillarBuild:       build,
		models.PillarCodeQuality: quality,
		models.PillarSecurity:    security,
		models.PillarTesting:     testing,
		models.PillarPackage:     pkg,
		models.PillarDeploy:      deploy,
		models.PillarMonitoring:  monitoring,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleRecords() []export.Record {
	return []export.Record{
		{
			AssessmentID: "a1",
			ProjectName:  "Mobile Banking API",
			Assessor:     "Sarah Johnson",
			Date:         date(2024, 1, 15),
			OverallScore: 91,
			PillarScores: scores(95, 90, 88, 92, 85, 90, 87, 93),
		},
		{
			AssessmentID: "a2",
			ProjectName:  "E-Commerce Platform",
			Assessor:     "John Smith",
			Date:         date(2024, 1, 10),
			OverallScore: 73,
			PillarScores: scores(80, 70, 60, 75, 75, 85, 65, 90),
		},
		{
			AssessmentID: "a3",
			ProjectName:  "Data Analytics Pipeline",
			Assessor:     "Mike Chen",
			Date:         date(2023, 12, 20),
			OverallScore: 45,
			PillarScores: scores(60, 45, 30, 35, 50, 40, 25, 70),
		},
	}
}

func TestRecords(t *testing.T) {
	completed := date(2024, 1, 15)
	projects := []models.Project{
		{
			ID:   "p1",
			Name: "Mobile Banking API",
			AssessmentHistory: []models.Assessment{
				{
					ID:            "a1",
					ProjectName:   "Mobile Banking API",
					Assessor:      "Sarah Johnson",
					LastUpdated:   date(2024, 1, 16),
					CompletedDate: &completed,
					OverallScore:  91,
					PillarScores:  scores(95, 90, 88, 92, 85, 90, 87, 93),
				},
			},
		},
		{
			ID:   "p2",
			Name: "Customer Portal",
			// No completed assessments yet: contributes no rows.
			CurrentAssessment: &models.Assessment{ID: "a9", Status: models.StatusInProgress},
		},
	}

	records := export.Records(projects)
	require.Len(t, records, 1)
	require.Equal(t, "a1", records[0].AssessmentID)
	// The row date is the completion date, not the later update.
	require.Equal(t, completed, records[0].Date)
	require.Equal(t, 91, records[0].OverallScore)
}

func TestFilter(t *testing.T) {
	records := sampleRecords()

	require.Len(t, export.Filter(records, ""), 3)

	byProject := export.Filter(records, "banking")
	require.Len(t, byProject, 1)
	require.Equal(t, "Mobile Banking API", byProject[0].ProjectName)

	byAssessor := export.Filter(records, "JOHN")
	require.Len(t, byAssessor, 2)

	require.Empty(t, export.Filter(records, "nobody"))
}

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		by      export.SortField
		wantIDs []string
	}{
		{name: "by date newest first", by: export.SortByDate, wantIDs: []string{"a1", "a2", "a3"}},
		{name: "by score highest first", by: export.SortByScore, wantIDs: []string{"a1", "a2", "a3"}},
		{name: "by project name", by: export.SortByProject, wantIDs: []string{"a3", "a2", "a1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := sampleRecords()
			// Shuffle deterministically so sorting has work to do.
			records[0], records[2] = records[2], records[0]

			export.Sort(records, tt.by)

			var ids []string
			for _, record := range records {
				ids = append(ids, record.AssessmentID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSummarize(t *testing.T) {
	stats := export.Summarize(sampleRecords(), date(2024, 1, 1))
	require.Equal(t, export.Stats{
		TotalAssessments: 3,
		AverageScore:     70, // round((91+73+45)/3)
		ActiveProjects:   3,
		CompletedSince:   2,
	}, stats)

	require.Equal(t, export.Stats{}, export.Summarize(nil, date(2024, 1, 1)))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleRecords()[:2]))

	want := "Project Name,Assessor,Date,Overall Score,Code,Build,Quality,Security,Testing,Package,Deploy,Monitoring\n" +
		"Mobile Banking API,Sarah Johnson,2024-01-15,91,95,90,88,92,85,90,87,93\n" +
		"E-Commerce Platform,John Smith,2024-01-10,73,80,70,60,75,75,85,65,90\n"
	require.Equal(t, want, buf.String())
}
