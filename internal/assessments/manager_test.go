package assessments_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"testing/iotest"
	"time"

	"github.com/jkivisto/maturemark/internal/assessments"
	"github.com/jkivisto/maturemark/internal/catalog"
	"github.com/jkivisto/maturemark/internal/kvstore"
	"github.com/jkivisto/maturemark/internal/models"
	"github.com/jkivisto/maturemark/internal/repositories"
	"github.com/jkivisto/maturemark/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	manager  *assessments.Manager
	projects *repositories.ProjectRepository
	clock    *time.Time
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	store, err := kvstore.Open(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := testhelpers.NewLogger(io.Discard)
	projects := repositories.NewProjectRepository(store, logger)

	now := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	manager := assessments.NewManager(projects, logger, assessments.WithClock(func() time.Time {
		return now
	}))
	return fixture{manager: manager, projects: projects, clock: &now}
}

func (f fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func (f fixture) createProject(t *testing.T) *models.Project {
	t.Helper()
	project, err := f.manager.CreateProject(context.Background(), "Mobile Banking API", "Payments backend")
	require.NoError(t, err)
	return project
}

func yes() *models.Response {
	r := models.ResponseYes
	return &r
}

func no() *models.Response {
	r := models.ResponseNo
	return &r
}

func unset() *models.Response {
	r := models.ResponseUnset
	return &r
}

// answerAll records a response for every catalog question.
func answerAll(t *testing.T, f fixture, projectID string, response *models.Response) *models.Assessment {
	t.Helper()
	var (
		assessment *models.Assessment
		err        error
	)
	for _, pillar := range catalog.Pillars() {
		for _, question := range pillar.Questions {
			assessment, err = f.manager.RecordAnswer(context.Background(), projectID, question.ID,
				models.AnswerPatch{Response: response})
			require.NoError(t, err)
		}
	}
	return assessment
}

func TestCreateProject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	project := f.createProject(t)
	require.NotEmpty(t, project.ID)
	require.Nil(t, project.CurrentAssessment)
	require.Empty(t, project.AssessmentHistory)

	stored, err := f.projects.Get(context.Background(), project.ID)
	require.NoError(t, err)
	require.Equal(t, *project, *stored)
}

func TestEnsureAssessment(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	assessment, err := f.manager.EnsureAssessment(ctx, project.ID, "Sarah Johnson")
	require.NoError(t, err)
	require.Equal(t, models.StatusNotStarted, assessment.Status)
	require.Equal(t, "Sarah Johnson", assessment.Assessor)
	require.Equal(t, project.ID, assessment.ProjectID)
	require.Equal(t, project.Name, assessment.ProjectName)
	require.Equal(t, 0, assessment.OverallScore)
	require.Empty(t, assessment.Answers)
	require.Nil(t, assessment.CompletedDate)
	require.Equal(t, assessment.StartDate, assessment.LastUpdated)

	// The lazily created assessment is persisted immediately.
	stored, err := f.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentAssessment)
	require.Equal(t, assessment.ID, stored.CurrentAssessment.ID)

	// A second call returns the existing assessment instead of a new one.
	again, err := f.manager.EnsureAssessment(ctx, project.ID, "Someone Else")
	require.NoError(t, err)
	require.Equal(t, assessment.ID, again.ID)
	require.Equal(t, "Sarah Johnson", again.Assessor)
}

func TestEnsureAssessmentMissingProject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.manager.EnsureAssessment(context.Background(), "missing", "")
	require.ErrorIs(t, err, repositories.ErrProjectNotFound)
}

func TestRecordAnswerMissingProject(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.manager.RecordAnswer(context.Background(), "missing", "code-001",
		models.AnswerPatch{Response: yes()})
	require.ErrorIs(t, err, repositories.ErrProjectNotFound)
}

func TestRecordAnswerLazilyCreatesAssessment(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	project := f.createProject(t)

	assessment, err := f.manager.RecordAnswer(context.Background(), project.ID, "code-001",
		models.AnswerPatch{Response: yes()})
	require.NoError(t, err)
	require.Equal(t, models.StatusInProgress, assessment.Status)
	require.Equal(t, 17, assessment.PillarScores[models.PillarCode])

	stored, err := f.projects.Get(context.Background(), project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentAssessment)
	require.NotNil(t, stored.LastAssessed)
	require.Equal(t, assessment.LastUpdated, *stored.LastAssessed)
}

func TestRecordAnswerPatchKeepsOmittedFields(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	notes := "verified in the team's Jenkins instance"
	_, err := f.manager.RecordAnswer(ctx, project.ID, "build-001",
		models.AnswerPatch{Response: yes(), Notes: &notes})
	require.NoError(t, err)

	// Patching only the notes keeps the response.
	updated := "rechecked after the pipeline migration"
	assessment, err := f.manager.RecordAnswer(ctx, project.ID, "build-001",
		models.AnswerPatch{Notes: &updated})
	require.NoError(t, err)

	answer := assessment.Answers["build-001"]
	require.Equal(t, models.ResponseYes, answer.Response)
	require.Equal(t, updated, answer.Notes)

	// Patching only the response keeps the notes.
	assessment, err = f.manager.RecordAnswer(ctx, project.ID, "build-001",
		models.AnswerPatch{Response: no()})
	require.NoError(t, err)

	answer = assessment.Answers["build-001"]
	require.Equal(t, models.ResponseNo, answer.Response)
	require.Equal(t, updated, answer.Notes)
}

func TestRecordAnswerIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	patch := models.AnswerPatch{Response: yes()}
	first, err := f.manager.RecordAnswer(ctx, project.ID, "testing-002", patch)
	require.NoError(t, err)

	second, err := f.manager.RecordAnswer(ctx, project.ID, "testing-002", patch)
	require.NoError(t, err)

	// With a fixed clock the results are fully identical; in production only
	// LastUpdated would differ.
	require.Equal(t, *first, *second)
}

func TestCompletionLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	assessment := answerAll(t, f, project.ID, yes())
	require.Equal(t, models.StatusCompleted, assessment.Status)
	require.Equal(t, 100, assessment.OverallScore)
	require.NotNil(t, assessment.CompletedDate)
	completedAt := *assessment.CompletedDate

	stored, err := f.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	// The completed assessment is visible both as current and in history.
	require.NotNil(t, stored.CurrentAssessment)
	require.Len(t, stored.AssessmentHistory, 1)
	require.Equal(t, assessment.ID, stored.AssessmentHistory[0].ID)

	// Re-answering while completed replaces the history entry, never
	// duplicates it.
	f.advance(time.Hour)
	assessment, err = f.manager.RecordAnswer(ctx, project.ID, "code-001",
		models.AnswerPatch{Response: no()})
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, assessment.Status)

	stored, err = f.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, stored.AssessmentHistory, 1)
	require.Equal(t, models.ResponseNo, stored.AssessmentHistory[0].Answers["code-001"].Response)
	// CompletedDate was set once and is not rewritten by later saves.
	require.Equal(t, completedAt, *stored.AssessmentHistory[0].CompletedDate)
}

func TestCompletionRegressionKeepsCompletedDate(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	assessment := answerAll(t, f, project.ID, yes())
	require.NotNil(t, assessment.CompletedDate)
	completedAt := *assessment.CompletedDate

	// Clearing an answer back to unset regresses the status but keeps the date.
	f.advance(time.Hour)
	assessment, err := f.manager.RecordAnswer(ctx, project.ID, "monitoring-006",
		models.AnswerPatch{Response: unset()})
	require.NoError(t, err)
	require.Equal(t, models.StatusInProgress, assessment.Status)
	require.NotNil(t, assessment.CompletedDate)
	require.Equal(t, completedAt, *assessment.CompletedDate)

	// Completing again keeps the original date, it is written exactly once.
	f.advance(time.Hour)
	assessment, err = f.manager.RecordAnswer(ctx, project.ID, "monitoring-006",
		models.AnswerPatch{Response: yes()})
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, assessment.Status)
	require.Equal(t, completedAt, *assessment.CompletedDate)
}

func TestAttachEvidenceRoundTrip(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	content := []byte("\x89PNG fake screenshot bytes")
	assessment, err := f.manager.AttachEvidence(ctx, project.ID, "security-001",
		"fortify-scan.png", "image/png", bytes.NewReader(content))
	require.NoError(t, err)

	answer := assessment.Answers["security-001"]
	require.NotNil(t, answer.Evidence)
	require.Equal(t, "fortify-scan.png", answer.Evidence.FileName)
	require.Equal(t, "image/png", answer.Evidence.MimeType)
	require.Equal(t, int64(len(content)), answer.Evidence.FileSizeBytes)

	decoded, err := answer.Evidence.Decode()
	require.NoError(t, err)
	require.Equal(t, content, decoded)

	// Evidence alone does not answer the question.
	require.Equal(t, models.ResponseUnset, answer.Response)
	require.Equal(t, models.StatusNotStarted, assessment.Status)
}

func TestAttachEvidenceReadFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	notes := "original notes"
	_, err := f.manager.RecordAnswer(ctx, project.ID, "deploy-002",
		models.AnswerPatch{Response: yes(), Notes: &notes})
	require.NoError(t, err)

	_, err = f.manager.AttachEvidence(ctx, project.ID, "deploy-002",
		"broken.bin", "application/octet-stream",
		iotest.ErrReader(io.ErrUnexpectedEOF))
	require.ErrorIs(t, err, assessments.ErrEvidenceRead)

	stored, err := f.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	answer := stored.CurrentAssessment.Answers["deploy-002"]
	require.Equal(t, models.ResponseYes, answer.Response)
	require.Equal(t, notes, answer.Notes)
	require.Nil(t, answer.Evidence)
}

func TestRemoveEvidence(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	_, err := f.manager.RecordAnswer(ctx, project.ID, "package-002",
		models.AnswerPatch{Response: yes()})
	require.NoError(t, err)
	_, err = f.manager.AttachEvidence(ctx, project.ID, "package-002",
		"dockerfile.txt", "text/plain", bytes.NewReader([]byte("FROM scratch")))
	require.NoError(t, err)

	assessment, err := f.manager.RemoveEvidence(ctx, project.ID, "package-002")
	require.NoError(t, err)

	answer := assessment.Answers["package-002"]
	require.Nil(t, answer.Evidence)
	require.Equal(t, models.ResponseYes, answer.Response)
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	project := f.createProject(t)

	// An id outside the catalog is stored but never scores or counts toward
	// completion.
	assessment, err := f.manager.RecordAnswer(ctx, project.ID, "quality-099",
		models.AnswerPatch{Response: yes()})
	require.NoError(t, err)
	require.Equal(t, models.StatusNotStarted, assessment.Status)
	require.Equal(t, 0, assessment.OverallScore)
	for key, score := range assessment.PillarScores {
		require.Zerof(t, score, "pillar %s", key)
	}
}
