// Package assessments orchestrates the assessment lifecycle: answer mutation,
// rescoring, status transitions and persistence, including the promotion of a
// completed assessment into the project history.
package assessments

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"time"

	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/models"
	"github.com/jkivisto/maturemark/internal/random"
	"github.com/jkivisto/maturemark/internal/repositories"
	"github.com/jkivisto/maturemark/internal/scoring"
)

const idLength = 12

// ErrEvidenceRead marks an evidence upload whose content could not be read.
// The previous answer state is left untouched, so retrying the same upload is
// always safe.
var ErrEvidenceRead = errors.NewSentinel("evidence could not be read")

// Manager coordinates answer updates against the project repository.
type Manager struct {
	projects *repositories.ProjectRepository
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the wall clock, used by tests for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

func NewManager(projects *repositories.ProjectRepository, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		projects: projects,
		logger:   logger.With("source", "AssessmentManager"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CreateProject registers a new project with no assessment.
func (m *Manager) CreateProject(ctx context.Context, name, description string) (*models.Project, error) {
	id, err := random.Letters(idLength)
	if err != nil {
		return nil, errors.Wrap(err, "generate project id")
	}
	project := models.Project{
		ID:                id,
		Name:              name,
		Description:       description,
		CreatedDate:       m.now(),
		AssessmentHistory: []models.Assessment{},
	}
	if err = m.projects.Upsert(ctx, project); err != nil {
		return nil, err
	}
	m.logger.LogAttrs(ctx, slog.LevelInfo, "created project",
		slog.String("projectID", project.ID), slog.String("name", name))
	return &project, nil
}

// EnsureAssessment returns the project's current assessment, lazily creating
// and persisting a fresh one when none exists. The assessor is recorded only
// on creation.
func (m *Manager) EnsureAssessment(ctx context.Context, projectID, assessor string) (*models.Assessment, error) {
	project, err := m.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.CurrentAssessment != nil {
		return project.CurrentAssessment, nil
	}

	assessment, err := m.newAssessment(project, assessor)
	if err != nil {
		return nil, err
	}
	project.CurrentAssessment = assessment
	if err = m.projects.Upsert(ctx, *project); err != nil {
		return nil, err
	}
	return assessment, nil
}

// RecordAnswer merges the patch into the answer for questionID, rescores the
// assessment and persists the project. Fields absent from the patch keep their
// previous values; the first patch for a question starts from an empty answer.
func (m *Manager) RecordAnswer(
	ctx context.Context,
	projectID string,
	questionID string,
	patch models.AnswerPatch,
) (*models.Assessment, error) {
	project, err := m.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	assessment := project.CurrentAssessment
	if assessment == nil {
		if assessment, err = m.newAssessment(project, ""); err != nil {
			return nil, err
		}
		project.CurrentAssessment = assessment
	}

	prior, ok := assessment.Answers[questionID]
	if !ok {
		prior = models.Answer{QuestionID: questionID}
	}
	assessment.Answers[questionID] = prior.Apply(patch)

	now := m.now()
	assessment.LastUpdated = now

	result := scoring.Recompute(assessment.Answers)
	assessment.PillarScores = result.PillarScores
	assessment.OverallScore = result.OverallScore
	assessment.Status = result.Status
	// CompletedDate is written once, on the first transition into completed
	// status. A later regression to in-progress does not clear it.
	if result.Status == models.StatusCompleted && assessment.CompletedDate == nil {
		assessment.CompletedDate = &now
	}

	if assessment.Status == models.StatusCompleted && assessment.CompletedDate != nil {
		upsertHistory(project, *assessment)
	}

	project.LastAssessed = &assessment.LastUpdated
	if err = m.projects.Upsert(ctx, *project); err != nil {
		return nil, err
	}

	m.logger.LogAttrs(ctx, slog.LevelDebug, "recorded answer",
		slog.String("projectID", projectID),
		slog.String("questionID", questionID),
		slog.String("status", string(assessment.Status)),
		slog.Int("overallScore", assessment.OverallScore))
	return assessment, nil
}

// AttachEvidence reads the file content, encodes it for storage and records it
// on the answer for questionID. A read failure surfaces ErrEvidenceRead before
// anything is written.
func (m *Manager) AttachEvidence(
	ctx context.Context,
	projectID string,
	questionID string,
	fileName string,
	mimeType string,
	content io.Reader,
) (*models.Assessment, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Wrap(ErrEvidenceRead, "read evidence content",
			slog.String("questionID", questionID), slog.String("fileName", fileName))
	}
	evidence := &models.Evidence{
		FileName:      fileName,
		FileSizeBytes: int64(len(data)),
		MimeType:      mimeType,
		UploadedAt:    m.now(),
		Payload:       base64.StdEncoding.EncodeToString(data),
	}
	return m.RecordAnswer(ctx, projectID, questionID, models.AnswerPatch{Evidence: evidence})
}

// RemoveEvidence clears the evidence from the answer for questionID.
func (m *Manager) RemoveEvidence(ctx context.Context, projectID, questionID string) (*models.Assessment, error) {
	return m.RecordAnswer(ctx, projectID, questionID, models.AnswerPatch{RemoveEvidence: true})
}

func (m *Manager) newAssessment(project *models.Project, assessor string) (*models.Assessment, error) {
	id, err := random.Letters(idLength)
	if err != nil {
		return nil, errors.Wrap(err, "generate assessment id")
	}
	now := m.now()
	result := scoring.Recompute(nil)
	assessment := models.Assessment{
		ID:           id,
		ProjectID:    project.ID,
		ProjectName:  project.Name,
		Assessor:     assessor,
		StartDate:    now,
		LastUpdated:  now,
		Status:       result.Status,
		Answers:      map[string]models.Answer{},
		PillarScores: result.PillarScores,
		OverallScore: result.OverallScore,
	}
	return &assessment, nil
}

// upsertHistory replaces the history entry sharing the assessment's id or
// appends a new one, so re-saving a completed assessment never duplicates it.
func upsertHistory(project *models.Project, assessment models.Assessment) {
	for i := range project.AssessmentHistory {
		if project.AssessmentHistory[i].ID == assessment.ID {
			project.AssessmentHistory[i] = assessment
			return
		}
	}
	project.AssessmentHistory = append(project.AssessmentHistory, assessment)
}
