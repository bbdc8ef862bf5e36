package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/models"
)

// currentAssessment returns the project's assessment in progress without
// creating one.
func (app *application) currentAssessment(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	project, err := app.projects.Get(r.Context(), projectID)
	if err != nil {
		app.domainError(w, r, errors.Wrap(err, "get project", slog.String("projectID", projectID)))
		return
	}
	if project.CurrentAssessment == nil {
		app.clientError(w, r, http.StatusNotFound)
		return
	}
	app.writeJSON(w, r, http.StatusOK, project.CurrentAssessment)
}

// startAssessment lazily creates the current assessment for a project. The
// assessor from the request body is recorded only when a new assessment is
// created.
func (app *application) startAssessment(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	var req struct {
		Assessor string `json:"assessor"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}

	assessment, err := app.assessments.EnsureAssessment(r.Context(), projectID, req.Assessor)
	if err != nil {
		app.domainError(w, r, errors.Wrap(err, "ensure assessment", slog.String("projectID", projectID)))
		return
	}
	app.writeJSON(w, r, http.StatusOK, assessment)
}

// recordAnswer applies a partial answer update. Absent fields keep their
// previous values; response must be present to change, with null clearing it
// back to unanswered.
func (app *application) recordAnswer(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	questionID := r.PathValue("questionID")

	var req struct {
		Response json.RawMessage `json:"response"`
		Notes    *string         `json:"notes"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}

	patch := models.AnswerPatch{Notes: req.Notes}
	if req.Response != nil {
		var response models.Response
		// Unmarshal never fails: malformed values degrade to unset.
		_ = response.UnmarshalJSON(req.Response)
		patch.Response = &response
	}

	assessment, err := app.assessments.RecordAnswer(r.Context(), projectID, questionID, patch)
	if err != nil {
		app.domainError(w, r, errors.Wrap(err, "record answer",
			slog.String("projectID", projectID), slog.String("questionID", questionID)))
		return
	}
	app.writeJSON(w, r, http.StatusOK, assessment)
}
