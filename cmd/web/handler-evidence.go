package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jkivisto/maturemark/internal/errors"
)

// maxEvidenceMemory bounds how much of a multipart upload is buffered in
// memory before spilling to disk.
const maxEvidenceMemory = 10 << 20

func (app *application) attachEvidence(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	questionID := r.PathValue("questionID")

	if err := r.ParseMultipartForm(maxEvidenceMemory); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			app.logger.LogAttrs(r.Context(), slog.LevelError, "close upload", errors.SlogError(closeErr))
		}
	}()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	assessment, err := app.assessments.AttachEvidence(r.Context(), projectID, questionID,
		header.Filename, mimeType, file)
	if err != nil {
		app.domainError(w, r, errors.Wrap(err, "attach evidence",
			slog.String("projectID", projectID), slog.String("questionID", questionID)))
		return
	}
	app.writeJSON(w, r, http.StatusOK, assessment)
}

func (app *application) removeEvidence(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	questionID := r.PathValue("questionID")

	assessment, err := app.assessments.RemoveEvidence(r.Context(), projectID, questionID)
	if err != nil {
		app.domainError(w, r, errors.Wrap(err, "remove evidence",
			slog.String("projectID", projectID), slog.String("questionID", questionID)))
		return
	}
	app.writeJSON(w, r, http.StatusOK, assessment)
}

// downloadEvidence decodes the stored payload back to the original file.
func (app *application) downloadEvidence(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	questionID := r.PathValue("questionID")

	project, err := app.projects.Get(r.Context(), projectID)
	if err != nil {
		app.domainError(w, r, errors.Wrap(err, "get project", slog.String("projectID", projectID)))
		return
	}
	if project.CurrentAssessment == nil {
		app.clientError(w, r, http.StatusNotFound)
		return
	}
	answer, ok := project.CurrentAssessment.Answers[questionID]
	if !ok || answer.Evidence == nil {
		app.clientError(w, r, http.StatusNotFound)
		return
	}

	content, err := answer.Evidence.Decode()
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "decode evidence",
			slog.String("questionID", questionID), slog.String("fileName", answer.Evidence.FileName)))
		return
	}

	w.Header().Set("Content-Type", answer.Evidence.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", answer.Evidence.FileName))
	_, _ = w.Write(content)
}
