package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/models"
)

// listProjects returns all projects, optionally filtered with the search and
// status query parameters the dashboard uses.
func (app *application) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := app.projects.Load(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list projects"))
		return
	}

	search := strings.ToLower(r.URL.Query().Get("search"))
	status := r.URL.Query().Get("status")

	filtered := make([]models.Project, 0, len(projects))
	for _, project := range projects {
		if search != "" && !strings.Contains(strings.ToLower(project.Name), search) &&
			!strings.Contains(strings.ToLower(project.Description), search) {
			continue
		}
		if status != "" && string(projectStatus(project)) != status {
			continue
		}
		filtered = append(filtered, project)
	}

	app.writeJSON(w, r, http.StatusOK, filtered)
}

func projectStatus(project models.Project) models.AssessmentStatus {
	if project.CurrentAssessment == nil {
		return models.StatusNotStarted
	}
	return project.CurrentAssessment.Status
}

func (app *application) createProject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if !app.readJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	project, err := app.assessments.CreateProject(r.Context(), strings.TrimSpace(req.Name), req.Description)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "create project", slog.String("name", req.Name)))
		return
	}
	app.writeJSON(w, r, http.StatusCreated, project)
}

func (app *application) getProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	project, err := app.projects.Get(r.Context(), projectID)
	if err != nil {
		app.domainError(w, r, errors.Wrap(err, "get project", slog.String("projectID", projectID)))
		return
	}
	app.writeJSON(w, r, http.StatusOK, project)
}
