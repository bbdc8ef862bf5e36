package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/catalog", app.catalog)

	mux.HandleFunc("GET /api/projects", app.listProjects)
	mux.HandleFunc("POST /api/projects", app.createProject)
	mux.HandleFunc("GET /api/projects/{projectID}", app.getProject)

	mux.HandleFunc("GET /api/projects/{projectID}/assessment", app.currentAssessment)
	mux.HandleFunc("POST /api/projects/{projectID}/assessment", app.startAssessment)
	mux.HandleFunc("PATCH /api/projects/{projectID}/answers/{questionID}", app.recordAnswer)

	mux.HandleFunc("POST /api/projects/{projectID}/answers/{questionID}/evidence", app.attachEvidence)
	mux.HandleFunc("GET /api/projects/{projectID}/answers/{questionID}/evidence", app.downloadEvidence)
	mux.HandleFunc("DELETE /api/projects/{projectID}/answers/{questionID}/evidence", app.removeEvidence)

	mux.HandleFunc("GET /api/history", app.history)
	mux.HandleFunc("GET /api/history/stats", app.historyStats)
	mux.HandleFunc("GET /api/history.csv", app.historyCSV)

	return alice.New(app.recoverPanic, app.logRequest, secureHeaders).Then(mux)
}
