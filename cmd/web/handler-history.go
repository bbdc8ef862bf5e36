package main

import (
	"net/http"
	"time"

	"github.com/jkivisto/maturemark/internal/errors"
	"github.com/jkivisto/maturemark/internal/export"
)

// historyRecords loads and prepares the filtered, sorted history rows shared
// by the JSON, stats and CSV endpoints.
func (app *application) historyRecords(r *http.Request) ([]export.Record, error) {
	projects, err := app.projects.Load(r.Context())
	if err != nil {
		return nil, errors.Wrap(err, "load projects")
	}

	records := export.Records(projects)
	records = export.Filter(records, r.URL.Query().Get("search"))

	sortBy := export.SortByDate
	if by := r.URL.Query().Get("sort"); by != "" {
		sortBy = export.SortField(by)
	}
	export.Sort(records, sortBy)
	return records, nil
}

func (app *application) history(w http.ResponseWriter, r *http.Request) {
	records, err := app.historyRecords(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if records == nil {
		records = []export.Record{}
	}
	app.writeJSON(w, r, http.StatusOK, records)
}

func (app *application) historyStats(w http.ResponseWriter, r *http.Request) {
	records, err := app.historyRecords(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		if since, err = time.Parse(time.DateOnly, raw); err != nil {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
	}

	app.writeJSON(w, r, http.StatusOK, export.Summarize(records, since))
}

func (app *application) historyCSV(w http.ResponseWriter, r *http.Request) {
	records, err := app.historyRecords(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="assessment-history.csv"`)
	if err = export.WriteCSV(w, records); err != nil {
		app.serverError(w, r, errors.Wrap(err, "write csv"))
	}
}
