package main

import (
	"net/http"

	"github.com/jkivisto/maturemark/internal/catalog"
)

// catalog lists the fixed pillar and question set the assessment form renders.
func (app *application) catalog(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, catalog.Pillars())
}
