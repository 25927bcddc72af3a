package main

import (
	"net/http"
	"strconv"

	"github.com/miyakoshi/septade/internal/models"
)

const defaultHistoryLimit = 5
const maxHistoryLimit = 20

type historyResponse struct {
	Entries []models.HistoryEntry `json:"entries"`
}

// diagnosisHistory lists past results for a name+birthdate pair.
func (app *application) diagnosisHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("name")
	birthdate := query.Get("birthdate")
	if name == "" || birthdate == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	limit := defaultHistoryLimit
	if rawLimit := query.Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	entries, err := app.histories.ListByIdentifier(r.Context(), name, birthdate, limit)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, historyResponse{Entries: entries})
}
