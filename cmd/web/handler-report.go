package main

import (
	"encoding/json"
	"net/http"

	"github.com/miyakoshi/septade/internal/errors"
	"github.com/miyakoshi/septade/internal/models"
	"github.com/miyakoshi/septade/internal/repositories"
)

type putReportRequest struct {
	ReportData models.GPTReport `json:"reportData"`
}

type putReportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// getReport returns the stored reading for a report user id.
func (app *application) getReport(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	stored, err := app.reports.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			app.notFound(w, r)
			return
		}
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, stored)
}

// putReport stores a reading delivered by the external automation.
func (app *application) putReport(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	var request putReportRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	if err := app.reports.Upsert(r.Context(), userID, request.ReportData); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, putReportResponse{
		Success: true,
		Message: "Report saved successfully",
	})
}
