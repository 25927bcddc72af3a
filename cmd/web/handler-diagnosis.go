package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/miyakoshi/septade/internal/catalog"
	"github.com/miyakoshi/septade/internal/contexthelpers"
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/miyakoshi/septade/internal/errors"
	"github.com/miyakoshi/septade/internal/fourpillars"
	"github.com/miyakoshi/septade/internal/models"
	"github.com/miyakoshi/septade/internal/report"
	"github.com/miyakoshi/septade/internal/tarot"
)

type diagnosisRequest struct {
	Profile    models.Profile  `json:"profile"`
	BirthTime  string          `json:"birthTime"`
	Answers    json.RawMessage `json:"answers"`
	SendUserID string          `json:"sendUserId"`
}

type diagnosisResponse struct {
	Result        models.DiagnosisResult     `json:"result"`
	Measurement   diagnosis.Measurement      `json:"measurement"`
	Tarot         tarot.Card                 `json:"tarot"`
	FourPillars   fourpillars.Chart          `json:"fourPillars"`
	Advice        string                     `json:"advice"`
	TopCareers    []string                   `json:"topCareers"`
	Compatibility catalog.CompatibilityEntry `json:"compatibility"`
	UserID        string                     `json:"userId,omitempty"`
}

// diagnose runs the full scoring pipeline for one submitted quiz.
func (app *application) diagnose(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request diagnosisRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	if request.Profile.Name == "" || request.Profile.Birthdate == "" {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	var rawAnswers any
	if err := json.Unmarshal(request.Answers, &rawAnswers); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	answers, err := diagnosis.Normalize(rawAnswers, catalog.Questions)
	if err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	scores, err := app.scorer.Score(ctx, answers)
	if err != nil {
		if errors.Is(err, diagnosis.ErrValidation) {
			app.clientError(w, r, http.StatusUnprocessableEntity)
			return
		}
		app.serverError(w, r, err)
		return
	}

	typeCode := diagnosis.Classify(scores)
	measurement := diagnosis.Measure(scores)

	card, err := tarot.Select(typeCode, scores, tarot.MajorArcana)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	chart, err := fourpillars.Calculate(request.Profile.Birthdate, request.BirthTime)
	if err != nil {
		if errors.Is(err, fourpillars.ErrInvalidDate) {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
		app.serverError(w, r, err)
		return
	}

	detail := catalog.TypeDetails[string(typeCode)]
	result := models.DiagnosisResult{
		Type:            string(typeCode),
		TypeName:        detail.Name,
		Description:     detail.Description,
		Scores:          scores,
		Characteristics: detail.Characteristics,
		Strengths:       detail.Strengths,
		Weaknesses:      detail.Weaknesses,
	}

	if err = app.histories.Insert(ctx, request.Profile, result, request.SendUserID); err != nil {
		app.serverError(w, r, err)
		return
	}

	app.logger.LogAttrs(ctx, slog.LevelInfo, "diagnosis completed",
		slog.String("type", string(typeCode)),
		slog.String("visitorID", contexthelpers.VisitorID(ctx)),
		slog.Int("tarotCard", card.ID))

	if app.generator != nil && request.SendUserID != "" {
		payload := report.BuildPayload(request.Profile, typeCode, measurement, card, chart, request.SendUserID)
		go app.generateReport(payload)
	}

	app.writeJSON(w, r, http.StatusOK, diagnosisResponse{
		Result:        result,
		Measurement:   measurement,
		Tarot:         card,
		FourPillars:   chart,
		Advice:        detail.Advice,
		TopCareers:    detail.TopCareers,
		Compatibility: catalog.Compatibility[string(typeCode)],
		UserID:        request.SendUserID,
	})
}

// generateReport runs in the background after the diagnosis response has been
// sent. Failures are logged, the visitor can retry from the report screen.
func (app *application) generateReport(payload report.Payload) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	generated, err := app.generator.Generate(ctx, payload)
	if err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "failed to generate report",
			slog.String("userID", payload.UserID), errors.SlogError(err))
		return
	}
	if err = app.reports.Upsert(ctx, payload.UserID, *generated); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "failed to save report",
			slog.String("userID", payload.UserID), errors.SlogError(err))
		return
	}
	app.logger.LogAttrs(ctx, slog.LevelInfo, "report generated", slog.String("userID", payload.UserID))
}
