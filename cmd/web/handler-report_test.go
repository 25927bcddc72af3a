package main

import (
	"net/http"
	"os"
	"testing"

	"github.com/miyakoshi/septade/internal/models"
	"github.com/stretchr/testify/require"
)

func Test_application_report_roundTrip(t *testing.T) {
	server := startTestServer(t, os.Stdout, testLookupEnv)

	report := models.GPTReport{ //nolint:exhaustruct // partial report is enough here.
		TarotExplanation: "節制のカードはバランスを示します。",
		Section1:         models.Section{Content: "総合的な読み解き。"},
	}

	var putResponse struct {
		Success bool `json:"success"`
	}
	resp := server.PutJSON(t, "/api/report/send-001", map[string]any{"reportData": report}, &putResponse)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, putResponse.Success)

	var got models.GPTReport
	resp = server.GetJSON(t, "/api/report/send-001", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, report.TarotExplanation, got.TarotExplanation)
	require.Equal(t, report.Section1.Content, got.Section1.Content)
}

func Test_application_report_notFound(t *testing.T) {
	server := startTestServer(t, os.Stdout, testLookupEnv)

	resp := server.GetJSON(t, "/api/report/unknown-user", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
