package main

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServer(http.Dir(filepath.Join(app.uiDir, "static")))
	mux.Handle("GET /static/", cacheForeverHeaders(http.StripPrefix("/static", fileServer)))

	session := alice.New(app.sessionManager.LoadAndSave, app.visitorSession, commonContext)

	pageTimeout := 5 * time.Second
	mux.Handle("GET /{$}", session.Then(timeoutHandler(http.HandlerFunc(app.home), pageTimeout)))

	mux.Handle("GET /api/healthy", session.ThenFunc(app.healthy))
	mux.Handle("POST /api/diagnosis", session.ThenFunc(app.diagnose))
	mux.Handle("GET /api/diagnosis/history", session.ThenFunc(app.diagnosisHistory))
	mux.Handle("GET /api/report/{userID}", session.ThenFunc(app.getReport))
	mux.Handle("PUT /api/report/{userID}", session.ThenFunc(app.putReport))

	return app.recoverPanic(app.logRequest(app.secureHeaders(noSurf(mux))))
}
