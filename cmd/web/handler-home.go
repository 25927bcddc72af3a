package main

import (
	"net/http"

	"github.com/miyakoshi/septade/internal/catalog"
	"github.com/miyakoshi/septade/internal/diagnosis"
)

type homeTemplateData struct {
	BaseTemplateData
	Questions []diagnosis.Question
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Questions:        catalog.Questions,
	}

	app.render(w, r, http.StatusOK, "home", data)
}
