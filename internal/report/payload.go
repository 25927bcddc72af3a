package report

import (
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/miyakoshi/septade/internal/fourpillars"
	"github.com/miyakoshi/septade/internal/models"
	"github.com/miyakoshi/septade/internal/tarot"
)

// TarotSummary is the card slice of the generation payload.
type TarotSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// ProfileSummary carries the visitor details the generator may refer to.
type ProfileSummary struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Birthday string `json:"birthday"`
}

type fourPillarsPayload struct {
	Chart models.FourPillarsChart `json:"chart"`
}

// Payload is everything the report generator needs about one diagnosis.
type Payload struct {
	Tarot       TarotSummary           `json:"tarot"`
	UserID      string                 `json:"userId,omitempty"`
	Profile     ProfileSummary         `json:"profile"`
	WorryText   string                 `json:"worryText,omitempty"`
	Type17      diagnosis.TypeCode     `json:"type17"`
	Scores      diagnosis.AxisScores   `json:"scores"`
	Percents    diagnosis.PolePercents `json:"percents"`
	FourPillars fourPillarsPayload     `json:"fourPillars"`
}

// BuildPayload assembles the generation payload from the scored diagnosis,
// the selected card and the four pillars chart. typeCode is the classified
// type including the compound ENTJ-A, never the balanced display code.
func BuildPayload(
	profile models.Profile,
	typeCode diagnosis.TypeCode,
	measurement diagnosis.Measurement,
	card tarot.Card,
	chart fourpillars.Chart,
	userID string,
) Payload {
	return Payload{
		Tarot: TarotSummary{
			ID:      card.ID,
			Name:    card.Name,
			Meaning: card.Keywords,
		},
		UserID: userID,
		Profile: ProfileSummary{
			Name:     profile.Name,
			Gender:   profile.Gender,
			Birthday: profile.Birthdate,
		},
		WorryText:   profile.Concern,
		Type17:      typeCode,
		Scores:      measurement.Scores,
		Percents:    measurement.Percents,
		FourPillars: fourPillarsPayload{Chart: chartColumns(chart)},
	}
}

func chartColumns(chart fourpillars.Chart) models.FourPillarsChart {
	column := func(p fourpillars.Pillar) models.PillarColumn {
		return models.PillarColumn{
			Stem:        p.Stem,
			Branch:      p.Branch,
			HiddenStems: p.HiddenStems,
		}
	}
	return models.FourPillarsChart{
		Year:  column(chart.Year),
		Month: column(chart.Month),
		Day:   column(chart.Day),
		Hour:  column(chart.Hour),
	}
}
