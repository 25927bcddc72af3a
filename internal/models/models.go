package models

import (
	"strconv"
	"strings"

	"github.com/miyakoshi/septade/internal/diagnosis"
)

// Profile is what the visitor fills in before taking the quiz.
type Profile struct {
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
	Gender    string `json:"gender"`
	Concern   string `json:"concern"`
}

// DiagnosisResult is the classified outcome stored alongside the profile.
type DiagnosisResult struct {
	Type            string               `json:"type"`
	TypeName        string               `json:"typeName"`
	Description     string               `json:"description"`
	Scores          diagnosis.AxisScores `json:"scores"`
	Characteristics []string             `json:"characteristics"`
	Strengths       []string             `json:"strengths"`
	Weaknesses      []string             `json:"weaknesses"`
}

// ChartItem is a titled gauge in a generated report section.
type ChartItem struct {
	Title string `json:"title"`
	Value int    `json:"value"`
	Desc  string `json:"desc"`
}

// Item is a titled paragraph in a generated report section.
type Item struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// PillarColumn mirrors one pillar of the four pillars chart using the
// traditional labels as JSON keys.
type PillarColumn struct {
	Stem        string `json:"天干"`
	Branch      string `json:"地支"`
	HiddenStems string `json:"蔵干"`
}

type FourPillarsChart struct {
	Year  PillarColumn `json:"year"`
	Month PillarColumn `json:"month"`
	Day   PillarColumn `json:"day"`
	Hour  PillarColumn `json:"hour"`
}

type Section struct {
	Content string `json:"content"`
}

type ChartedSection struct {
	Content string      `json:"content"`
	Charts  []ChartItem `json:"charts"`
	Items   []Item      `json:"items"`
}

type FourPillarsSection struct {
	Chart  FourPillarsChart `json:"chart"`
	Basic  string           `json:"basic"`
	Charts []ChartItem      `json:"charts"`
	ItemsA []Item           `json:"itemsA"`
	ItemsB []Item           `json:"itemsB"`
	ItemsC []Item           `json:"itemsC"`
}

// GPTReport is the full generated reading returned to the client.
type GPTReport struct {
	TarotExplanation string             `json:"tarotExplanation"`
	Astrology        string             `json:"astrology"`
	Section1         Section            `json:"section1"`
	Section2         ChartedSection     `json:"section2"`
	Section3         ChartedSection     `json:"section3"`
	FourPillars      FourPillarsSection `json:"fourPillars"`
	Section4         ChartedSection     `json:"section4"`
}

// HistoryEntry is one past diagnosis returned from the history listing.
type HistoryEntry struct {
	Profile    Profile         `json:"profile"`
	Result     DiagnosisResult `json:"result"`
	CreatedAt  string          `json:"createdAt"`
	SendUserID string          `json:"sendUserId,omitempty"`
}

// UserIdentifier derives a stable pseudonymous key from a name and birthdate
// so repeat visitors can retrieve their history without an account. The hash
// runs in 32-bit arithmetic over the lowercased trimmed name joined with the
// birthdate, formatted in base 36.
func UserIdentifier(name, birthdate string) string {
	combined := strings.ToLower(strings.TrimSpace(name)) + "_" + birthdate

	var h int32
	for _, r := range combined {
		h = h*31 + int32(r)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return "user_" + strconv.FormatInt(v, 36)
}
