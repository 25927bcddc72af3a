package diagnosis

// Axis identifies one of the four bipolar personality dimensions by its
// positive pole. The negative poles (I, N, F, P) are derived during
// classification and never appear in the question bank.
type Axis string

const (
	AxisE Axis = "E"
	AxisS Axis = "S"
	AxisT Axis = "T"
	AxisJ Axis = "J"
)

// Question is a static catalog entry of the Likert question bank.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Axis     Axis   `json:"axis"`
	Reversed bool   `json:"reversed"`
}

// Answer is a single Likert response on the 1..7 scale, where 4 means
// "neither agree nor disagree".
type Answer struct {
	QuestionID int `json:"questionId"`
	Value      int `json:"value"`
}

// AxisScores holds the four signed accumulator totals of a scoring run.
type AxisScores struct {
	E int `json:"E"`
	S int `json:"S"`
	T int `json:"T"`
	J int `json:"J"`
}

// Sum returns the sum of the four signed axis scores.
func (s AxisScores) Sum() int {
	return s.E + s.S + s.T + s.J
}

// TypeCode is the four-letter classification label, or the compound "ENTJ-A"
// variant.
type TypeCode string
