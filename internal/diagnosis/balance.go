package diagnosis

import "math"

// BalancedTypeCode decorates results whose axis scores are all close to zero.
// It is a display code only; Classify never returns it.
const BalancedTypeCode TypeCode = "BAL"

// balancedLimit is the exclusive bound below which an absolute axis score
// counts as balanced.
const balancedLimit = 10

// percentScale assumes axis scores on a [-100, 100] scale, which holds for
// the 100-question bank with 25 questions per axis.
const percentScale = 100

// PolePercents places each pole on a 0..100 scale. Opposite poles always sum
// to 100.
type PolePercents struct {
	E float64 `json:"E"`
	I float64 `json:"I"`
	S float64 `json:"S"`
	N float64 `json:"N"`
	T float64 `json:"T"`
	F float64 `json:"F"`
	J float64 `json:"J"`
	P float64 `json:"P"`
}

// Confidence reports how decisively each axis separates its poles, 0 meaning
// perfectly balanced and 100 meaning maximally one-sided.
type Confidence struct {
	AxisEI  float64 `json:"axisEI"`
	AxisSN  float64 `json:"axisSN"`
	AxisTF  float64 `json:"axisTF"`
	AxisJP  float64 `json:"axisJP"`
	Overall float64 `json:"overall"`
}

// Measurement is the display summary derived from a score set. Its TypeCode
// is the plain sign-test result, or BAL when every axis sits inside the
// balanced band; the compound ENTJ-A override belongs to Classify alone.
type Measurement struct {
	TypeCode   TypeCode     `json:"typeCode"`
	IsBalanced bool         `json:"isBAL"`
	Scores     AxisScores   `json:"scores"`
	Percents   PolePercents `json:"percents"`
	Confidence Confidence   `json:"confidence"`
}

func pctPos(score int) float64 {
	return (float64(score) + percentScale) / (2 * percentScale) * 100
}

func axisConfidence(score int) float64 {
	return math.Abs(float64(score)) / percentScale * 100
}

// Measure derives pole percentages, per-axis confidence and the balanced flag
// from a score set. It is a pure function; identical scores always yield an
// identical measurement.
func Measure(scores AxisScores) Measurement {
	isBalanced := abs(scores.E) < balancedLimit &&
		abs(scores.S) < balancedLimit &&
		abs(scores.T) < balancedLimit &&
		abs(scores.J) < balancedLimit

	typeCode := BalancedTypeCode
	if !isBalanced {
		code := ""
		if scores.E >= 0 {
			code += "E"
		} else {
			code += "I"
		}
		if scores.S >= 0 {
			code += "S"
		} else {
			code += "N"
		}
		if scores.T >= 0 {
			code += "T"
		} else {
			code += "F"
		}
		if scores.J >= 0 {
			code += "J"
		} else {
			code += "P"
		}
		typeCode = TypeCode(code)
	}

	pE := pctPos(scores.E)
	pS := pctPos(scores.S)
	pT := pctPos(scores.T)
	pJ := pctPos(scores.J)

	confidence := Confidence{
		AxisEI: axisConfidence(scores.E),
		AxisSN: axisConfidence(scores.S),
		AxisTF: axisConfidence(scores.T),
		AxisJP: axisConfidence(scores.J),
	}
	confidence.Overall = (confidence.AxisEI + confidence.AxisSN + confidence.AxisTF + confidence.AxisJP) / 4

	return Measurement{
		TypeCode:   typeCode,
		IsBalanced: isBalanced,
		Scores:     scores,
		Percents: PolePercents{
			E: pE, I: 100 - pE,
			S: pS, N: 100 - pS,
			T: pT, F: 100 - pT,
			J: pJ, P: 100 - pJ,
		},
		Confidence: confidence,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
