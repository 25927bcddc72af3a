package diagnosis

// compoundThreshold is the score each of E, T and J must exceed before an
// ENTJ result is upgraded to the compound "ENTJ-A" code.
const compoundThreshold = 30

// Classify derives the type code from the axis scores.
//
// Each axis is sign-tested independently. A score of zero resolves to the
// positive pole, so an all-zero score set classifies as "ESTJ". This
// tie-break is a deliberate policy, not an accident.
func Classify(scores AxisScores) TypeCode {
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

	// Single hard-coded override, checked after the naive classification.
	if code == "ENTJ" &&
		scores.E > compoundThreshold &&
		scores.T > compoundThreshold &&
		scores.J > compoundThreshold {
		return "ENTJ-A"
	}

	return TypeCode(code)
}
