package catalog

// CompatibilityEntry lists the five best and five worst pairings for a type.
type CompatibilityEntry struct {
	GoodMatches []string `json:"goodMatches"`
	BadMatches  []string `json:"badMatches"`
}

var Compatibility = map[string]CompatibilityEntry{
	"ESTJ": {
		GoodMatches: []string{"ISFP", "ISTP", "ESFJ", "ISTJ", "ENTJ"},
		BadMatches:  []string{"INFP", "ENFP", "INTP", "ENTP", "INFJ"},
	},
	"ENTJ": {
		GoodMatches: []string{"INTP", "INTJ", "ENTP", "ESTJ", "ENTJ-A"},
		BadMatches:  []string{"ISFP", "ESFP", "ISFJ", "ESFJ", "INFP"},
	},
	"ESFJ": {
		GoodMatches: []string{"ISFP", "ISTP", "ESTJ", "ESFP", "ISFJ"},
		BadMatches:  []string{"INTP", "INTJ", "ENTP", "ENTJ", "INFJ"},
	},
	"ENFJ": {
		GoodMatches: []string{"INFP", "INFJ", "ENFP", "ISFP", "INTP"},
		BadMatches:  []string{"ESTP", "ISTP", "ESTJ", "ISTJ", "ESFP"},
	},
	"ISTJ": {
		GoodMatches: []string{"ESFP", "ESTP", "ESTJ", "ISFJ", "ESFJ"},
		BadMatches:  []string{"ENFP", "ENTP", "INFP", "INTP", "ENFJ"},
	},
	"INTJ": {
		GoodMatches: []string{"ENFP", "ENTP", "ENTJ", "INFJ", "INTP"},
		BadMatches:  []string{"ESFJ", "ISFJ", "ESFP", "ISFP", "ESTJ"},
	},
	"ISFJ": {
		GoodMatches: []string{"ESFP", "ESTP", "ISTJ", "ESFJ", "ISFP"},
		BadMatches:  []string{"ENTP", "ENTJ", "INTP", "INTJ", "ENFP"},
	},
	"INFJ": {
		GoodMatches: []string{"ENFP", "ENTP", "INFP", "INTJ", "ENFJ"},
		BadMatches:  []string{"ESTP", "ESFP", "ESTJ", "ISTP", "ESFJ"},
	},
	"ESTP": {
		GoodMatches: []string{"ISFJ", "ISTJ", "ESFP", "ISTP", "ESTP"},
		BadMatches:  []string{"INFJ", "INFP", "ENFJ", "INTJ", "ENFP"},
	},
	"ENTP": {
		GoodMatches: []string{"INFJ", "INTJ", "INTP", "ENTJ", "ENFP"},
		BadMatches:  []string{"ISFJ", "ESFJ", "ISTJ", "ESTJ", "ISFP"},
	},
	"ESFP": {
		GoodMatches: []string{"ISFJ", "ISTJ", "ESFJ", "ESTP", "ISFP"},
		BadMatches:  []string{"INTJ", "ENTJ", "INTP", "INFJ", "ENTP"},
	},
	"ENFP": {
		GoodMatches: []string{"INFJ", "INTJ", "ENFJ", "INFP", "ENTP"},
		BadMatches:  []string{"ISTJ", "ESTJ", "ISTP", "ESTP", "ISFJ"},
	},
	"ISTP": {
		GoodMatches: []string{"ESFJ", "ESTJ", "ESTP", "ISFP", "ISTJ"},
		BadMatches:  []string{"ENFJ", "ENFP", "INFJ", "INFP", "ENTJ"},
	},
	"INTP": {
		GoodMatches: []string{"ENTJ", "ENTP", "INTJ", "INFJ", "ENFP"},
		BadMatches:  []string{"ESFJ", "ISFJ", "ESFP", "ESTJ", "ISFP"},
	},
	"ISFP": {
		GoodMatches: []string{"ESTJ", "ESFJ", "ENFJ", "ESFP", "ISTP"},
		BadMatches:  []string{"ENTJ", "INTJ", "ENTP", "INTP", "ESTJ"},
	},
	"INFP": {
		GoodMatches: []string{"ENFJ", "INFJ", "ENFP", "ENTJ", "INTJ"},
		BadMatches:  []string{"ESTJ", "ISTJ", "ESTP", "ISTP", "ESFJ"},
	},
	"ENTJ-A": {
		GoodMatches: []string{"INTP", "INTJ", "ENTP", "ENTJ", "INFJ"},
		BadMatches:  []string{"ISFP", "ESFP", "ISFJ", "ESFJ", "INFP"},
	},
}
