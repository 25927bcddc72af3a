package diagnosis_test

import (
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		scores diagnosis.AxisScores
		want   diagnosis.TypeCode
	}{
		{
			name:   "all zero resolves to positive poles",
			scores: diagnosis.AxisScores{E: 0, S: 0, T: 0, J: 0},
			want:   "ESTJ",
		},
		{
			name:   "all negative resolves to negative poles",
			scores: diagnosis.AxisScores{E: -1, S: -1, T: -1, J: -1},
			want:   "INFP",
		},
		{
			name:   "mixed signs",
			scores: diagnosis.AxisScores{E: -50, S: 20, T: -3, J: 40},
			want:   "ISFJ",
		},
		{
			name:   "compound override above threshold",
			scores: diagnosis.AxisScores{E: 31, S: -5, T: 31, J: 31},
			want:   "ENTJ-A",
		},
		{
			name:   "threshold itself does not trigger the override",
			scores: diagnosis.AxisScores{E: 30, S: -5, T: 31, J: 31},
			want:   "ENTJ",
		},
		{
			name:   "one axis below threshold keeps plain ENTJ",
			scores: diagnosis.AxisScores{E: 31, S: -5, T: 29, J: 31},
			want:   "ENTJ",
		},
		{
			name:   "override requires the exact ENTJ base",
			scores: diagnosis.AxisScores{E: 31, S: 5, T: 31, J: 31},
			want:   "ESTJ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, diagnosis.Classify(tt.scores))
		})
	}
}
