package diagnosis_test

import (
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name           string
		scores         diagnosis.AxisScores
		wantTypeCode   diagnosis.TypeCode
		wantIsBalanced bool
	}{
		{
			name:           "all zero is balanced",
			scores:         diagnosis.AxisScores{E: 0, S: 0, T: 0, J: 0},
			wantTypeCode:   diagnosis.BalancedTypeCode,
			wantIsBalanced: true,
		},
		{
			name:           "all just inside the balanced band",
			scores:         diagnosis.AxisScores{E: 9, S: -9, T: 9, J: -9},
			wantTypeCode:   diagnosis.BalancedTypeCode,
			wantIsBalanced: true,
		},
		{
			name:           "one axis at the band edge is not balanced",
			scores:         diagnosis.AxisScores{E: 10, S: 0, T: 0, J: 0},
			wantTypeCode:   "ESTJ",
			wantIsBalanced: false,
		},
		{
			name:           "decisive scores keep the sign-test code",
			scores:         diagnosis.AxisScores{E: -50, S: -20, T: -30, J: 10},
			wantTypeCode:   "INFJ",
			wantIsBalanced: false,
		},
		{
			name: "measurement never applies the compound override",
			scores: diagnosis.AxisScores{
				E: 60, S: -40, T: 60, J: 60,
			},
			wantTypeCode:   "ENTJ",
			wantIsBalanced: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := diagnosis.Measure(tt.scores)
			require.Equal(t, tt.wantTypeCode, m.TypeCode)
			require.Equal(t, tt.wantIsBalanced, m.IsBalanced)
			require.Equal(t, tt.scores, m.Scores)
		})
	}
}

func TestMeasure_percentsAndConfidence(t *testing.T) {
	m := diagnosis.Measure(diagnosis.AxisScores{E: 50, S: -20, T: 0, J: 100})

	require.InDelta(t, 75.0, m.Percents.E, 1e-9)
	require.InDelta(t, 25.0, m.Percents.I, 1e-9)
	require.InDelta(t, 40.0, m.Percents.S, 1e-9)
	require.InDelta(t, 60.0, m.Percents.N, 1e-9)
	require.InDelta(t, 50.0, m.Percents.T, 1e-9)
	require.InDelta(t, 50.0, m.Percents.F, 1e-9)
	require.InDelta(t, 100.0, m.Percents.J, 1e-9)
	require.InDelta(t, 0.0, m.Percents.P, 1e-9)

	require.InDelta(t, 50.0, m.Confidence.AxisEI, 1e-9)
	require.InDelta(t, 20.0, m.Confidence.AxisSN, 1e-9)
	require.InDelta(t, 0.0, m.Confidence.AxisTF, 1e-9)
	require.InDelta(t, 100.0, m.Confidence.AxisJP, 1e-9)
	require.InDelta(t, 42.5, m.Confidence.Overall, 1e-9)

	// Opposite poles always sum to 100.
	require.InDelta(t, 100.0, m.Percents.E+m.Percents.I, 1e-9)
	require.InDelta(t, 100.0, m.Percents.S+m.Percents.N, 1e-9)
}
