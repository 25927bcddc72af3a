package tarot_test

import (
	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/miyakoshi/septade/internal/tarot"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSelect_stable(t *testing.T) {
	typeCode := diagnosis.TypeCode("INFP")
	scores := diagnosis.AxisScores{E: -50, S: -20, T: -30, J: 10}

	first, err := tarot.Select(typeCode, scores, tarot.MajorArcana)
	require.NoError(t, err)
	require.GreaterOrEqual(t, first.ID, 0)
	require.LessOrEqual(t, first.ID, 21)

	// Character codes of INFP sum to 301 and the scores to -90, so the hash
	// lands on |211| mod 22 = 13.
	require.Equal(t, 13, first.ID)

	for range 10 {
		card, err := tarot.Select(typeCode, scores, tarot.MajorArcana)
		require.NoError(t, err)
		require.Equal(t, first, card)
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		typeCode diagnosis.TypeCode
		scores   diagnosis.AxisScores
		wantID   int
	}{
		{
			name:     "zero scores",
			typeCode: "ESTJ",
			// E+S+T+J character codes sum to 310; 310 mod 22 = 2.
			scores: diagnosis.AxisScores{},
			wantID: 2,
		},
		{
			name:     "compound code includes the hyphen and suffix",
			typeCode: "ENTJ-A",
			// ENTJ-A sums to 415; with scores summing 5, 420 mod 22 = 2.
			scores: diagnosis.AxisScores{E: 35, S: -100, T: 35, J: 35},
			wantID: 2,
		},
		{
			name:     "negative hash is folded by absolute value",
			typeCode: "INFP",
			// 301 - 400 = -99; |-99| mod 22 = 11.
			scores: diagnosis.AxisScores{E: -100, S: -100, T: -100, J: -100},
			wantID: 11,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := tarot.Select(tt.typeCode, tt.scores, tarot.MajorArcana)
			require.NoError(t, err)
			require.Equal(t, tt.wantID, card.ID)
		})
	}
}

func TestSelect_emptyCatalog(t *testing.T) {
	_, err := tarot.Select("ESTJ", diagnosis.AxisScores{}, nil)
	require.ErrorIs(t, err, tarot.ErrEmptyCatalog)
}

func TestMajorArcana_catalogIntegrity(t *testing.T) {
	require.Len(t, tarot.MajorArcana, 22)
	for i, card := range tarot.MajorArcana {
		require.Equal(t, i, card.ID)
		require.NotEmpty(t, card.Name)
		require.NotEmpty(t, card.Reading)
		require.NotEmpty(t, card.OriginalName)
		require.NotEmpty(t, card.Keywords)
		require.NotEmpty(t, card.Upright)
		require.NotEmpty(t, card.Reversed)
	}
}
