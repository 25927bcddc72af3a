package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/miyakoshi/septade/internal/diagnosis"
	"github.com/miyakoshi/septade/internal/models"
	"github.com/miyakoshi/septade/internal/repositories"
	"github.com/miyakoshi/septade/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepository_ListByIdentifier(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewHistoryRepository(db, testhelpers.NewLogger(io.Discard))

	tests := []struct {
		name      string
		queryName string
		birthdate string
		limit     int
		wantLen   int
		wantTypes []string
	}{
		{
			name:      "newest first",
			queryName: "山田太郎",
			birthdate: "1990-05-15",
			limit:     5,
			wantLen:   2,
			wantTypes: []string{"ENTJ", "INTJ"},
		},
		{
			name:      "limit applies",
			queryName: "山田太郎",
			birthdate: "1990-05-15",
			limit:     1,
			wantLen:   1,
			wantTypes: []string{"ENTJ"},
		},
		{
			name:      "name is normalised before hashing",
			queryName: " 山田太郎 ",
			birthdate: "1990-05-15",
			limit:     5,
			wantLen:   2,
			wantTypes: []string{"ENTJ", "INTJ"},
		},
		{
			name:      "unknown visitor",
			queryName: "存在しない人",
			birthdate: "1990-05-15",
			limit:     5,
			wantLen:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := repo.ListByIdentifier(context.TODO(), tt.queryName, tt.birthdate, tt.limit)
			require.NoError(t, err, "failed to list history")
			require.Len(t, entries, tt.wantLen)
			for i, wantType := range tt.wantTypes {
				require.Equal(t, wantType, entries[i].Result.Type)
			}
		})
	}
}

func TestHistoryRepository_Insert(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewHistoryRepository(db, testhelpers.NewLogger(io.Discard))

	profile := models.Profile{
		Name:      "佐藤花子",
		Birthdate: "2000-01-01",
		Gender:    "女性",
		Concern:   "人間関係",
	}
	result := models.DiagnosisResult{
		Type:        "INFP",
		TypeName:    "仲介者",
		Description: "理想主義的で創造的。",
		Scores:      diagnosis.AxisScores{E: -30, S: -20, T: -10, J: -5},
	}

	err := repo.Insert(context.TODO(), profile, result, "send-456")
	require.NoError(t, err, "failed to insert history")

	entries, err := repo.ListByIdentifier(context.TODO(), profile.Name, profile.Birthdate, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, profile, entries[0].Profile)
	require.Equal(t, result, entries[0].Result)
	require.Equal(t, "send-456", entries[0].SendUserID)
	require.NotEmpty(t, entries[0].CreatedAt)
}

func TestHistoryRepository_InsertWithoutSendUserID(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewHistoryRepository(db, testhelpers.NewLogger(io.Discard))

	profile := models.Profile{Name: "佐藤花子", Birthdate: "2000-01-01"}
	result := models.DiagnosisResult{Type: "ESTJ", TypeName: "執行官"}

	require.NoError(t, repo.Insert(context.TODO(), profile, result, ""))

	entries, err := repo.ListByIdentifier(context.TODO(), profile.Name, profile.Birthdate, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Empty(t, entries[0].SendUserID)
}
