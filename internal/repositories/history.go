package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/miyakoshi/septade/internal/errors"
	"github.com/miyakoshi/septade/internal/models"
	"github.com/miyakoshi/septade/internal/sqlite"
)

type HistoryRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewHistoryRepository(db *sqlite.Database, logger *slog.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger.With("source", "HistoryRepository"),
	}
}

type historyRow struct {
	ProfileData string         `db:"profile_data"`
	ResultData  string         `db:"result_data"`
	CreatedAt   string         `db:"created_at"`
	SendUserID  sql.NullString `db:"send_user_id"`
}

// Insert saves one completed diagnosis keyed by the identifier derived from
// the profile's name and birthdate.
func (r *HistoryRepository) Insert(
	ctx context.Context,
	profile models.Profile,
	result models.DiagnosisResult,
	sendUserID string,
) error {
	profileData, err := json.Marshal(profile)
	if err != nil {
		return errors.Wrap(err, "marshal profile")
	}
	resultData, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshal result")
	}

	var sendID sql.NullString
	if sendUserID != "" {
		sendID = sql.NullString{String: sendUserID, Valid: true}
	}

	stmt := `INSERT INTO diagnosis_history (user_identifier, send_user_id, profile_data, result_data)
VALUES (?, ?, ?, ?)`
	identifier := models.UserIdentifier(profile.Name, profile.Birthdate)
	if _, err = r.db.ReadWrite.ExecContext(ctx, stmt, identifier, sendID, profileData, resultData); err != nil {
		return errors.Wrap(err, "insert diagnosis history")
	}
	return nil
}

// ListByIdentifier returns the most recent diagnoses for the visitor matching
// the given name and birthdate, newest first.
func (r *HistoryRepository) ListByIdentifier(
	ctx context.Context,
	name string,
	birthdate string,
	limit int,
) ([]models.HistoryEntry, error) {
	stmt := `SELECT profile_data, result_data, created_at, send_user_id
FROM diagnosis_history
WHERE user_identifier = ?
ORDER BY created_at DESC
LIMIT ?`
	var rows []historyRow
	identifier := models.UserIdentifier(name, birthdate)
	if err := r.db.ReadOnly.SelectContext(ctx, &rows, stmt, identifier, limit); err != nil {
		return nil, errors.Wrap(err, "query diagnosis history")
	}

	entries := make([]models.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(row.ProfileData), &entry.Profile); err != nil {
			return nil, errors.Wrap(err, "unmarshal profile")
		}
		if err := json.Unmarshal([]byte(row.ResultData), &entry.Result); err != nil {
			return nil, errors.Wrap(err, "unmarshal result")
		}
		entry.CreatedAt = row.CreatedAt
		entry.SendUserID = row.SendUserID.String
		entries = append(entries, entry)
	}
	return entries, nil
}
