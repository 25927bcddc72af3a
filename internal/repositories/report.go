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

// ErrReportNotFound is returned when no report has been generated for a user.
var ErrReportNotFound = errors.NewSentinel("report not found")

type ReportRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewReportRepository(db *sqlite.Database, logger *slog.Logger) *ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger.With("source", "ReportRepository"),
	}
}

// Upsert stores the latest generated report for a user, replacing any
// previous one.
func (r *ReportRepository) Upsert(ctx context.Context, userID string, report models.GPTReport) error {
	reportData, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}

	stmt := `INSERT INTO reports (user_id, report_data)
VALUES (?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    report_data = excluded.report_data,
    updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`
	if _, err = r.db.ReadWrite.ExecContext(ctx, stmt, userID, reportData); err != nil {
		return errors.Wrap(err, "upsert report")
	}
	return nil
}

// Get returns the stored report for a user, or ErrReportNotFound.
func (r *ReportRepository) Get(ctx context.Context, userID string) (*models.GPTReport, error) {
	var reportData string
	stmt := `SELECT report_data FROM reports WHERE user_id = ?`
	if err := r.db.ReadOnly.GetContext(ctx, &reportData, stmt, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, errors.Wrap(err, "query report")
	}

	var report models.GPTReport
	if err := json.Unmarshal([]byte(reportData), &report); err != nil {
		return nil, errors.Wrap(err, "unmarshal report")
	}
	return &report, nil
}
