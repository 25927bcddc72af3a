package sqlite_test

import (
	"context"
	"io"
	"testing"

	"github.com/miyakoshi/septade/internal/sqlite"
	"github.com/miyakoshi/septade/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Parallel()

	db, err := sqlite.NewDatabase(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	// Schema is initialised on boot.
	for _, table := range []string{"sessions", "diagnosis_history", "reports"} {
		var name string
		err = db.ReadOnly.Get(&name, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		require.NoError(t, err, "table %s missing", table)
	}

	// Writes through the read-write connection are visible to the read pool.
	_, err = db.ReadWrite.Exec(
		`INSERT INTO reports (user_id, report_data) VALUES ('u1', '{}')`)
	require.NoError(t, err)

	var count int
	err = db.ReadOnly.Get(&count, "SELECT COUNT(*) FROM reports")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNewDatabaseIsolatedInMemory(t *testing.T) {
	t.Parallel()

	logger := testhelpers.NewLogger(io.Discard)
	first, err := sqlite.NewDatabase(context.Background(), ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, first.Close()) })
	second, err := sqlite.NewDatabase(context.Background(), ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, second.Close()) })

	_, err = first.ReadWrite.Exec(`INSERT INTO reports (user_id, report_data) VALUES ('u1', '{}')`)
	require.NoError(t, err)

	var count int
	err = second.ReadOnly.Get(&count, "SELECT COUNT(*) FROM reports")
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
