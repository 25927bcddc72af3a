package repositories_test

import (
	"context"
	"io"
	"testing"

	_ "embed"

	"github.com/miyakoshi/septade/internal/sqlite"
	"github.com/miyakoshi/septade/internal/testhelpers"
)

//go:embed testdata/fixtures.sql
var testFixtures string

// newTestDB creates a new in-memory database for testing purposes.
func newTestDB(t *testing.T) *sqlite.Database {
	var (
		db  *sqlite.Database
		err error
	)

	if db, err = sqlite.NewDatabase(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard)); err != nil {
		t.Fatal(err)
	}

	// Set database to read-only mode.
	// The mode=ro flag doesn't seem to work with :memory: and cache=shared.
	if _, err = db.ReadOnly.Exec("PRAGMA query_only = TRUE;"); err != nil {
		t.Fatal(err)
	}

	// Add test data
	if _, err = db.ReadWrite.Exec(testFixtures); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Fatal(err)
		}
	})

	return db
}
