package sqlitedb

import (
	"context"
	"path/filepath"
	"testing"
)

// TestOpen checks the happy path against a fresh file and the empty-DSN
// guard. Deeper behavior is exercised by the cmd/schemaprobe tests.
func TestOpen(t *testing.T) {
	t.Parallel()

	if _, _, err := Open(context.Background(), "   "); err == nil {
		t.Fatal("Open with blank DSN: want error, got nil")
	}

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, closeDB, err := Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("Open(%q): %v", dsn, err)
	}
	defer closeDB()

	if _, err := db.ExecContext(context.Background(), "CREATE TABLE t (x INTEGER)"); err != nil {
		t.Fatalf("exec: %v", err)
	}
}
