// Package sqlitedb opens SQLite database files through database/sql for
// the inspection tooling in cmd/. It is deliberately thin: open, ping with
// a deadline so a bad path fails fast, and hand back the *sql.DB plus a
// cleanup function.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	// SQLite driver; replace with your preferred driver if desired.
	_ "modernc.org/sqlite" // alternative: github.com/mattn/go-sqlite3
)

// Open opens the SQLite database at dsn and verifies the connection. DSN
// is passed directly to database/sql; for example:
//
//	"file:app.db?mode=ro"
//	"app.db"
//
// The returned close function must be called when the caller is done.
func Open(ctx context.Context, dsn string) (*sql.DB, func(), error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, nil, fmt.Errorf("sqlitedb: DSN must not be empty")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlitedb: open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("sqlitedb: ping: %w", err)
	}

	return db, func() { db.Close() }, nil
}
