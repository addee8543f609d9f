package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/docbotdev/docbot/internal/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // sqlite driver
)

// OpenStore opens (creating if absent) the local credential database and
// applies any pending schema migrations. Safe to call on every process
// start: applied migrations are skipped and existing users are untouched.
// The busy timeout lets independent processes share the same file without
// immediate lock errors.
func OpenStore(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("error opening credential database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating credential database: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
