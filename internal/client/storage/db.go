// Package storage opens the local session database and keeps its schema
// current with embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/WayleX/Beerter/internal/client/migrations"
	"github.com/WayleX/Beerter/internal/filex"

	_ "modernc.org/sqlite"
)

// RunMigrations applies every pending migration. Running it on an
// up-to-date database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite file at path and
// migrates it. The parent directory is created when missing.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	abs, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", abs)
	if err != nil {
		return nil, err
	}
	// Single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
