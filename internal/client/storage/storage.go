// Package storage opens the client's SQLite database and wires up the
// repositories that live in it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/travelmate/internal/client/migrations"
	"github.com/dmitrijs2005/travelmate/internal/client/repositories/albums"
	"github.com/dmitrijs2005/travelmate/internal/client/repositories/settings"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Settings settings.Repository
	Albums   albums.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Settings: settings.NewSQLiteRepository(db),
		Albums:   albums.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
