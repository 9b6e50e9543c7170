package client

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/pvukovic/mailpilot/internal/client/migrations"
	"github.com/pvukovic/mailpilot/internal/client/repositories/credentials"
)

// Repositories groups the repositories backed by the local database.
type Repositories struct {
	Credentials credentials.Repository
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the local sqlite database at dsn, applies pending
// migrations, and returns the handle plus the repositories bound to it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Credentials: credentials.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
