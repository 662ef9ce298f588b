// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/bandroom/bandroom/internal/dbx"
	"github.com/bandroom/bandroom/internal/server/migrations"
	"github.com/bandroom/bandroom/internal/server/repositories/concerts"
	"github.com/bandroom/bandroom/internal/server/repositories/participations"
	"github.com/bandroom/bandroom/internal/server/repositories/songs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Songs returns a songs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Songs(db dbx.DBTX) songs.Repository {
	return songs.NewPostgresRepository(db)
}

// Concerts returns a concerts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Concerts(db dbx.DBTX) concerts.Repository {
	return concerts.NewPostgresRepository(db)
}

// Participations returns a participations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Participations(db dbx.DBTX) participations.Repository {
	return participations.NewPostgresRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
