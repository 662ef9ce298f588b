package repomanager

import (
	"context"
	"database/sql"

	"github.com/bandroom/bandroom/internal/dbx"
	"github.com/bandroom/bandroom/internal/server/repositories/concerts"
	"github.com/bandroom/bandroom/internal/server/repositories/participations"
	"github.com/bandroom/bandroom/internal/server/repositories/songs"
)

// RepositoryManager vends repository implementations bound to a concrete
// DBTX, so a caller can run several repositories inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Songs(db dbx.DBTX) songs.Repository
	Concerts(db dbx.DBTX) concerts.Repository
	Participations(db dbx.DBTX) participations.Repository
}
