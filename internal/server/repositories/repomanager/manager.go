package repomanager

import (
	"context"
	"database/sql"

	"github.com/Toxic209/noteForge/internal/dbx"
	"github.com/Toxic209/noteForge/internal/server/repositories/notes"
	"github.com/Toxic209/noteForge/internal/server/repositories/users"
)

// RepositoryManager owns the store connection lifecycle and hands out
// repositories bound to a DBTX (the pool or a transaction).
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	Close() error
}
