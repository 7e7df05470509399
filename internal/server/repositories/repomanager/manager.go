package repomanager

import (
	"context"
	"database/sql"

	"github.com/ourchat/ourchat/internal/dbx"
	"github.com/ourchat/ourchat/internal/server/cache"
	"github.com/ourchat/ourchat/internal/server/repositories/sessions"
	"github.com/ourchat/ourchat/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(cmd cache.Commands) sessions.Repository
}
