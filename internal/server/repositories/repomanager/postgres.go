// Package repomanager binds repository implementations to pooled handles:
// users to PostgreSQL and sessions to Redis. It also owns the goose
// migrations for the PostgreSQL schema.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/ourchat/ourchat/internal/dbx"
	"github.com/ourchat/ourchat/internal/server/cache"
	"github.com/ourchat/ourchat/internal/server/migrations"
	"github.com/ourchat/ourchat/internal/server/repositories/sessions"
	"github.com/ourchat/ourchat/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/samber/oops"
)

type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Sessions returns a sessions.Repository bound to the provided cache handle.
func (m *PostgresRepositoryManager) Sessions(cmd cache.Commands) sessions.Repository {
	return sessions.NewRedisRepository(cmd)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return oops.In("migrations").Wrapf(err, "set dialect")
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return oops.In("migrations").Wrapf(err, "goose up")
	}
	return nil
}

func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
