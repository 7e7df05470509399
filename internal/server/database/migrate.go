package database

import (
	"context"
	"database/sql"

	"github.com/ourchat/ourchat/internal/server/config"
)

// Migrator applies schema migrations over a database/sql handle.
type Migrator interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
}

// RunMigrations opens a short-lived database/sql handle for cfg and hands
// it to m.
func RunMigrations(ctx context.Context, cfg config.DatabaseConfig, m Migrator) error {
	db, err := OpenSQL(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return m.RunMigrations(ctx, db)
}
