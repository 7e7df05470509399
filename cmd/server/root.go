package main

import (
	"github.com/ourchat/ourchat/internal/server"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/ourchat/ourchat/internal/server/database"
	"github.com/ourchat/ourchat/internal/server/repositories/repomanager"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the server command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "ourchat-server",
		Short:        "OurChat backend server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			app, err := server.NewApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}

// NewMigrateCmd applies the schema migrations and exits.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			logger, closeLog, err := server.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx := cmd.Context()
			if err := database.RunMigrations(ctx, cfg.Database, repomanager.NewPostgresRepositoryManager()); err != nil {
				logger.Error(ctx, "migration failed", "error", err)
				return err
			}
			logger.Info(ctx, "Migrations applied")
			return nil
		},
	}
}
