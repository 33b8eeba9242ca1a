package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/willowworks/batrack/internal/config"
	"github.com/willowworks/batrack/internal/db"
	"github.com/willowworks/batrack/internal/logger"
	"github.com/willowworks/batrack/internal/repository"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), "")

	rootCmd := &cobra.Command{
		Use:   "batctl",
		Short: "Maintenance tasks for the bat inventory server",
	}

	rootCmd.AddCommand(migrateCmd(cfg))
	rootCmd.AddCommand(sessionsCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd(cfg *config.Config) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	migrate.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			return db.RunMigrations(conn.DB, cfg.DBDriver)
		},
	})

	migrate.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			return db.MigrateDown(conn.DB, cfg.DBDriver)
		},
	})

	return migrate
}

func sessionsCmd(cfg *config.Config) *cobra.Command {
	sessions := &cobra.Command{
		Use:   "sessions",
		Short: "Manage server-side sessions",
	}

	sessions.AddCommand(&cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired session rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
			if err != nil {
				return err
			}
			defer func() { _ = conn.Close() }()

			n, err := repository.NewSessionRepository(conn).DeleteExpired()
			if err != nil {
				return err
			}

			fmt.Printf("deleted %d expired sessions\n", n)
			return nil
		},
	})

	return sessions
}
