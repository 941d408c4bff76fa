package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/p0sidonz/shacdn-gym-sub001/internal/db"
	"github.com/p0sidonz/shacdn-gym-sub001/internal/logger"
)

var migrateDown int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	Long:  "Apply pending migrations, or roll back the last N with --down N.",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openDatabase(migrateDown == 0)
		if err != nil {
			return err
		}
		defer database.Close()

		if migrateDown > 0 {
			if err := db.RollbackMigrations(database, cfg.MigrationsPath, migrateDown); err != nil {
				return err
			}
			logger.Info("migrations rolled back", "steps", migrateDown)
		}

		version, dirty, err := db.MigrationVersion(database, cfg.MigrationsPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}

func init() {
	migrateCmd.Flags().IntVar(&migrateDown, "down", 0, "roll back this many migrations")
}
