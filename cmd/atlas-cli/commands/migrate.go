package commands

import (
	"log/slog"

	"github.com/Pranay-Bhilare/op-atlas/database"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run all pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
			defer pool.Close()

			db := database.NewGormDB(pool)
			if err := database.RunMigrationsWithDB(db); err != nil {
				return err
			}
			slog.Info("migrations complete")
			return nil
		},
	}
}
