package cli

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/container"
)

// NewMigrateCmd creates the Postgres tables used by the postgres store.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the Postgres tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := config.Connect(cmd.Context(), cfg.DatabaseDSN); err != nil {
				return err
			}
			if err := container.Migrate(config.DB); err != nil {
				return err
			}
			config.Log.Info("Migrations applied")
			return nil
		},
	}
}
