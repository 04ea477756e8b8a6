package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := bootstrap()
		if err != nil {
			return err
		}

		logging.Logger.WithField("dsn", cfg.DatabaseDSN).Info("database schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
