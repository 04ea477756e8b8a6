package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "taskmngr",
	Short:         "Task tracker with comments, audit log and notifications",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
