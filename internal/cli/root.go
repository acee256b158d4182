package cli

import (
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:          "quizbank",
		Short:        "Quiz bank backend: question authoring, quizzes and scoring",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Init()
		},
	}

	cmd.PersistentFlags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	cmd.AddCommand(NewServeCmd(&port))
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewTokenCmd())
	return cmd
}
