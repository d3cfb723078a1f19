package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "fun-numbers",
		Short: "Conversational calculator and number game",
		Long: `fun-numbers serves the fulfillment webhook for the calculator and the
secret-number game. Without a subcommand it runs the HTTP server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv(envFiles)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "environment files to load instead of .env")

	root.AddCommand(
		newServeCmd(),
		newCalcCmd(),
		newReplayCmd(),
	)

	return root
}
