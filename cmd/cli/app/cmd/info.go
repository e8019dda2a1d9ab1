package cmd

import (
	"desta/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Shows the trusted application identity and supported algorithms",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInfoCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
