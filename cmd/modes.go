package cmd

import (
	"github.com/spf13/cobra"
)

// modesCmd represents the modes command.
var modesCmd = newModesCmd()

func newModesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modes",
		Short: "List the supported query modes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.ShowModes()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(modesCmd)
}
