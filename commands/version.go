package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		Run: func(command *cobra.Command, args []string) {
			fmt.Fprintf(command.OutOrStdout(), "%s %s\n", toolName, version)
		},
	}
}
