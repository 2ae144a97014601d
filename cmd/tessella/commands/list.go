package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessella/tiling"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the names of the eleven uniform tilings",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range tiling.Variants() {
				fmt.Fprintln(cmd.OutOrStdout(), v.Name)
			}
			return nil
		},
	}
}
