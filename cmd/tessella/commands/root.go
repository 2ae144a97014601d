package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "tessella",
		Short: "Generate meshes for the uniform tilings of the plane",
	}

	root.AddCommand(listCmd(), generateCmd())
	return root.Execute()
}
