package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessella/obj"
	"github.com/katalvlaran/tessella/tiling"
)

func generateCmd() *cobra.Command {
	var (
		name    string
		rows    int
		cols    int
		out     string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tiling patch and write it as Wavefront OBJ",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := tiling.ByName(name)
			if err != nil {
				return err
			}
			m, err := v.Generate(rows, cols)
			if err != nil {
				return err
			}

			if out == "" {
				return obj.Encode(cmd.OutOrStdout(), m, reverse)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := obj.Encode(f, m, reverse); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&name, "tiling", "t", tiling.NameSquare, "tiling name (see 'tessella list')")
	cmd.Flags().IntVarP(&rows, "rows", "r", 100, "lattice row count")
	cmd.Flags().IntVarP(&cols, "cols", "c", 100, "lattice column count")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "reverse face winding in the OBJ output")

	return cmd
}
