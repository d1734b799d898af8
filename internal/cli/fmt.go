package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/paperboard/paperboard/pkg/graph"
)

// newFmtCmd creates the fmt command.
func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <layout.json>",
		Short: "Rewrite a layout file into canonical form",
		Long: `Fmt parses a layout file and re-serializes it: stable key order, stable
entity order, indented output. Files produced by fmt are byte-identical
for equal diagrams, which keeps them diffable under version control.`,
		Example: `  # Print the canonical form to stdout
  paperboard fmt diagram.json

  # Rewrite the file in place
  paperboard fmt -w diagram.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadLayoutFile(args[0])
			if err != nil {
				return err
			}

			if write {
				if err := graph.WriteLayoutFile(g, args[0]); err != nil {
					return err
				}
				printSuccess("rewrote %s", args[0])
				printFile(args[0])
				return nil
			}
			return graph.WriteLayout(g, os.Stdout)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing")
	return cmd
}
