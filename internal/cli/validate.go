package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperboard/paperboard/pkg/graph"
)

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <layout.json>",
		Short: "Check a layout file for referential integrity",
		Long: `Validate parses a layout file, rebuilds the diagram store from it, and
verifies its internal consistency: every link endpoint must resolve to an
element and the adjacency index must agree with the link set in both
directions.`,
		Example: `  paperboard validate diagram.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			g, err := graph.ReadLayoutFile(args[0])
			if err != nil {
				printError("invalid layout: %v", err)
				return err
			}
			if err := g.Validate(); err != nil {
				printError("inconsistent store: %v", err)
				return err
			}

			prog.done(fmt.Sprintf("Validated %d elements and %d links", g.ElementCount(), g.LinkCount()))
			printSuccess("%s is well formed", args[0])
			return nil
		},
	}
}
