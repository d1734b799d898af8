package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/paperboard/paperboard/pkg/graph"
)

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats <layout.json>",
		Short:   "Print element, link, and routing statistics",
		Example: `  paperboard stats diagram.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Debugf("reading %s", args[0])

			g, err := graph.ReadLayoutFile(args[0])
			if err != nil {
				return err
			}
			printDiagramStats(g)
			return nil
		},
	}
}

func printDiagramStats(g *graph.Graph) {
	fmt.Println(StyleTitle.Render("Diagram"))
	printKeyValue("Elements", fmt.Sprintf("%d", g.ElementCount()))
	printKeyValue("Links", fmt.Sprintf("%d", g.LinkCount()))

	var vertices, routed int
	types := map[string]int{}
	for _, l := range g.Links() {
		vertices += len(l.Vertices())
		if len(l.Vertices()) > 0 {
			routed++
		}
		types[l.TypeID()]++
	}
	printKeyValue("Routed", fmt.Sprintf("%d", routed))
	printKeyValue("Vertices", fmt.Sprintf("%d", vertices))
	printKeyValue("Link types", fmt.Sprintf("%d", len(types)))

	var isolated int
	for _, e := range g.Elements() {
		if len(g.ElementLinks(e.ID())) == 0 {
			isolated++
		}
	}
	if isolated > 0 {
		printKeyValue("Isolated", fmt.Sprintf("%d", isolated))
	}

	if g.ElementCount() > 0 {
		fmt.Println()
		fmt.Println(renderDegreeTable(g))
	}
}

// renderDegreeTable builds a table of elements sorted by degree, busiest
// first. Ties keep z-order so output is deterministic.
func renderDegreeTable(g *graph.Graph) string {
	type row struct {
		id     string
		degree int
	}
	rows := make([]row, 0, g.ElementCount())
	for _, e := range g.Elements() {
		rows = append(rows, row{id: e.ID(), degree: len(g.ElementLinks(e.ID()))})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].degree > rows[j].degree })

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.id, fmt.Sprintf("%d", r.degree)}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Element", "Links").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}
