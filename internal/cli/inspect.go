package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/paperboard/paperboard/pkg/config"
	"github.com/paperboard/paperboard/pkg/diagram"
	"github.com/paperboard/paperboard/pkg/graph"
)

// newInspectCmd creates the inspect command.
func newInspectCmd(configPath *string) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "inspect <layout.json>",
		Short: "Browse and edit a diagram interactively",
		Long: `Inspect opens a layout file in an interactive terminal browser. Elements
are listed in z-order with their positions and link counts. Deleting an
element also detaches its links; every edit is undoable.`,
		Example: `  # Browse a diagram
  paperboard inspect diagram.json

  # Edit and save changes back on exit
  paperboard inspect -w diagram.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			m := diagram.New(cfg)
			loaded, err := graph.ReadLayoutFile(args[0])
			if err != nil {
				return err
			}
			if err := m.Graph().Reset(loaded.Elements(), loaded.Links()); err != nil {
				return err
			}
			logger.Debugf("loaded %d elements, %d links", m.Graph().ElementCount(), m.Graph().LinkCount())

			tui := newInspectModel(m, args[0])
			final, err := tea.NewProgram(tui, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			result := final.(inspectModel)
			if !write {
				if result.edits > 0 {
					printWarning("discarded %d edits (run with -w to save)", result.edits)
				}
				return nil
			}
			if result.edits == 0 {
				printInfo("no changes")
				return nil
			}
			if err := graph.WriteLayoutFile(m.Graph(), args[0]); err != nil {
				return err
			}
			printSuccess("saved %d edits", result.edits)
			printFile(args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "save changes back to the file on exit")
	return cmd
}

// =============================================================================
// inspectModel - Interactive diagram browser
// =============================================================================

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectModel is the bubbletea model for the diagram browser.
type inspectModel struct {
	diagram *diagram.Model
	path    string

	cursor int
	offset int
	height int
	status string
	edits  int
}

func newInspectModel(m *diagram.Model, path string) inspectModel {
	return inspectModel{diagram: m, path: path, height: 15}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < m.diagram.Graph().ElementCount()-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "d", "delete":
			order := m.diagram.Graph().ZOrder()
			if m.cursor < len(order) {
				id := order[m.cursor]
				if err := m.diagram.RemoveElement(id); err != nil {
					m.status = err.Error()
					return m, nil
				}
				m.edits++
				m.status = fmt.Sprintf("deleted %s", id)
				m.clampCursor()
			}
		case "f":
			order := m.diagram.Graph().ZOrder()
			if m.cursor < len(order) {
				m.diagram.BringToFront(order[m.cursor])
				m.cursor = m.diagram.Graph().ElementCount() - 1
				m.status = "brought to front"
			}
		case "u":
			if m.diagram.History().Undo() {
				m.edits--
				m.status = "undid last edit"
				m.clampCursor()
			} else {
				m.status = "nothing to undo"
			}
		case "r":
			if m.diagram.History().Redo() {
				m.edits++
				m.status = "redid last edit"
				m.clampCursor()
			} else {
				m.status = "nothing to redo"
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m *inspectModel) clampCursor() {
	if max := m.diagram.Graph().ElementCount() - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.path))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  d delete  f front  u undo  r redo  q quit"))
	b.WriteString("\n\n")

	order := m.diagram.Graph().ZOrder()
	end := m.offset + m.height
	if end > len(order) {
		end = len(order)
	}

	for i := m.offset; i < end; i++ {
		e, ok := m.diagram.Graph().Element(order[i])
		if !ok {
			continue
		}

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		pos := e.Position()
		links := len(m.diagram.Graph().ElementLinks(e.ID()))
		line := fmt.Sprintf("%s%-24s  (%.0f, %.0f)  %s", cursor, e.ID(), pos.X, pos.Y,
			listDimStyle.Render(fmt.Sprintf("%d links", links)))

		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if len(order) == 0 {
		b.WriteString(listDimStyle.Render("  (empty diagram)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("[%d/%d]", m.cursor+1, len(order))
	if len(order) == 0 {
		footer = "[0/0]"
	}
	if m.status != "" {
		footer += "  " + m.status
	}
	b.WriteString(listDimStyle.Render("  " + footer))

	return b.String()
}
