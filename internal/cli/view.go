package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trellis-dev/trellis/pkg/diagram"
	"github.com/trellis-dev/trellis/pkg/graphfile"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a diagram interactively",
		Long:  `View renders a JSON graph file as an ASCII diagram and opens it in a scrollable pager. Useful for diagrams taller than the terminal.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			m := newViewerModel(args[0], diagram.Render(g))
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

// viewerModel is the bubbletea model for the diagram pager.
type viewerModel struct {
	title  string
	lines  []string
	offset int
	height int
}

func newViewerModel(title, body string) viewerModel {
	return viewerModel{
		title:  title,
		lines:  strings.Split(body, "\n"),
		height: 20,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset = m.clamp(m.offset - 1)
		case "down", "j":
			m.offset = m.clamp(m.offset + 1)
		case "pgup", "b":
			m.offset = m.clamp(m.offset - m.height)
		case "pgdown", "f", " ":
			m.offset = m.clamp(m.offset + m.height)
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = m.clamp(len(m.lines))
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 3
		if m.height < 5 {
			m.height = 5
		}
		m.offset = m.clamp(m.offset)
	}
	return m, nil
}

// clamp keeps the offset inside the scrollable range.
func (m viewerModel) clamp(offset int) int {
	max := len(m.lines) - m.height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m viewerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("↑/↓ scroll  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.lines) > m.height {
		b.WriteString(StyleDim.Render(fmt.Sprintf("\n%d-%d of %d", m.offset+1, end, len(m.lines))))
	}
	return b.String()
}
