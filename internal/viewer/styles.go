package viewer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Highlight lipgloss.Style
	Prompt    lipgloss.Style
	Archive   lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true)
		s.Prompt = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Archive = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	} else {
		s.Highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27")).Bold(true)
		s.Prompt = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Archive = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return s
}

// ArchiveStatus renders the matched/total counter shown beside the
// archived view's editor pane.
func (s Styles) ArchiveStatus(matched, total int) string {
	return s.Archive.Render(fmt.Sprintf("  %d/%d archived", matched, total))
}
