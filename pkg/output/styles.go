package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for the three line kinds the renderer emits. Kept minimal on
// purpose: one accent for created links, muted for dry-run plans, red
// for failures.
var (
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// style applies s unless color is disabled, in which case the text
// passes through untouched so output stays byte-stable for pipes.
func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.noColor {
		return text
	}
	return s.Render(text)
}
