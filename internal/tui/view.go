package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// ModelView renders the review model as a string.
func ModelView(m model) string {
	switch m.decision {
	case DecisionAccepted:
		return addedStyle.Render("Changes accepted.") + "\n"
	case DecisionRejected:
		return removedStyle.Render("Changes discarded.") + "\n"
	}
	if m.diff == "" {
		return headerStyle.Render("No changes to "+m.file) + "\n" + helpStyle.Render("q to quit") + "\n"
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("Review changes to "+m.file+"  "),
		addedStyle.Render(fmt.Sprintf("+%d ", m.added)),
		removedStyle.Render(fmt.Sprintf("-%d", m.removed)),
	)
	body := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Render(m.viewport.View())
	footer := helpStyle.Render(fmt.Sprintf("%3.f%%  y/enter: write  n/q: discard  ↑/↓: scroll", m.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
