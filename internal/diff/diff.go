// Package diff renders the changes made to a configuration.
package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/samber/oops"

	"frrconf/pkg/frr"
)

// Unified returns a unified diff from the original to the working copy of
// cfg, labelled with name. It is empty when nothing changed.
func Unified(cfg *frr.Config, name string, context int) (string, error) {
	if !cfg.Changed() {
		return "", nil
	}
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withNewlines(cfg.Original()),
		B:        withNewlines(cfg.Lines()),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  context,
	})
	if err != nil {
		return "", oops.Wrapf(err, "failed to diff %s", name)
	}
	return out, nil
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

// Stat counts added and removed lines in a unified diff.
func Stat(unified string) (added, removed int) {
	for _, line := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Colorize styles a unified diff for a terminal. Colors are dropped
// automatically when the output is not a terminal.
func Colorize(unified string) string {
	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = headerStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
