package tui

import (
	"github.com/charmbracelet/bubbles/viewport"

	"frrconf/internal/diff"
)

// Decision is the reviewer's verdict on a diff.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionAccepted
	DecisionRejected
)

func (d Decision) String() string {
	switch d {
	case DecisionAccepted:
		return "accepted"
	case DecisionRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Lines taken by the header and footer around the viewport.
const (
	headerHeight = 3
	footerHeight = 2
)

// model is the Bubbletea model for the review screen.
type model struct {
	file     string
	diff     string
	added    int
	removed  int
	viewport viewport.Model
	decision Decision
	width    int
	height   int
}

// initialModel creates the review model for a unified diff of file.
func initialModel(file, unified string, width, height int) model {
	added, removed := diff.Stat(unified)
	vp := viewport.New(width, max(height-headerHeight-footerHeight, 3))
	vp.SetContent(diff.Colorize(unified))
	return model{
		file:     file,
		diff:     unified,
		added:    added,
		removed:  removed,
		viewport: vp,
		width:    width,
		height:   height,
	}
}
