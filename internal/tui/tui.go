// Package tui shows a configuration diff and asks whether to write it.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/oops"
)

// Init initializes the review model.
func (m model) Init() tea.Cmd {
	return nil
}

// Review shows the diff of file full screen until the user accepts or
// rejects it.
func Review(file, unified string) (Decision, error) {
	m := initialModel(file, unified, 80, 24)
	p := tea.NewProgram(&teaModelAdapter{m}, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return DecisionRejected, oops.Wrapf(err, "review failed")
	}
	a, ok := final.(*teaModelAdapter)
	if !ok || a.m.decision == DecisionPending {
		return DecisionRejected, nil
	}
	return a.m.decision, nil
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
