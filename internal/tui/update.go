package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all Bubbletea update logic for the review model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// HandleKeyMsg accepts or rejects the diff, or scrolls it.
func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.decision != DecisionPending {
		return m, nil
	}
	switch msg.String() {
	case "y", "enter":
		m.decision = DecisionAccepted
		return m, tea.Quit
	case "n", "q", "esc", "ctrl+c":
		m.decision = DecisionRejected
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.viewport.Width = msg.Width
	m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 3)
	return m, nil
}
