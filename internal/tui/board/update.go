package board

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minWidth  = 40
	minHeight = 10
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.tooSmall = m.width < minWidth || m.height < minHeight
		for _, r := range m.rows {
			if r.cell != nil {
				r.cell.SetWidth(m.contentWidth())
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursor = m.nextSelectable(m.cursor, -1)
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor = m.nextSelectable(m.cursor, +1)
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Trigger):
		return m.triggerCurrent()
	}

	return m, nil
}

func (m Model) triggerCurrent() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return m, nil
	}
	current := m.rows[m.cursor]
	if current.cell == nil || !current.cell.HasAction() {
		m.status = ""
		return m, nil
	}

	current.cell.Trigger()
	m.status = fmt.Sprintf("Triggered %q", current.title)
	return m, nil
}

func (m Model) contentWidth() int {
	width := m.width - 4
	if width < 0 {
		return 0
	}
	return width
}
