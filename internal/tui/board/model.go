package board

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalboard/goalboard/internal/components"
	configpkg "github.com/goalboard/goalboard/internal/config"
	"github.com/goalboard/goalboard/internal/itemconv"
	"github.com/goalboard/goalboard/internal/logger"
)

// row is one display line of the board: either a goal header or an item cell.
type row struct {
	goalName string
	header   bool
	title    string
	cell     *components.Cell
}

// Model is the interactive board model.
type Model struct {
	boardName string
	summary   string
	rows      []row

	cursor int
	status string

	width  int
	height int

	tooSmall bool

	keys     keyMap
	help     help.Model
	showHelp bool

	styles styles
	log    *logger.Logger
}

// NewModel builds the board model from a validated board document. Rows are
// rendered through the cell factory once, up front; triggering a task later
// reuses the same cell.
func NewModel(board *configpkg.Board, factory components.CellFactory, log *logger.Logger) (Model, error) {
	m := Model{
		boardName: board.Name,
		summary:   components.NewSummary(components.Summarize(board)).View(),
		keys:      newKeyMap(),
		help:      help.New(),
		styles:    newStyles(factory.Theme()),
		log:       log,
		width:     80,
		height:    24,
	}

	resolver := func(goalName, title string) func() {
		return func() {
			log.WithFields(map[string]any{"goal": goalName, "item": title}).Info("task triggered")
		}
	}

	for _, goal := range board.Goals {
		m.rows = append(m.rows, row{goalName: goal.Name, header: true, title: goal.Name})

		items, err := itemconv.ToItems(goal, resolver)
		if err != nil {
			return Model{}, err
		}
		for i, it := range items {
			cell, err := factory.Cell(it)
			if err != nil {
				return Model{}, fmt.Errorf("goal %q: %w", goal.Name, err)
			}
			m.rows = append(m.rows, row{
				goalName: goal.Name,
				title:    goal.Items[i].Title,
				cell:     cell,
			})
		}
	}

	m.cursor = m.firstSelectable()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Rows returns the number of display rows, headers included.
func (m Model) Rows() int {
	return len(m.rows)
}

// Cursor returns the index of the selected row.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the transient status line content.
func (m Model) Status() string {
	return m.status
}

func (m Model) firstSelectable() int {
	for i, r := range m.rows {
		if !r.header {
			return i
		}
	}
	return 0
}

func (m Model) nextSelectable(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.rows); i += dir {
		if !m.rows[i].header {
			return i
		}
	}
	return from
}
