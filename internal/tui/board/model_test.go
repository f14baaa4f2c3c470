package board

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/goalboard/goalboard/internal/components"
	configpkg "github.com/goalboard/goalboard/internal/config"
	"github.com/goalboard/goalboard/internal/logger"
)

func testBoard() *configpkg.Board {
	return &configpkg.Board{
		Version: "1.0",
		Name:    "My goals",
		Goals: []configpkg.Goal{
			{
				Name: "Health",
				Items: []configpkg.Entry{
					{
						Kind:     "detailed",
						Title:    "Steps",
						Detailed: &configpkg.DetailedFields{Value: "9/10", Message: "Almost there", Tint: "blue"},
					},
					{Kind: "plain", Title: "Daily login"},
				},
			},
			{
				Name: "Social",
				Items: []configpkg.Entry{
					{
						Kind:  "task",
						Title: "Sync",
						Task:  &configpkg.TaskFields{Message: "Upload data", ButtonLabel: "Sync now"},
					},
				},
			},
		},
	}
}

func newTestModel(t *testing.T) (Model, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	m, err := NewModel(testBoard(), components.NewCellFactory(components.DefaultTheme()), log)
	require.NoError(t, err)
	return m, buf
}

func TestNewModelBuildsHeaderAndItemRows(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	// Two goal headers plus three item rows.
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 1, m.Cursor(), "cursor starts on the first item, not the header")
}

func TestUpdateMovesCursorOverItemsOnly(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	require.Equal(t, 2, m.Cursor())

	// Next item is behind the "Social" header; the header is skipped.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	require.Equal(t, 4, m.Cursor())

	// Bottom of the list; the cursor stays put.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	require.Equal(t, 4, m.Cursor())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	require.Equal(t, 2, m.Cursor())
}

func TestUpdateTriggerOnTaskSetsStatusAndLogs(t *testing.T) {
	t.Parallel()

	m, buf := newTestModel(t)

	// Move to the Sync task row.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	require.Contains(t, m.Status(), "Sync")
	require.Contains(t, buf.String(), "task triggered")
}

func TestUpdateTriggerOnPlainRowIsNoop(t *testing.T) {
	t.Parallel()

	m, buf := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	require.Empty(t, m.Status())
	require.NotContains(t, buf.String(), "task triggered")
}

func TestUpdateQuit(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}

func TestUpdateWindowSizeTogglesBanner(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = next.(Model)
	require.Contains(t, m.View(), "Terminal too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	require.NotContains(t, m.View(), "Terminal too small")
}

func TestViewRendersGoalsAndItems(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	out := m.View()
	require.Contains(t, out, "My goals")
	require.Contains(t, out, "Health")
	require.Contains(t, out, "Social")
	require.Contains(t, out, "Steps")
	require.Contains(t, out, "9/10")
	require.Contains(t, out, "Daily login")
	require.Contains(t, out, "Sync now")
	require.Contains(t, out, "2 goals · 3 items · 1 actionable")
}

func TestViewHelpToggle(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	m = next.(Model)
	require.Contains(t, m.View(), "toggle help")
}
