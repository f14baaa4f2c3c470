package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	configpkg "github.com/goalboard/goalboard/internal/config"
)

func TestSummarizeCountsGoalsItemsAndTasks(t *testing.T) {
	t.Parallel()

	board := &configpkg.Board{
		Goals: []configpkg.Goal{
			{Name: "Health", Items: []configpkg.Entry{
				{Kind: "plain", Title: "Daily login"},
				{Kind: "task", Title: "Sync"},
			}},
			{Name: "Social", Items: []configpkg.Entry{
				{Kind: "note", Title: "Invite friends"},
			}},
		},
	}

	data := Summarize(board)
	require.Equal(t, SummaryData{Goals: 2, Items: 3, Actionable: 1}, data)
	require.Equal(t, "2 goals · 3 items · 1 actionable", NewSummary(data).View())
}

func TestSummarizeNilBoard(t *testing.T) {
	t.Parallel()

	require.Equal(t, SummaryData{}, Summarize(nil))
	require.Equal(t, "0 goals · 0 items", NewSummary(SummaryData{}).View())
}

func TestSummarySingularForms(t *testing.T) {
	t.Parallel()

	view := NewSummary(SummaryData{Goals: 1, Items: 1}).View()
	require.Equal(t, "1 goal · 1 item", view)
}
