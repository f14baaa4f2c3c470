package components

import (
	"fmt"
	"strings"

	configpkg "github.com/goalboard/goalboard/internal/config"
)

// SummaryData aggregates board counts for rendering summaries.
type SummaryData struct {
	Goals      int
	Items      int
	Actionable int
}

// Summarize tallies a board document.
func Summarize(board *configpkg.Board) SummaryData {
	var data SummaryData
	if board == nil {
		return data
	}
	data.Goals = len(board.Goals)
	for _, goal := range board.Goals {
		data.Items += len(goal.Items)
		for _, entry := range goal.Items {
			if entry.Kind == "task" {
				data.Actionable++
			}
		}
	}
	return data
}

// Summary renders a textual board summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	parts := []string{
		fmt.Sprintf("%d %s", s.data.Goals, pluralize("goal", s.data.Goals)),
		fmt.Sprintf("%d %s", s.data.Items, pluralize("item", s.data.Items)),
	}
	if s.data.Actionable > 0 {
		parts = append(parts, fmt.Sprintf("%d actionable", s.data.Actionable))
	}
	return strings.Join(parts, " · ")
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
