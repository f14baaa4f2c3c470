// Package itemconv maps validated board configuration entries onto domain
// item variants.
package itemconv

import (
	"fmt"

	configpkg "github.com/goalboard/goalboard/internal/config"
	"github.com/goalboard/goalboard/internal/item"
	apperrors "github.com/goalboard/goalboard/pkg/errors"
)

// ActionResolver supplies the callback for a task entry. Board files cannot
// carry code, so the host decides what triggering a task means.
type ActionResolver func(goalName, title string) func()

// ToItem converts one board entry into its item variant. The entry is
// expected to have passed board validation; constructor errors still surface
// for defence in depth.
func ToItem(goalName string, entry configpkg.Entry, resolve ActionResolver) (item.Item, error) {
	switch entry.Kind {
	case "detailed":
		if entry.Detailed == nil {
			return nil, missingFields(entry)
		}
		tint, err := item.ParseTint(entry.Detailed.Tint)
		if err != nil {
			return nil, apperrors.NewValidationError("tint", err.Error(), err)
		}
		return item.NewDetailed(entry.Title, entry.Detailed.Value, entry.Detailed.Message, tint)

	case "plain":
		return item.NewPlain(entry.Title)

	case "note":
		if entry.Note == nil {
			return nil, missingFields(entry)
		}
		return item.NewNote(entry.Title, entry.Note.Message)

	case "task":
		if entry.Task == nil {
			return nil, missingFields(entry)
		}
		var action func()
		if resolve != nil {
			action = resolve(goalName, entry.Title)
		}
		if action == nil {
			action = func() {}
		}
		return item.NewTask(entry.Title, entry.Task.Message, entry.Task.ButtonLabel, action)

	case "badge":
		if entry.Badge == nil {
			return nil, missingFields(entry)
		}
		tint, err := item.ParseTint(entry.Badge.Tint)
		if err != nil {
			return nil, apperrors.NewValidationError("tint", err.Error(), err)
		}
		return item.NewBadge(entry.Title, entry.Badge.Icon, tint)

	default:
		return nil, apperrors.NewValidationError("kind", fmt.Sprintf("unknown entry kind %q", entry.Kind), nil)
	}
}

// ToItems converts every entry of a goal, preserving order.
func ToItems(goal configpkg.Goal, resolve ActionResolver) ([]item.Item, error) {
	rows := make([]item.Item, 0, len(goal.Items))
	for i, entry := range goal.Items {
		row, err := ToItem(goal.Name, entry, resolve)
		if err != nil {
			return nil, fmt.Errorf("item %d of goal %q: %w", i, goal.Name, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func missingFields(entry configpkg.Entry) error {
	return apperrors.NewValidationError(entry.Kind, fmt.Sprintf("%s fields are required", entry.Kind), nil)
}
