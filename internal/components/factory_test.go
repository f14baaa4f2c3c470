package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goalboard/goalboard/internal/item"
)

func mustDetailed(t *testing.T) item.Detailed {
	t.Helper()
	row, err := item.NewDetailed("Steps", "9/10", "Almost there", item.TintBlue)
	require.NoError(t, err)
	return row
}

func TestFactoryCoversEveryVariant(t *testing.T) {
	t.Parallel()

	plain, err := item.NewPlain("Daily login")
	require.NoError(t, err)
	note, err := item.NewNote("Invite friends", "Earn rewards")
	require.NoError(t, err)
	task, err := item.NewTask("Sync", "Upload data", "Sync now", func() {})
	require.NoError(t, err)
	badge, err := item.NewBadge("Streak", "🔥", item.TintYellow)
	require.NoError(t, err)

	rows := []item.Item{mustDetailed(t), plain, note, task, badge}

	factory := NewCellFactory(DefaultTheme())
	for _, row := range rows {
		cell, err := factory.Cell(row)
		require.NoError(t, err)
		require.NotNil(t, cell)
		require.True(t, cell.Slot(SlotTitle).Active(), "%T must activate the title slot", row)
	}
}

func TestFactoryAllocatesFreshCells(t *testing.T) {
	t.Parallel()

	factory := NewCellFactory(DefaultTheme())

	first, err := factory.Cell(mustDetailed(t))
	require.NoError(t, err)
	second, err := factory.Cell(mustDetailed(t))
	require.NoError(t, err)

	require.NotSame(t, first, second)
	require.Equal(t, first.View(), second.View())
}

func TestBadgeRoutineReassignsTintToIcon(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	factory := NewCellFactory(theme)

	badge, err := item.NewBadge("Streak", "🔥", item.TintYellow)
	require.NoError(t, err)

	cell, err := factory.Cell(badge)
	require.NoError(t, err)

	require.True(t, cell.Slot(SlotIcon).Active())
	wantTint, ok := theme.TintColor(item.TintYellow)
	require.True(t, ok)
	require.Equal(t, wantTint, cell.Slot(SlotIcon).Style().GetForeground())
	require.False(t, cell.Slot(SlotValue).Active())
}

func TestFactoryOutputIsStableAcrossVariantMix(t *testing.T) {
	t.Parallel()

	// Existing variants must render identically regardless of which other
	// variants were built in between.
	factory := NewCellFactory(DefaultTheme())

	before, err := factory.Cell(mustDetailed(t))
	require.NoError(t, err)
	baseline := before.View()

	badge, err := item.NewBadge("Streak", "🔥", item.TintYellow)
	require.NoError(t, err)
	_, err = factory.Cell(badge)
	require.NoError(t, err)

	after, err := factory.Cell(mustDetailed(t))
	require.NoError(t, err)
	require.Equal(t, baseline, after.View())
}
