package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goalboard/goalboard/internal/components"
)

// styles derives every screen-level style from the injected theme; nothing
// here touches package-level state.
type styles struct {
	appTitle   lipgloss.Style
	goalHeader lipgloss.Style
	rowBase    lipgloss.Style
	rowActive  lipgloss.Style
	status     lipgloss.Style
	footer     lipgloss.Style
	banner     lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	return styles{
		appTitle: components.Style(lipgloss.NewStyle(), theme,
			components.Foreground(components.PalettePrimary),
			components.Bold(),
		).MarginBottom(1),
		goalHeader: components.Style(lipgloss.NewStyle(), theme,
			components.Foreground(components.PaletteSecondary),
			components.Bold(),
		).MarginTop(1),
		rowBase: lipgloss.NewStyle().PaddingLeft(2),
		rowActive: components.Style(lipgloss.NewStyle(), theme,
			components.Foreground(components.PalettePrimary),
		).Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1),
		status: components.Style(lipgloss.NewStyle(), theme,
			components.Foreground(components.PaletteSuccess),
		).MarginTop(1),
		footer: components.Style(lipgloss.NewStyle(), theme,
			components.Muted(components.PaletteNeutral),
		).MarginTop(1),
		banner: components.Style(lipgloss.NewStyle(), theme,
			components.Background(components.PaletteDanger),
			components.PaddingX(1),
			components.Bold(),
		),
	}
}
