package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goalboard/goalboard/internal/components"
)

type outputStyles struct {
	title   lipgloss.Style
	goal    lipgloss.Style
	row     lipgloss.Style
	summary lipgloss.Style
}

func showStyles(theme components.Theme) outputStyles {
	return outputStyles{
		title: components.Style(lipgloss.NewStyle(), theme,
			components.Foreground(components.PalettePrimary),
			components.Bold(),
		),
		goal: components.Style(lipgloss.NewStyle(), theme,
			components.Foreground(components.PaletteSecondary),
			components.Bold(),
		).MarginTop(1),
		row: lipgloss.NewStyle().PaddingLeft(2),
		summary: components.Style(lipgloss.NewStyle(), theme,
			components.Muted(components.PaletteNeutral),
		).MarginTop(1),
	}
}
