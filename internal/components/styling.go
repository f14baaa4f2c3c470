package components

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleApplier applies a styling transformation using data from a Theme.
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers against an explicitly supplied theme.
func Style(base lipgloss.Style, theme Theme, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Muted applies a semantic muted foreground colour.
func Muted(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Muted)
	}
}

// Bold switches on bold rendering.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Faint switches on faint rendering.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

// PaddingX applies symmetric horizontal padding.
func PaddingX(cells int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(cells).PaddingRight(cells)
	}
}

// Convenience bundles for the common slot activations.

// TitleSlotStyle is the canonical title treatment: semibold primary text.
func TitleSlotStyle() []StyleApplier {
	return []StyleApplier{
		Foreground(PalettePrimary),
		Bold(),
	}
}

// ValueSlotStyle is the canonical value treatment before any tint override.
func ValueSlotStyle() []StyleApplier {
	return []StyleApplier{
		Foreground(PaletteNeutral),
		Bold(),
	}
}

// MessageSlotStyle is the canonical secondary-text treatment.
func MessageSlotStyle() []StyleApplier {
	return []StyleApplier{
		Muted(PaletteNeutral),
		Faint(),
	}
}

// ButtonSlotStyle is the canonical button treatment.
func ButtonSlotStyle() []StyleApplier {
	return []StyleApplier{
		Background(PalettePrimary),
		PaddingX(1),
		Bold(),
	}
}

// IconSlotStyle is the canonical icon treatment before any tint reassignment.
func IconSlotStyle() []StyleApplier {
	return []StyleApplier{
		Foreground(PaletteSecondary),
	}
}
