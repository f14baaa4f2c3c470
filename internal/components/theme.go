package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goalboard/goalboard/internal/item"
)

// ColourSet represents a semantic color set with base, on-base, muted, and
// contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by the cell renderer.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// SlotStyles holds the canonical style for each presentation slot. Each
// capability trait has exactly one slot and one style, defined here and
// nowhere else; variants never restyle a slot.
type SlotStyles struct {
	Title   lipgloss.Style
	Value   lipgloss.Style
	Message lipgloss.Style
	Button  lipgloss.Style
	Icon    lipgloss.Style
}

// Theme is the styling provider for cells. It is passed explicitly to the
// cell factory; there is no process-wide theme state.
type Theme struct {
	Palette Palette
	Slots   SlotStyles
	Tints   map[item.Tint]lipgloss.AdaptiveColor
}

// TintColor resolves a tint token to its themed colour.
func (t Theme) TintColor(tint item.Tint) (lipgloss.AdaptiveColor, bool) {
	color, ok := t.Tints[tint]
	return color, ok
}

// DefaultTheme returns the standard board theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	tints := map[item.Tint]lipgloss.AdaptiveColor{
		item.TintBlue:   ac("#2563eb", "#60a5fa"),
		item.TintGreen:  ac("#16a34a", "#4ade80"),
		item.TintRed:    ac("#dc2626", "#f87171"),
		item.TintYellow: ac("#ca8a04", "#facc15"),
		item.TintPurple: ac("#7c3aed", "#c084fc"),
		item.TintCyan:   ac("#0891b2", "#22d3ee"),
	}

	theme := Theme{Palette: palette, Tints: tints}
	theme.Slots = defaultSlotStyles(theme)
	return theme
}

// DarkTheme returns a theme tuned for dark backgrounds.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Slots = defaultSlotStyles(theme)
	return theme
}

func defaultSlotStyles(theme Theme) SlotStyles {
	base := lipgloss.NewStyle()
	return SlotStyles{
		Title:   Style(base, theme, TitleSlotStyle()...),
		Value:   Style(base, theme, ValueSlotStyle()...),
		Message: Style(base, theme, MessageSlotStyle()...),
		Button:  Style(base, theme, ButtonSlotStyle()...),
		Icon:    Style(base, theme, IconSlotStyle()...),
	}
}
