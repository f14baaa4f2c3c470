package item

import (
	"fmt"
	"strings"
)

// Capability traits. Each trait exposes exactly one read-only attribute a
// variant may supply. A variant implements only the traits whose data it
// actually carries; absence of a trait is a normal state, not an error.

// Titled is implemented by variants that carry a heading.
type Titled interface {
	Title() string
}

// Valued is implemented by variants that carry a progress or amount figure.
type Valued interface {
	Value() string
}

// Messaged is implemented by variants that carry secondary detail text.
type Messaged interface {
	Message() string
}

// Tinted is implemented by variants that carry an accent colour token.
type Tinted interface {
	Tint() Tint
}

// Iconed is implemented by variants that carry a glyph for the icon slot.
type Iconed interface {
	Icon() string
}

// Labeled is implemented by variants that carry a button caption.
type Labeled interface {
	ButtonLabel() string
}

// Actionable is implemented by variants that carry a user-interaction
// callback. The callback is opaque to the rendering core; it is invoked with
// no arguments when the row's button is triggered.
type Actionable interface {
	Action() func()
}

// Tint is a semantic accent token. Variants name a tint; the theme decides
// what colour it resolves to, so this package stays free of styling
// dependencies.
type Tint int

const (
	TintBlue Tint = iota
	TintGreen
	TintRed
	TintYellow
	TintPurple
	TintCyan
)

var tintNames = map[Tint]string{
	TintBlue:   "blue",
	TintGreen:  "green",
	TintRed:    "red",
	TintYellow: "yellow",
	TintPurple: "purple",
	TintCyan:   "cyan",
}

// String returns the lowercase name of the tint.
func (t Tint) String() string {
	if name, ok := tintNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tint(%d)", int(t))
}

// Valid reports whether the tint is one of the known tokens.
func (t Tint) Valid() bool {
	_, ok := tintNames[t]
	return ok
}

// ParseTint resolves a tint token from its name.
func ParseTint(name string) (Tint, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for tint, tintName := range tintNames {
		if tintName == needle {
			return tint, nil
		}
	}
	return 0, fmt.Errorf("unknown tint %q", name)
}

// TintNames returns the accepted tint names in declaration order.
func TintNames() []string {
	names := make([]string, 0, len(tintNames))
	for tint := TintBlue; tint <= TintCyan; tint++ {
		names = append(names, tintNames[tint])
	}
	return names
}
