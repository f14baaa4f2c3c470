package components

import (
	"github.com/goalboard/goalboard/internal/item"
	apperrors "github.com/goalboard/goalboard/pkg/errors"
)

// CellFactory maps the item union to configured cells. One configure routine
// per union case; adding a variant means adding one case here and nothing
// else. The factory is stateless and allocates a fresh cell per call.
type CellFactory struct {
	theme Theme
}

// NewCellFactory constructs a factory bound to the supplied theme.
func NewCellFactory(theme Theme) CellFactory {
	return CellFactory{theme: theme}
}

// Theme returns the theme the factory configures cells with.
func (f CellFactory) Theme() Theme {
	return f.theme
}

// Cell builds a ready-to-display cell for the row. The default branch is
// unreachable while the union stays sealed; it exists so that an unwired
// variant surfaces as a distinct error instead of an empty cell.
func (f CellFactory) Cell(row item.Item) (*Cell, error) {
	cell := NewCell(f.theme)

	switch v := row.(type) {
	case item.Detailed:
		f.configureDetailed(cell, v)
	case item.Plain:
		f.configurePlain(cell, v)
	case item.Note:
		f.configureNote(cell, v)
	case item.Task:
		f.configureTask(cell, v)
	case item.Badge:
		f.configureBadge(cell, v)
	default:
		return nil, apperrors.NewUnknownItemError(row)
	}

	return cell, nil
}

func (f CellFactory) configureDetailed(cell *Cell, row item.Detailed) {
	cell.Apply(row)
}

func (f CellFactory) configurePlain(cell *Cell, row item.Plain) {
	cell.Apply(row)
}

func (f CellFactory) configureNote(cell *Cell, row item.Note) {
	cell.Apply(row)
}

func (f CellFactory) configureTask(cell *Cell, row item.Task) {
	cell.Apply(row)
}

// configureBadge reassigns the tint from its default value-slot target to
// the icon slot; badges carry no value and the tint belongs to the glyph.
func (f CellFactory) configureBadge(cell *Cell, row item.Badge) {
	cell.Apply(row)
	cell.ApplyTint(SlotIcon, row.Tint())
}
