package item

import (
	"strings"

	apperrors "github.com/goalboard/goalboard/pkg/errors"
)

// Item is the tagged union of subgoal row variants. The marker method seals
// the set: only this package can add cases, and every case must be wired to
// exactly one configure routine in the cell factory.
type Item interface {
	variant()
}

// Detailed is a row with a full complement of data: heading, progress value,
// detail text, and an accent tint for the value.
type Detailed struct {
	title   string
	value   string
	message string
	tint    Tint
}

// NewDetailed constructs a Detailed row. All fields are required.
func NewDetailed(title, value, message string, tint Tint) (Detailed, error) {
	if err := requireText("title", title); err != nil {
		return Detailed{}, err
	}
	if err := requireText("value", value); err != nil {
		return Detailed{}, err
	}
	if err := requireText("message", message); err != nil {
		return Detailed{}, err
	}
	if !tint.Valid() {
		return Detailed{}, apperrors.NewValidationError("tint", "unknown tint token", nil)
	}
	return Detailed{title: title, value: value, message: message, tint: tint}, nil
}

func (d Detailed) Title() string   { return d.title }
func (d Detailed) Value() string   { return d.value }
func (d Detailed) Message() string { return d.message }
func (d Detailed) Tint() Tint      { return d.tint }

// Plain is a row carrying a heading and nothing else.
type Plain struct {
	title string
}

// NewPlain constructs a Plain row.
func NewPlain(title string) (Plain, error) {
	if err := requireText("title", title); err != nil {
		return Plain{}, err
	}
	return Plain{title: title}, nil
}

func (p Plain) Title() string { return p.title }

// Note is a row with a heading and detail text.
type Note struct {
	title   string
	message string
}

// NewNote constructs a Note row.
func NewNote(title, message string) (Note, error) {
	if err := requireText("title", title); err != nil {
		return Note{}, err
	}
	if err := requireText("message", message); err != nil {
		return Note{}, err
	}
	return Note{title: title, message: message}, nil
}

func (n Note) Title() string   { return n.title }
func (n Note) Message() string { return n.message }

// Task is an actionable row: heading, detail text, and a button that invokes
// the supplied callback when triggered.
type Task struct {
	title       string
	message     string
	buttonLabel string
	action      func()
}

// NewTask constructs a Task row. The action callback must be non-nil.
func NewTask(title, message, buttonLabel string, action func()) (Task, error) {
	if err := requireText("title", title); err != nil {
		return Task{}, err
	}
	if err := requireText("message", message); err != nil {
		return Task{}, err
	}
	if err := requireText("button_label", buttonLabel); err != nil {
		return Task{}, err
	}
	if action == nil {
		return Task{}, apperrors.NewValidationError("action", "action callback is required", nil)
	}
	return Task{title: title, message: message, buttonLabel: buttonLabel, action: action}, nil
}

func (t Task) Title() string       { return t.title }
func (t Task) Message() string     { return t.message }
func (t Task) ButtonLabel() string { return t.buttonLabel }
func (t Task) Action() func()      { return t.action }

// Badge is a decorated row: heading plus a tinted glyph in the icon slot.
type Badge struct {
	title string
	icon  string
	tint  Tint
}

// NewBadge constructs a Badge row.
func NewBadge(title, icon string, tint Tint) (Badge, error) {
	if err := requireText("title", title); err != nil {
		return Badge{}, err
	}
	if err := requireText("icon", icon); err != nil {
		return Badge{}, err
	}
	if !tint.Valid() {
		return Badge{}, apperrors.NewValidationError("tint", "unknown tint token", nil)
	}
	return Badge{title: title, icon: icon, tint: tint}, nil
}

func (b Badge) Title() string { return b.title }
func (b Badge) Icon() string  { return b.icon }
func (b Badge) Tint() Tint    { return b.tint }

func (Detailed) variant() {}
func (Plain) variant()    {}
func (Note) variant()     {}
func (Task) variant()     {}
func (Badge) variant()    {}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, "must not be blank", nil)
	}
	return nil
}
