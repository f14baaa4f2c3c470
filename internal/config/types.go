package config

import (
	"gopkg.in/yaml.v3"
)

// Board represents a full goalboard document.
type Board struct {
	Version string `yaml:"version" validate:"required,board_version"`
	Name    string `yaml:"name" validate:"required,min=1,max=100"`
	Goals   []Goal `yaml:"goals" validate:"required,min=1,dive"`
}

// Goal groups related subgoal rows under a heading.
type Goal struct {
	Name  string  `yaml:"name" validate:"required,min=1,max=100"`
	Items []Entry `yaml:"items" validate:"required,min=1,dive"`
}

// Entry describes one subgoal row. The kind field discriminates which
// payload block applies; exactly one payload is populated after decoding.
type Entry struct {
	Kind  string `yaml:"kind" validate:"required,oneof=detailed plain note task badge"`
	Title string `yaml:"title" validate:"required,min=1"`

	Detailed *DetailedFields `yaml:",inline,omitempty"`
	Note     *NoteFields     `yaml:",inline,omitempty"`
	Task     *TaskFields     `yaml:",inline,omitempty"`
	Badge    *BadgeFields    `yaml:",inline,omitempty"`
}

// DetailedFields carries the payload for kind "detailed".
type DetailedFields struct {
	Value   string `yaml:"value" validate:"required"`
	Message string `yaml:"message" validate:"required"`
	Tint    string `yaml:"tint" validate:"required,tint_name"`
}

// NoteFields carries the payload for kind "note".
type NoteFields struct {
	Message string `yaml:"message" validate:"required"`
}

// TaskFields carries the payload for kind "task".
type TaskFields struct {
	Message     string `yaml:"message" validate:"required"`
	ButtonLabel string `yaml:"button_label" validate:"required"`
}

// BadgeFields carries the payload for kind "badge".
type BadgeFields struct {
	Icon string `yaml:"icon" validate:"required"`
	Tint string `yaml:"tint" validate:"required,tint_name"`
}

// UnmarshalYAML customises entry decoding so kind-specific payloads populate
// without field conflicts. Unknown kinds decode with all payloads nil and are
// rejected by validation, not here.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	type baseEntry struct {
		Kind  string `yaml:"kind"`
		Title string `yaml:"title"`
	}

	var base baseEntry
	if err := value.Decode(&base); err != nil {
		return err
	}

	e.Kind = base.Kind
	e.Title = base.Title
	e.Detailed = nil
	e.Note = nil
	e.Task = nil
	e.Badge = nil

	switch base.Kind {
	case "detailed":
		var fields DetailedFields
		if err := value.Decode(&fields); err != nil {
			return err
		}
		e.Detailed = &fields
	case "note":
		var fields NoteFields
		if err := value.Decode(&fields); err != nil {
			return err
		}
		e.Note = &fields
	case "task":
		var fields TaskFields
		if err := value.Decode(&fields); err != nil {
			return err
		}
		e.Task = &fields
	case "badge":
		var fields BadgeFields
		if err := value.Decode(&fields); err != nil {
			return err
		}
		e.Badge = &fields
	}

	return nil
}
