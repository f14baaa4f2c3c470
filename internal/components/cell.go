package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goalboard/goalboard/internal/item"
)

// SlotID names one presentation slot within a cell.
type SlotID int

const (
	SlotTitle SlotID = iota
	SlotValue
	SlotMessage
	SlotButton
	SlotIcon
)

// Slot is an individually activatable presentation element. Slots start
// inactive and are only activated for capabilities the applied row actually
// supplies.
type Slot struct {
	active bool
	text   string
	style  lipgloss.Style
}

// Active reports whether the slot will be rendered.
func (s Slot) Active() bool { return s.active }

// Text returns the slot's content.
func (s Slot) Text() string { return s.text }

// Style returns the slot's effective style.
func (s Slot) Style() lipgloss.Style { return s.style }

// Render returns the styled slot content, or the empty string when inactive.
func (s Slot) Render() string {
	if !s.active {
		return ""
	}
	return s.style.Render(s.text)
}

// Cell is the presentation surface for a single board row. It holds one slot
// per capability trait and activates only the slots for which the applied
// row supplies data. Missing capabilities are a normal state; the matching
// slot simply stays inactive.
type Cell struct {
	theme  Theme
	slots  map[SlotID]Slot
	action func()
	width  int
}

// NewCell allocates a cell with every slot inactive.
func NewCell(theme Theme) *Cell {
	c := &Cell{theme: theme}
	c.reset()
	return c
}

func (c *Cell) reset() {
	c.slots = map[SlotID]Slot{
		SlotTitle:   {style: c.theme.Slots.Title},
		SlotValue:   {style: c.theme.Slots.Value},
		SlotMessage: {style: c.theme.Slots.Message},
		SlotButton:  {style: c.theme.Slots.Button},
		SlotIcon:    {style: c.theme.Slots.Icon},
	}
	c.action = nil
}

// Apply configures the cell from whatever capabilities the supplied row
// implements. It never inspects the row's union tag; dispatch is purely by
// capability presence. Applying the same row twice leaves the cell in the
// same state, since every application starts from a full reset.
func (c *Cell) Apply(row any) {
	c.reset()

	if v, ok := row.(item.Titled); ok {
		c.activate(SlotTitle, v.Title())
	}
	if v, ok := row.(item.Valued); ok {
		c.activate(SlotValue, v.Value())
	}
	if v, ok := row.(item.Messaged); ok {
		c.activate(SlotMessage, v.Message())
	}
	if v, ok := row.(item.Iconed); ok {
		c.activate(SlotIcon, v.Icon())
	}
	if v, ok := row.(item.Labeled); ok {
		c.activate(SlotButton, v.ButtonLabel())
	}
	if v, ok := row.(item.Actionable); ok {
		c.action = v.Action()
	}
	if v, ok := row.(item.Tinted); ok {
		c.ApplyTint(SlotValue, v.Tint())
	}
}

func (c *Cell) activate(id SlotID, text string) {
	slot := c.slots[id]
	slot.active = true
	slot.text = text
	c.slots[id] = slot
}

// ApplyTint overrides the foreground colour of one slot with the themed
// colour for the tint token. The value slot is the designated target; custom
// configure routines may reassign the tint to another slot.
func (c *Cell) ApplyTint(id SlotID, tint item.Tint) {
	color, ok := c.theme.TintColor(tint)
	if !ok {
		return
	}
	slot := c.slots[id]
	slot.style = slot.style.Foreground(color)
	c.slots[id] = slot
}

// Slot returns the current state of the named slot.
func (c *Cell) Slot(id SlotID) Slot {
	return c.slots[id]
}

// HasAction reports whether a callback is attached to the button slot.
func (c *Cell) HasAction() bool {
	return c.action != nil
}

// Trigger invokes the attached action callback, if any, and reports whether
// one ran. The callback receives no arguments; threading is the caller's
// concern.
func (c *Cell) Trigger() bool {
	if c.action == nil {
		return false
	}
	c.action()
	return true
}

// SetWidth constrains the rendered width. Zero means unconstrained.
func (c *Cell) SetWidth(width int) {
	c.width = width
}

// View renders the cell: icon and title on the first line with the value
// pushed to the right edge, then the message, then the button.
func (c *Cell) View() string {
	var lines []string

	head := c.renderHead()
	if head != "" {
		lines = append(lines, head)
	}
	if msg := c.slots[SlotMessage]; msg.Active() {
		lines = append(lines, msg.Render())
	}
	if btn := c.slots[SlotButton]; btn.Active() {
		lines = append(lines, btn.Render())
	}

	return strings.Join(lines, "\n")
}

func (c *Cell) renderHead() string {
	var left strings.Builder
	if icon := c.slots[SlotIcon]; icon.Active() {
		left.WriteString(icon.Render())
		left.WriteString(" ")
	}
	if title := c.slots[SlotTitle]; title.Active() {
		left.WriteString(title.Render())
	}

	value := c.slots[SlotValue]
	if !value.Active() {
		return left.String()
	}
	if c.width <= 0 {
		if left.Len() == 0 {
			return value.Render()
		}
		return left.String() + "  " + value.Render()
	}

	gap := c.width - lipgloss.Width(left.String()) - lipgloss.Width(value.Render())
	if gap < 2 {
		gap = 2
	}
	return left.String() + strings.Repeat(" ", gap) + value.Render()
}
