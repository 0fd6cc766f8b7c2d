// Package selection turns pointer input over the color popover into a
// highlighted target while hovering and a committed Outcome on release.
package selection

import (
	"fmt"

	"github.com/young1lin/colorwell/internal/palette"
)

// Kind identifies what the pointer is over
type Kind int

const (
	// NoSelection means the pointer is not over any target
	NoSelection Kind = iota
	// GridCell is a box in the color grid
	GridCell
	// DefaultColor is the default-color menu row
	DefaultColor
	// CustomColorSwatch is the swatch inside the custom-color menu row
	CustomColorSwatch
	// CustomColorPanelRequest is the custom-color menu row outside its swatch;
	// releasing here asks the owner to open a full color picker.
	CustomColorPanelRequest
)

var kindNames = map[Kind]string{
	NoSelection:             "none",
	GridCell:                "grid-cell",
	DefaultColor:            "default-color",
	CustomColorSwatch:       "custom-color",
	CustomColorPanelRequest: "custom-color-panel",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// State is the currently highlighted target. Row and Column are only
// meaningful for GridCell.
type State struct {
	Kind   Kind
	Row    int
	Column int
}

func (s State) String() string {
	if s.Kind == GridCell {
		return fmt.Sprintf("%s(%d,%d)", s.Kind, s.Row, s.Column)
	}
	return s.Kind.String()
}

// Cell returns the GridCell state for (row, column)
func Cell(row, column int) State {
	return State{Kind: GridCell, Row: row, Column: column}
}

// Phase is the lifecycle of one interaction session
type Phase int

const (
	// Idle means the pointer is outside the popover
	Idle Phase = iota
	// Hovering means the pointer is inside the popover and being tracked
	Hovering
)

func (p Phase) String() string {
	if p == Hovering {
		return "hovering"
	}
	return "idle"
}

// Outcome is the committed result of a session
type Outcome struct {
	Kind   Kind
	Row    int
	Column int
	// Color is the chosen color; see HasColor.
	Color palette.Color
}

// HasColor reports whether the outcome carries a color. A panel request
// carries none: the external picker supplies it later.
func (o Outcome) HasColor() bool {
	return o.Kind != NoSelection && o.Kind != CustomColorPanelRequest
}

func (o Outcome) String() string {
	if !o.HasColor() {
		return o.Kind.String()
	}
	if o.Kind == GridCell {
		return fmt.Sprintf("%s(%d,%d) %s", o.Kind, o.Row, o.Column, o.Color)
	}
	return fmt.Sprintf("%s %s", o.Kind, o.Color)
}

// OutcomeHandler receives committed outcomes
type OutcomeHandler interface {
	HandleOutcome(Outcome)
}

// OutcomeFunc adapts a function to OutcomeHandler
type OutcomeFunc func(Outcome)

// HandleOutcome calls f(o)
func (f OutcomeFunc) HandleOutcome(o Outcome) { f(o) }

// Swatches supplies the colors behind the menu rows at commit time
type Swatches interface {
	DefaultColor() palette.Color
	CustomColor() palette.Color
}

// RedrawFunc is called when the highlighted target changes
type RedrawFunc func(prev, next State)
