// Package layout computes the geometry of the color popover.
// Coordinates are top-left origin with Y increasing downward.
package layout

import (
	"errors"
	"fmt"

	"github.com/young1lin/colorwell/internal/palette"
)

// ErrInvalidConfig is wrapped by every configuration validation error
var ErrInvalidConfig = errors.New("invalid grid configuration")

// Point is a location in popover-local coordinates
type Point struct {
	X, Y float64
}

// Size is a width and height pair
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. Edges are inclusive for hit-testing.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MaxX returns the right edge
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r or on its edges
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Inset returns r grown by d on every side (shrunk when d is negative)
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Config describes the popover: its colors, box dimensions, spacing and which
// menu rows are present. Sizes are in abstract units (points in a GUI, cells in
// a terminal).
type Config struct {
	// Colors is indexed [row][column] and must be rectangular.
	Colors [][]palette.Color

	BoxWidth  float64
	BoxHeight float64

	// Gaps between adjacent boxes.
	HorizontalBoxSpacing float64
	VerticalBoxSpacing   float64

	// Outer padding around the grid and inside the menu rows.
	HorizontalMargin float64
	VerticalMargin   float64

	UsesDefaultColor bool
	UsesCustomColor  bool

	BoxBorderWidth         float64
	SelectedBoxBorderWidth float64
}

// DefaultConfig returns the built-in palette laid out with 20x20 boxes and 4
// units of spacing, with both menu rows enabled.
func DefaultConfig() Config {
	return Config{
		Colors:                 palette.DefaultGrid(),
		BoxWidth:               20,
		BoxHeight:              20,
		HorizontalBoxSpacing:   4,
		VerticalBoxSpacing:     4,
		HorizontalMargin:       4,
		VerticalMargin:         4,
		UsesDefaultColor:       true,
		UsesCustomColor:        true,
		BoxBorderWidth:         1,
		SelectedBoxBorderWidth: 4,
	}
}

// Rows returns the number of grid rows
func (c Config) Rows() int {
	return len(c.Colors)
}

// Columns returns the number of grid columns
func (c Config) Columns() int {
	if len(c.Colors) == 0 {
		return 0
	}
	return len(c.Colors[0])
}

// MenuRowHeight returns the height of the default and custom menu rows
func (c Config) MenuRowHeight() float64 {
	return 2*c.VerticalMargin + c.BoxHeight
}

// ColorAt returns the grid color at (row, column)
func (c Config) ColorAt(row, column int) (palette.Color, bool) {
	if row < 0 || row >= c.Rows() || column < 0 || column >= c.Columns() {
		return palette.Color{}, false
	}
	return c.Colors[row][column], true
}

// Clone returns a copy that shares no memory with c
func (c Config) Clone() Config {
	c.Colors = palette.Clone(c.Colors)
	return c
}

// Validate checks the configuration contract: a rectangular color grid,
// positive box dimensions, non-negative spacing, margins and borders, and at
// least one selectable region.
func (c Config) Validate() error {
	columns := c.Columns()
	for i, row := range c.Colors {
		if len(row) != columns {
			return fmt.Errorf("%w: row %d has %d colors, want %d", ErrInvalidConfig, i, len(row), columns)
		}
	}

	if c.BoxWidth <= 0 || c.BoxHeight <= 0 {
		return fmt.Errorf("%w: box size %gx%g must be positive", ErrInvalidConfig, c.BoxWidth, c.BoxHeight)
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"horizontal box spacing", c.HorizontalBoxSpacing},
		{"vertical box spacing", c.VerticalBoxSpacing},
		{"horizontal margin", c.HorizontalMargin},
		{"vertical margin", c.VerticalMargin},
		{"box border width", c.BoxBorderWidth},
		{"selected box border width", c.SelectedBoxBorderWidth},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is %g", ErrInvalidConfig, f.name, f.value)
		}
	}

	if (c.Rows() == 0 || columns == 0) && !c.UsesDefaultColor && !c.UsesCustomColor {
		return fmt.Errorf("%w: empty grid and no menu rows leaves nothing selectable", ErrInvalidConfig)
	}

	return nil
}
