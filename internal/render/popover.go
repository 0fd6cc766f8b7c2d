package render

import (
	"math"

	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/palette"
	"github.com/young1lin/colorwell/internal/selection"
)

// Glyphs drawn on top of swatches
const (
	CurrentGlyph = '•'
	HoverGlyph   = '◆'
)

// PopoverView is everything needed to draw one frame of the popover
type PopoverView struct {
	Geometry layout.Geometry
	Config   layout.Config

	// Selected is the region under the pointer
	Selected selection.State
	// Current is the color the button holds
	Current palette.Color

	DefaultColor palette.Color
	CustomColor  palette.Color
	DefaultTitle string
	CustomTitle  string

	// LabelFG is the label text color; empty uses the terminal default
	LabelFG string
}

// Popover draws the grid, the menu rows and the selection feedback
func Popover(v PopoverView) *Canvas {
	g := v.Geometry
	c := CanvasFor(g.Size)

	for row := 0; row < g.Rows; row++ {
		for column := 0; column < g.Columns; column++ {
			r, _ := g.CellRect(row, column)
			color, _ := v.Config.ColorAt(row, column)
			c.FillRect(r, color)
			switch {
			case v.Selected == selection.Cell(row, column):
				c.Mark(r, HoverGlyph, color)
			case color.Equal(v.Current):
				c.Mark(r, CurrentGlyph, color)
			}
		}
	}

	hMargin := v.Config.HorizontalMargin
	if g.HasDefaultRow {
		c.menuRow(g.DefaultSwatch, g.DefaultLabel, hMargin, v.DefaultColor, v.DefaultTitle, v.LabelFG)
		if v.Selected.Kind == selection.DefaultColor {
			c.Mark(g.DefaultSwatch, HoverGlyph, v.DefaultColor)
			c.Highlight(labelLine(g.DefaultLabel, hMargin))
		}
	}
	if g.HasCustomRow {
		c.menuRow(g.CustomSwatch, g.CustomLabel, hMargin, v.CustomColor, v.CustomTitle, v.LabelFG)
		switch v.Selected.Kind {
		case selection.CustomColorSwatch:
			c.Mark(g.CustomSwatch, HoverGlyph, v.CustomColor)
		case selection.CustomColorPanelRequest:
			c.Highlight(labelLine(g.CustomLabel, hMargin))
		}
	}

	return c
}

// labelLine is the single text row of a label area, stopping short of the
// right margin
func labelLine(label layout.Rect, hMargin float64) layout.Rect {
	y := math.Floor(label.Center().Y)
	if label.Height >= 1 && y+1 > label.MaxY() {
		y = label.MaxY() - 1
	}
	width := max(label.Width-hMargin, 0)
	return layout.Rect{X: label.X, Y: y, Width: width, Height: 1}
}

func (c *Canvas) menuRow(swatch, label layout.Rect, hMargin float64, color palette.Color, title, fg string) {
	c.FillRect(swatch, color)
	line := labelLine(label, hMargin)
	x0, x1 := cellSpan(line.X, line.MaxX())
	y, _ := cellSpan(line.Y, line.MaxY())
	c.Text(x0, y, title, x1-x0+1, fg, false)
}
