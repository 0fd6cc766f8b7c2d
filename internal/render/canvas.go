package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/palette"
)

// Cell is one terminal cell. Colors are lipgloss color strings; empty means
// the terminal default. A zero Rune marks the right half of a wide rune.
type Cell struct {
	Rune    rune
	FG      string
	BG      string
	Bold    bool
	Reverse bool
}

var blank = Cell{Rune: ' '}

// Canvas is a fixed-size grid of cells addressed in layout units, one unit
// per terminal cell
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas returns a blank canvas
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i] = blank
	}
	return c
}

// CanvasFor returns a blank canvas large enough to hold size
func CanvasFor(size layout.Size) *Canvas {
	return NewCanvas(int(math.Ceil(size.Width)), int(math.Ceil(size.Height)))
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells
func (c *Canvas) Height() int { return c.height }

// At returns the cell at (x, y). Out-of-range positions return a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return blank
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) set(x, y int, cell Cell) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell
}

// cellSpan returns the cells whose centers lie inside [lo, hi]
func cellSpan(lo, hi float64) (int, int) {
	return int(math.Ceil(lo - 0.5)), int(math.Floor(hi - 0.5))
}

// FillRect paints the background of every cell whose center lies in r and
// clears its rune
func (c *Canvas) FillRect(r layout.Rect, bg palette.Color) {
	x0, x1 := cellSpan(r.X, r.MaxX())
	y0, y1 := cellSpan(r.Y, r.MaxY())
	hex := bg.Hex()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.set(x, y, Cell{Rune: ' ', BG: hex})
		}
	}
}

// Highlight sets the reverse attribute on every cell whose center lies in r
func (c *Canvas) Highlight(r layout.Rect) {
	x0, x1 := cellSpan(r.X, r.MaxX())
	y0, y1 := cellSpan(r.Y, r.MaxY())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if x < 0 || x >= c.width || y < 0 || y >= c.height {
				continue
			}
			c.cells[y*c.width+x].Reverse = true
		}
	}
}

// Mark draws a glyph at the center cell of r in a tint that contrasts with bg
func (c *Canvas) Mark(r layout.Rect, glyph rune, bg palette.Color) {
	center := r.Center()
	x, y := int(math.Floor(center.X)), int(math.Floor(center.Y))
	if x >= int(math.Ceil(r.MaxX()-0.5)) {
		x--
	}
	if y >= int(math.Ceil(r.MaxY()-0.5)) {
		y--
	}
	fg := palette.White
	if bg.PrefersDarkForeground() {
		fg = palette.Black
	}
	c.set(x, y, Cell{Rune: glyph, FG: fg.Hex(), BG: bg.Hex(), Bold: true})
}

// Text writes s starting at (x, y), truncated to width cells. Wide runes take
// two cells. It returns the number of cells written.
func (c *Canvas) Text(x, y int, s string, width int, fg string, bold bool) int {
	s = Truncate(s, width)
	written := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		bg := c.At(x+written, y).BG
		c.set(x+written, y, Cell{Rune: r, FG: fg, BG: bg, Bold: bold})
		if rw == 2 {
			c.set(x+written+1, y, Cell{FG: fg, BG: bg, Bold: bold})
		}
		written += rw
	}
	return written
}

// style returns the lipgloss style used for a run of identical cells
func (cell Cell) style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if cell.FG != "" {
		s = s.Foreground(lipgloss.Color(cell.FG))
	}
	if cell.BG != "" {
		s = s.Background(lipgloss.Color(cell.BG))
	}
	if cell.Bold {
		s = s.Bold(true)
	}
	if cell.Reverse {
		s = s.Reverse(true)
	}
	return s
}

func (cell Cell) attrs() Cell {
	cell.Rune = 0
	return cell
}

// String renders the canvas, one line per row, grouping runs of cells that
// share attributes into a single styled segment
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		row := c.cells[y*c.width : (y+1)*c.width]
		for start := 0; start < len(row); {
			end := start
			var run strings.Builder
			for end < len(row) && row[end].attrs() == row[start].attrs() {
				if row[end].Rune != 0 {
					run.WriteRune(row[end].Rune)
				}
				end++
			}
			line.WriteString(row[start].style().Render(run.String()))
			start = end
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
