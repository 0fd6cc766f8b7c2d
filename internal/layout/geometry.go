package layout

import "fmt"

// epsilon absorbs floating point drift when comparing derived edges
const epsilon = 1e-9

// Geometry is the absolute layout of every interactive region of the popover.
// It is derived from a Config by Compute and never mutated afterwards.
type Geometry struct {
	Size Size

	Rows    int
	Columns int

	// MenuRowHeight is the height of each menu row, present or not.
	MenuRowHeight float64
	// HalfBorder is the outward expansion applied to cells when hit-testing.
	HalfBorder float64

	HasDefaultRow bool
	DefaultRow    Rect
	DefaultSwatch Rect
	DefaultLabel  Rect

	HasCustomRow bool
	CustomRow    Rect
	CustomSwatch Rect
	CustomLabel  Rect

	cells []Rect
}

// gridExtent returns the span of n boxes of the given size separated by gap.
// An empty grid contributes nothing.
func gridExtent(n int, box, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*box + float64(n-1)*gap
}

// gridShape returns the rows and columns that take up space. A grid with no
// rows or no columns is empty on both axes.
func gridShape(cfg Config) (rows, columns int) {
	rows, columns = cfg.Rows(), cfg.Columns()
	if rows == 0 || columns == 0 {
		return 0, 0
	}
	return rows, columns
}

// PopoverSize returns the size of the popover needed to show cfg.
// It never fails; an empty grid contributes zero width and height.
func PopoverSize(cfg Config) Size {
	rows, columns := gridShape(cfg)
	height := gridExtent(rows, cfg.BoxHeight, cfg.VerticalBoxSpacing) + 2*cfg.VerticalMargin
	if cfg.UsesDefaultColor {
		height += cfg.MenuRowHeight()
	}
	if cfg.UsesCustomColor {
		height += cfg.MenuRowHeight()
	}

	width := gridExtent(columns, cfg.BoxWidth, cfg.HorizontalBoxSpacing) + 2*cfg.HorizontalMargin

	return Size{Width: max(width, 0), Height: max(height, 0)}
}

// gridTop is the Y coordinate of the first grid row
func gridTop(cfg Config) float64 {
	top := cfg.VerticalMargin
	if cfg.UsesDefaultColor {
		top += cfg.MenuRowHeight()
	}
	return top
}

// CellRect returns the rectangle of the grid box at (row, column).
// It does not check bounds.
func CellRect(cfg Config, row, column int) Rect {
	return Rect{
		X:      cfg.HorizontalMargin + float64(column)*(cfg.BoxWidth+cfg.HorizontalBoxSpacing),
		Y:      gridTop(cfg) + float64(row)*(cfg.BoxHeight+cfg.VerticalBoxSpacing),
		Width:  cfg.BoxWidth,
		Height: cfg.BoxHeight,
	}
}

// menuRow lays out a full-width menu row starting at top: the row itself, the
// swatch inset by the margins, and the label area to the right of the swatch.
func menuRow(cfg Config, width, top float64) (row, swatch, label Rect) {
	h := cfg.MenuRowHeight()
	row = Rect{X: 0, Y: top, Width: width, Height: h}
	swatch = Rect{X: cfg.HorizontalMargin, Y: top + cfg.VerticalMargin, Width: cfg.BoxWidth, Height: cfg.BoxHeight}
	labelX := 2*cfg.HorizontalMargin + cfg.BoxWidth
	label = Rect{X: labelX, Y: swatch.Y, Width: max(width-labelX, 0), Height: cfg.BoxHeight}
	return row, swatch, label
}

// Compute validates cfg and derives its Geometry
func Compute(cfg Config) (Geometry, error) {
	if err := cfg.Validate(); err != nil {
		return Geometry{}, err
	}

	size := PopoverSize(cfg)
	rows, columns := gridShape(cfg)
	g := Geometry{
		Size:          size,
		Rows:          rows,
		Columns:       columns,
		MenuRowHeight: cfg.MenuRowHeight(),
		HalfBorder:    cfg.BoxBorderWidth / 2,
		HasDefaultRow: cfg.UsesDefaultColor,
		HasCustomRow:  cfg.UsesCustomColor,
	}

	if cfg.UsesDefaultColor {
		g.DefaultRow, g.DefaultSwatch, g.DefaultLabel = menuRow(cfg, size.Width, 0)
	}
	if cfg.UsesCustomColor {
		g.CustomRow, g.CustomSwatch, g.CustomLabel = menuRow(cfg, size.Width, size.Height-g.MenuRowHeight)
	}

	if g.Rows > 0 && g.Columns > 0 {
		g.cells = make([]Rect, 0, g.Rows*g.Columns)
		for row := 0; row < g.Rows; row++ {
			for column := 0; column < g.Columns; column++ {
				g.cells = append(g.cells, CellRect(cfg, row, column))
			}
		}
	}

	return g, nil
}

// CellRect returns the rectangle of the cell at (row, column)
func (g Geometry) CellRect(row, column int) (Rect, bool) {
	if row < 0 || row >= g.Rows || column < 0 || column >= g.Columns {
		return Rect{}, false
	}
	return g.cells[row*g.Columns+column], true
}

// HitRect returns the cell rectangle expanded by half the border width so the
// border itself counts as part of the cell.
func (g Geometry) HitRect(row, column int) (Rect, bool) {
	r, ok := g.CellRect(row, column)
	if !ok {
		return Rect{}, false
	}
	return r.Inset(g.HalfBorder), true
}

// Bounds returns the popover rectangle at the origin
func (g Geometry) Bounds() Rect {
	return Rect{Width: g.Size.Width, Height: g.Size.Height}
}

// Check verifies that no menu row overlaps a grid cell and that every cell
// lies inside the popover.
func (g Geometry) Check() error {
	bounds := g.Bounds().Inset(epsilon)
	for i, cell := range g.cells {
		row, column := i/g.Columns, i%g.Columns
		if g.HasDefaultRow && g.DefaultRow.Overlaps(cell) {
			return fmt.Errorf("default row overlaps cell (%d, %d)", row, column)
		}
		if g.HasCustomRow && g.CustomRow.Overlaps(cell) {
			return fmt.Errorf("custom row overlaps cell (%d, %d)", row, column)
		}
		if !bounds.Contains(Point{cell.X, cell.Y}) || !bounds.Contains(Point{cell.MaxX(), cell.MaxY()}) {
			return fmt.Errorf("cell (%d, %d) lies outside the popover", row, column)
		}
	}
	if g.HasDefaultRow && g.HasCustomRow && g.DefaultRow.Overlaps(g.CustomRow) {
		return fmt.Errorf("default and custom rows overlap")
	}
	return nil
}
