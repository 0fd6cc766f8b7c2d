package palette

// Named colors used by the built-in palette. The neutral tones are kept in
// single-channel form.
var (
	White     = Gray(1)
	LightGray = Gray(2.0 / 3.0)
	MidGray   = Gray(0.5)
	DarkGray  = Gray(1.0 / 3.0)
	Black     = Gray(0)

	Red     = RGB(1, 0, 0)
	Magenta = RGB(1, 0, 1)
	Purple  = RGB(0.5, 0, 0.5)
	Orange  = RGB(1, 0.5, 0)
	Yellow  = RGB(1, 1, 0)
	Blue    = RGB(0, 0, 1)
	Cyan    = RGB(0, 1, 1)
	Green   = RGB(0, 1, 0)
)

// DefaultGrid returns a fresh copy of the built-in 3x4 palette.
//
//	white  gray     dark gray  black
//	red    magenta  purple     orange
//	yellow blue     cyan       green
func DefaultGrid() [][]Color {
	return [][]Color{
		{White, MidGray, DarkGray, Black},
		{Red, Magenta, Purple, Orange},
		{Yellow, Blue, Cyan, Green},
	}
}

// DefaultColor is the initial color offered by the default menu row
func DefaultColor() Color {
	return Black
}

// DefaultCustomColor is the initial color offered by the custom menu row
func DefaultCustomColor() Color {
	return Magenta
}

// Clone returns a deep copy of a color grid
func Clone(grid [][]Color) [][]Color {
	if grid == nil {
		return nil
	}
	out := make([][]Color, len(grid))
	for i, row := range grid {
		out[i] = append([]Color(nil), row...)
	}
	return out
}

// Contains reports whether any color in the grid is Equal to c
func Contains(grid [][]Color, c Color) bool {
	for _, row := range grid {
		for _, item := range row {
			if item.Equal(c) {
				return true
			}
		}
	}
	return false
}
