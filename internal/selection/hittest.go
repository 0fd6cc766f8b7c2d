package selection

import "github.com/young1lin/colorwell/internal/layout"

// HitTest resolves p against g. Menu rows take priority over the grid; grid
// cells are tested in row-major order with their borders included, and the
// first match wins. Points outside the popover resolve to NoSelection.
func HitTest(g layout.Geometry, p layout.Point) State {
	if !g.Bounds().Contains(p) {
		return State{Kind: NoSelection}
	}

	if g.HasDefaultRow && g.DefaultRow.Contains(p) {
		return State{Kind: DefaultColor}
	}

	if g.HasCustomRow && g.CustomRow.Contains(p) {
		if g.CustomSwatch.Contains(p) {
			return State{Kind: CustomColorSwatch}
		}
		return State{Kind: CustomColorPanelRequest}
	}

	for row := 0; row < g.Rows; row++ {
		for column := 0; column < g.Columns; column++ {
			r, _ := g.HitRect(row, column)
			if r.Contains(p) {
				return Cell(row, column)
			}
		}
	}

	return State{Kind: NoSelection}
}
