package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/selection"
)

// Screen positions, in cells. View draws the header on line 0, the button on
// buttonY and the popover border with its top-left corner at popoverX,
// popoverY.
const (
	buttonX     = 2
	buttonY     = 2
	buttonWidth = 6

	popoverX = buttonX
	popoverY = buttonY + 2

	// the canvas sits inside the one-cell border
	canvasX = popoverX + 1
	canvasY = popoverY + 1
)

// onButton reports whether the screen cell (x, y) is part of the button swatch
func onButton(x, y int) bool {
	return y == buttonY && x >= buttonX && x < buttonX+buttonWidth
}

// toPopover maps a screen cell to the center of the matching popover cell.
// inside is false when the cell is not covered by the popover canvas.
func (m Model) toPopover(x, y int) (p layout.Point, inside bool) {
	cx, cy := x-canvasX, y-canvasY
	size := m.button.Geometry().Size
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	inside = cx >= 0 && cy >= 0 && cx < w && cy < h
	return layout.Point{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}, inside
}

// handleMouseMsg turns terminal mouse events into button and session calls.
// Pressing the button toggles the popover; pressing anywhere else outside the
// popover dismisses it.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.panel.active {
			return m, nil
		}
		if onButton(msg.X, msg.Y) {
			if !m.button.Open() {
				m.button.Close()
			}
			m.nav = navCursor{}
			return m, nil
		}
		s := m.button.Session()
		if s == nil {
			return m, nil
		}
		p, inside := m.toPopover(msg.X, msg.Y)
		if !inside {
			m.button.Close()
			m.nav = navCursor{}
			return m, nil
		}
		m.pressed = true
		track(s, p, true)
		return m, nil

	case tea.MouseActionMotion:
		s := m.button.Session()
		if s == nil {
			return m, nil
		}
		p, inside := m.toPopover(msg.X, msg.Y)
		if !inside {
			if s.Phase() == selection.Hovering {
				s.PointerExit()
			}
			return m, nil
		}
		track(s, p, m.pressed)
		return m, nil

	case tea.MouseActionRelease:
		wasPressed := m.pressed
		m.pressed = false
		s := m.button.Session()
		if s == nil || !wasPressed {
			return m, nil
		}
		p, inside := m.toPopover(msg.X, msg.Y)
		if !inside {
			if s.Phase() == selection.Hovering {
				s.PointerExit()
			}
			return m, nil
		}
		track(s, p, false)
		s.PointerUp()
		m.nav = navCursor{}
		return m.flush()
	}

	return m, nil
}

// track enters the session if needed and moves it to p
func track(s *selection.Controller, p layout.Point, drag bool) {
	if s.Phase() == selection.Idle {
		s.PointerEnter()
	}
	if drag {
		s.PointerDrag(p)
		return
	}
	s.PointerMove(p)
}

// navCursor is the keyboard position inside the popover
type navCursor struct {
	active bool
	row    int
	col    int
}

// navRows lists the keyboard targets of the popover top to bottom: the default
// row, each grid row, then the custom swatch and label
func navRows(g layout.Geometry) [][]layout.Rect {
	var rows [][]layout.Rect
	if g.HasDefaultRow {
		rows = append(rows, []layout.Rect{g.DefaultRow})
	}
	for r := 0; r < g.Rows && g.Columns > 0; r++ {
		row := make([]layout.Rect, 0, g.Columns)
		for c := 0; c < g.Columns; c++ {
			rect, _ := g.CellRect(r, c)
			row = append(row, rect)
		}
		rows = append(rows, row)
	}
	if g.HasCustomRow {
		rows = append(rows, []layout.Rect{g.CustomSwatch, g.CustomLabel})
	}
	return rows
}

// moveCursor moves the keyboard cursor and points the session at the target
// under it. The first move lands on the first grid cell.
func (m Model) moveCursor(dRow, dCol int) Model {
	s := m.button.Session()
	if s == nil {
		return m
	}
	g := m.button.Geometry()
	rows := navRows(g)
	if len(rows) == 0 {
		return m
	}

	if !m.nav.active {
		m.nav = navCursor{active: true}
		if g.HasDefaultRow && len(rows) > 1 {
			m.nav.row = 1
		}
	} else {
		m.nav.row = clamp(m.nav.row+dRow, 0, len(rows)-1)
		m.nav.col = clamp(m.nav.col+dCol, 0, len(rows[m.nav.row])-1)
	}
	m.nav.col = clamp(m.nav.col, 0, len(rows[m.nav.row])-1)

	track(s, rows[m.nav.row][m.nav.col].Center(), false)
	return m
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
