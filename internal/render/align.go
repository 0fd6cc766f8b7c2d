// Package render draws popover geometry onto a grid of terminal cells
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Measure returns the display width of a string
// This correctly handles emoji and wide characters (e.g., CJK)
func Measure(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight adds padding to the right of a string
func PadRight(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	padding := width - currentWidth
	return s + strings.Repeat(" ", padding)
}

// PadCenter centers a string within the given width
func PadCenter(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	padding := width - currentWidth
	leftPadding := padding / 2
	rightPadding := padding - leftPadding
	return strings.Repeat(" ", leftPadding) + s + strings.Repeat(" ", rightPadding)
}

// Truncate cuts a string at the given display width. Labels are never
// wrapped, so anything past the width is dropped.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Measure(s) <= width {
		return s
	}
	var b strings.Builder
	currentWidth := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if currentWidth+rw > width {
			break
		}
		b.WriteRune(r)
		currentWidth += rw
	}
	return b.String()
}
