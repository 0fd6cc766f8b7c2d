// Package palette provides the color value used by the color well, its
// parsing rules and the equality policy shared by every component.
package palette

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a color string cannot be parsed
var ErrInvalidColor = errors.New("invalid color")

// Model identifies how a color stores its channels
type Model int

const (
	// ModelRGB stores red, green and blue channels
	ModelRGB Model = iota
	// ModelGray stores a single white channel
	ModelGray
)

// String returns the model name
func (m Model) String() string {
	if m == ModelGray {
		return "gray"
	}
	return "rgb"
}

// Color is an immutable color value with an alpha channel.
// Channel values are in the range [0, 1].
type Color struct {
	model Model
	// For ModelGray only r is meaningful and holds the white level.
	r, g, b float64
	a       float64
}

// RGBA returns a three-channel color
func RGBA(r, g, b, a float64) Color {
	return Color{model: ModelRGB, r: r, g: g, b: b, a: a}
}

// RGB returns an opaque three-channel color
func RGB(r, g, b float64) Color {
	return RGBA(r, g, b, 1)
}

// GrayA returns a single-channel color
func GrayA(white, a float64) Color {
	return Color{model: ModelGray, r: white, a: a}
}

// Gray returns an opaque single-channel color
func Gray(white float64) Color {
	return GrayA(white, 1)
}

// FromColorful converts a go-colorful color into an opaque Color
func FromColorful(c colorful.Color) Color {
	return RGB(c.R, c.G, c.B)
}

// Model reports the channel layout of the color
func (c Color) Model() Model {
	return c.model
}

// Alpha returns the alpha channel
func (c Color) Alpha() float64 {
	return c.a
}

// Normalized expands a single-channel color into the equivalent three-channel
// color with the same alpha. Three-channel colors are returned unchanged.
func (c Color) Normalized() Color {
	if c.model == ModelGray {
		return RGBA(c.r, c.r, c.r, c.a)
	}
	return c
}

// Components returns the normalized red, green, blue and alpha channels
func (c Color) Components() (r, g, b, a float64) {
	n := c.Normalized()
	return n.r, n.g, n.b, n.a
}

// Equal reports whether two colors render identically. Single-channel colors
// are normalized to three channels before the channel values are compared, so
// Gray(1) equals RGB(1, 1, 1).
func (c Color) Equal(other Color) bool {
	r1, g1, b1, a1 := c.Components()
	r2, g2, b2, a2 := other.Components()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// Colorful returns the normalized, clamped color without alpha
func (c Color) Colorful() colorful.Color {
	r, g, b, _ := c.Components()
	return colorful.Color{R: r, G: g, B: b}.Clamped()
}

// Hex returns the color as #rrggbb, dropping alpha
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Brightness returns the HSV value of the color in [0, 1]
func (c Color) Brightness() float64 {
	_, _, v := c.Colorful().Hsv()
	return v
}

// PrefersDarkForeground reports whether glyphs drawn on top of this color
// should use a dark tint. Bright or mostly transparent backgrounds get the
// dark tint.
func (c Color) PrefersDarkForeground() bool {
	return c.Brightness() >= 0.5 || c.a <= 0.5
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Components()
	ca = clamp01(ca)
	a = uint32(ca*0xffff + 0.5)
	r = uint32(clamp01(cr)*ca*0xffff + 0.5)
	g = uint32(clamp01(cg)*ca*0xffff + 0.5)
	b = uint32(clamp01(cb)*ca*0xffff + 0.5)
	return r, g, b, a
}

// String returns a parseable representation of the color. Parse(c.String())
// is Equal to c: colors whose channels are exact 8-bit steps use hex, other
// three-channel colors use rgb(r, g, b[, a]).
func (c Color) String() string {
	if c.model == ModelGray {
		if c.a == 1 {
			return fmt.Sprintf("gray(%s)", formatFloat(c.r))
		}
		return fmt.Sprintf("gray(%s, %s)", formatFloat(c.r), formatFloat(c.a))
	}
	if !is8bit(c.r) || !is8bit(c.g) || !is8bit(c.b) {
		if c.a == 1 {
			return fmt.Sprintf("rgb(%s, %s, %s)", formatFloat(c.r), formatFloat(c.g), formatFloat(c.b))
		}
		return fmt.Sprintf("rgb(%s, %s, %s, %s)", formatFloat(c.r), formatFloat(c.g), formatFloat(c.b), formatFloat(c.a))
	}
	if c.a == 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s/%s", c.Hex(), formatFloat(c.a))
}

// Parse reads a color from one of the following forms:
//
//	#rrggbb, #rgb            three-channel hex
//	#rrggbb/0.5              hex with alpha
//	red, navy, ...           SVG 1.1 color names
//	gray(0.5), gray(0.5, 1)  single-channel white level with optional alpha
//	rgb(1, 0.5, 0[, 1])      three channels with optional alpha
func Parse(s string) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(str, "gray(") || strings.HasPrefix(str, "grey(") {
		values, err := parseArgs(str, 1, 2)
		if err != nil {
			return Color{}, err
		}
		if len(values) == 1 {
			return Gray(values[0]), nil
		}
		return GrayA(values[0], values[1]), nil
	}

	if strings.HasPrefix(str, "rgb(") {
		values, err := parseArgs(str, 3, 4)
		if err != nil {
			return Color{}, err
		}
		if len(values) == 3 {
			return RGB(values[0], values[1], values[2]), nil
		}
		return RGBA(values[0], values[1], values[2], values[3]), nil
	}

	if strings.HasPrefix(str, "#") {
		alpha := 1.0
		if hex, a, ok := strings.Cut(str, "/"); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
			if err != nil || v < 0 || v > 1 {
				return Color{}, fmt.Errorf("%w: bad alpha in %q", ErrInvalidColor, s)
			}
			str, alpha = strings.TrimSpace(hex), v
		}
		c, err := colorful.Hex(str)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return RGBA(snap8(c.R), snap8(c.G), snap8(c.B), alpha), nil
	}

	if named, ok := colornames.Map[str]; ok {
		return RGB(float64(named.R)/255, float64(named.G)/255, float64(named.B)/255), nil
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParse is like Parse but panics on error
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseArgs reads the channel list of a gray(...) or rgb(...) form. Every
// channel must lie in [0, 1].
func parseArgs(s string, lo, hi int) ([]float64, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: unterminated %q", ErrInvalidColor, s)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	if len(args) < lo || len(args) > hi {
		return nil, fmt.Errorf("%w: %q takes %d or %d arguments", ErrInvalidColor, s, lo, hi)
	}

	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil || v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: %q: channel out of range", ErrInvalidColor, s)
		}
		values = append(values, v)
	}
	return values, nil
}

// snap8 rounds v to the nearest 8-bit step, computed as n/255 so that hex
// input and output agree exactly
func snap8(v float64) float64 {
	return math.Round(v*255) / 255
}

func is8bit(v float64) bool {
	return v >= 0 && v <= 1 && snap8(v) == v
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
