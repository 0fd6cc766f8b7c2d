package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/colorwell/internal/palette"
	"github.com/young1lin/colorwell/internal/render"
	"github.com/young1lin/colorwell/internal/selection"
)

// View renders the UI. Line positions must agree with the constants in
// mouse.go.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		m.renderHeader(),
		"",
		m.renderButton(),
	}

	if m.button.IsOpen() {
		lines = append(lines, "", indent(m.renderPopover(), popoverX))
	}

	if m.panel.active {
		lines = append(lines, "", indent(m.renderPanel(), buttonX))
	}

	lines = append(lines, "", indent(m.renderStatus(), buttonX))

	if m.panel.active {
		lines = append(lines, indent(m.help.View(m.panelKeys), buttonX))
	} else {
		lines = append(lines, indent(m.help.View(m.keys), buttonX))
	}

	return strings.Join(lines, "\n")
}

// renderHeader renders the single header line
func (m Model) renderHeader() string {
	source := "built-in palette"
	if m.configPath != "" {
		source = m.configPath
	}
	header := m.styles.Title.Render("colorwell") + " " + m.styles.Subtitle.Render(source)
	if m.width > 0 && lipgloss.Width(header) > m.width {
		header = m.styles.Title.Render("colorwell")
	}
	return header
}

// renderButton renders the swatch that opens the popover, followed by the
// current color
func (m Model) renderButton() string {
	c := m.button.Color()
	fg := palette.White
	if c.PrefersDarkForeground() {
		fg = palette.Black
	}
	glyph := "▾"
	if m.button.IsOpen() {
		glyph = "▴"
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg.Hex())).
		Render(render.PadCenter(glyph, buttonWidth))

	return strings.Repeat(" ", buttonX) + swatch + " " + m.styles.Value.Render(c.Normalized().String())
}

// renderPopover renders the popover canvas inside its border
func (m Model) renderPopover() string {
	state := selection.State{}
	if s := m.button.Session(); s != nil {
		state = s.State()
	}
	canvas := render.Popover(render.PopoverView{
		Geometry:     m.button.Geometry(),
		Config:       m.button.Config(),
		Selected:     state,
		Current:      m.button.Color(),
		DefaultColor: m.button.DefaultColor(),
		CustomColor:  m.button.CustomColor(),
		DefaultTitle: m.button.DefaultTitle(),
		CustomTitle:  m.button.CustomTitle(),
	})
	return m.styles.Border.Render(canvas.String())
}

// renderPanel renders the hex prompt
func (m Model) renderPanel() string {
	out := m.styles.Prompt.Render(m.panel.input.View())
	if m.panel.err != nil {
		out += "\n" + m.styles.Error.Render(m.panel.err.Error())
	}
	return out
}

// renderStatus renders the last outcome or error
func (m Model) renderStatus() string {
	if m.err != nil {
		return m.styles.Error.Render("Error: " + m.err.Error())
	}
	if m.status == "" {
		return m.styles.Muted.Render("click the swatch to choose a color")
	}
	return m.styles.Label.Render(m.status)
}

// indent shifts every line of s right by n cells
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
