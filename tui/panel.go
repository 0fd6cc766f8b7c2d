package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/colorwell/internal/colorbutton"
	"github.com/young1lin/colorwell/internal/palette"
)

// panel is the hex prompt that stands in for a full color picker
type panel struct {
	active bool
	token  colorbutton.PanelToken
	input  textinput.Model
	err    error
}

func (m Model) openPanel(req colorbutton.PanelRequest) (tea.Model, tea.Cmd) {
	inp := textinput.New()
	inp.Prompt = "color> "
	inp.Placeholder = "#rrggbb"
	if req.ShowsAlpha {
		inp.Placeholder = "#rrggbb/alpha"
	}
	inp.CharLimit = 32
	inp.SetValue(req.Initial.String())
	cmd := inp.Focus()

	m.panel = panel{active: true, token: req.Token, input: inp}
	return m, cmd
}

// handlePanelKey handles keyboard input while the prompt has focus
func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.panelKeys.Cancel):
		_ = m.button.CancelPanel(m.panel.token)
		m.panel = panel{}
		m.status = "picker cancelled"
		return m, nil

	case key.Matches(msg, m.panelKeys.Submit):
		c, err := palette.Parse(m.panel.input.Value())
		if err != nil {
			m.panel.err = err
			return m, nil
		}
		token := m.panel.token
		m.panel = panel{}
		if err := m.button.CompletePanel(token, c); err != nil {
			m.err = err
			return m, nil
		}
		return m.flush()
	}

	var cmd tea.Cmd
	m.panel.input, cmd = m.panel.input.Update(msg)
	m.panel.err = nil
	return m, cmd
}
