package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/colorwell/internal/config"
	"github.com/young1lin/colorwell/internal/logging"
	"github.com/young1lin/colorwell/internal/selection"
)

// Update handles incoming messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case ColorSelectedMsg:
		m.status = fmt.Sprintf("selected %s (%s)", msg.Color.Normalized(), m.button.LastSelection())
		m.err = nil
		return m, nil

	case PanelRequestedMsg:
		return m.openPanel(msg.Request)

	case ConfigReloadedMsg:
		m = m.applyConfig(msg.Config)
		return m, waitForConfig(m.watcher)

	case ConfigErrorMsg:
		m.err = msg.Err
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.panel.active {
		return m.handlePanelKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.button.IsOpen() {
			m.button.Close()
			m.nav = navCursor{}
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		s := m.button.Session()
		if s == nil {
			m.button.Open()
			return m, nil
		}
		if s.Phase() == selection.Hovering && s.State().Kind != selection.NoSelection {
			s.PointerUp()
			m.nav = navCursor{}
			return m.flush()
		}
		m.button.Close()
		m.nav = navCursor{}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1, 0), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1, 0), nil
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(0, -1), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(0, 1), nil
	}

	return m, nil
}

// flush applies the notifications the button raised during this update
func (m Model) flush() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, msg := range m.events.take() {
		next, cmd := m.Update(msg)
		m = next.(Model)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// applyConfig pushes a reloaded configuration into the button. A config that
// the layout engine rejects leaves the previous one in effect.
func (m Model) applyConfig(cfg *config.Config) Model {
	lc, err := cfg.Layout()
	if err == nil {
		err = m.button.SetConfig(lc)
	}
	if err != nil {
		m.err = err
		return m
	}
	if def, custom, err := cfg.Swatches(); err == nil {
		m.button.SetDefaultColor(def)
		m.button.SetCustomColor(custom)
	}
	m.button.SetTitles(cfg.GetDefaultTitle(), cfg.GetCustomTitle())
	m.button.SetAlphaChannel(cfg.UsesAlpha())
	m.nav = navCursor{}
	m.err = nil
	m.status = "configuration reloaded"
	logging.Logger().Info("configuration applied", "path", m.configPath)
	return m
}
