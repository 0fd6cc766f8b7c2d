package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/colorwell/internal/colorbutton"
	"github.com/young1lin/colorwell/internal/config"
	"github.com/young1lin/colorwell/internal/palette"
)

// Model represents the application state
type Model struct {
	button *colorbutton.Button
	events *outbox

	// Config
	watcher    config.WatcherInterface
	configPath string

	// Input
	keys      keyMap
	panelKeys panelKeyMap
	help      help.Model
	pressed   bool
	nav       navCursor
	panel     panel

	// State
	status   string
	err      error
	width    int
	quitting bool

	// Styles
	styles Styles
}

// outbox collects notifications the button raises while Update is running.
// They are applied before Update returns.
type outbox struct {
	msgs []tea.Msg
}

// ColorSelected implements colorbutton.Listener
func (o *outbox) ColorSelected(_ *colorbutton.Button, c palette.Color) {
	o.msgs = append(o.msgs, ColorSelectedMsg{Color: c})
}

// OpenPanel implements colorbutton.PanelOpener
func (o *outbox) OpenPanel(req colorbutton.PanelRequest) {
	o.msgs = append(o.msgs, PanelRequestedMsg{Request: req})
}

func (o *outbox) take() []tea.Msg {
	msgs := o.msgs
	o.msgs = nil
	return msgs
}

// Styles contains the Lipgloss styles for the UI
type Styles struct {
	Border   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
}

// DefaultStyles returns the default UI styles
func DefaultStyles() Styles {
	var styles Styles

	// Color palette
	primaryColor := lipgloss.Color("86")    // Green
	secondaryColor := lipgloss.Color("239") // Grey
	errorColor := lipgloss.Color("196")     // Red

	// Popover border
	styles.Border = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor)

	styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	styles.Subtitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243"))

	styles.Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	styles.Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	styles.Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	styles.Error = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	styles.Prompt = lipgloss.NewStyle().
		Foreground(primaryColor)

	return styles
}

// NewModel creates a Model whose button is configured from cfg. Extra
// options are applied after the ones derived from cfg.
func NewModel(cfg *config.Config, opts ...colorbutton.Option) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	lc, err := cfg.Layout()
	if err != nil {
		return Model{}, err
	}
	def, custom, err := cfg.Swatches()
	if err != nil {
		return Model{}, err
	}
	initial, err := cfg.InitialColor()
	if err != nil {
		return Model{}, err
	}

	events := &outbox{}
	all := []colorbutton.Option{
		colorbutton.WithListener(events),
		colorbutton.WithPanel(events),
		colorbutton.WithColor(initial),
		colorbutton.WithDefaultColor(def),
		colorbutton.WithCustomColor(custom),
		colorbutton.WithTitles(cfg.GetDefaultTitle(), cfg.GetCustomTitle()),
		colorbutton.WithAlphaChannel(cfg.UsesAlpha()),
	}
	button, err := colorbutton.New(lc, append(all, opts...)...)
	if err != nil {
		return Model{}, err
	}

	return Model{
		button:    button,
		events:    events,
		keys:      defaultKeyMap(),
		panelKeys: defaultPanelKeyMap(),
		help:      help.New(),
		styles:    DefaultStyles(),
	}, nil
}

// WithWatcher returns a copy of m that applies reloads from w
func (m Model) WithWatcher(w config.WatcherInterface, path string) Model {
	m.watcher = w
	m.configPath = path
	return m
}

// Button returns the color button driven by the model
func (m Model) Button() *colorbutton.Button {
	return m.button
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForConfig(m.watcher)
}

// waitForConfig returns a command that blocks until the watcher delivers the
// next configuration or error
func waitForConfig(w config.WatcherInterface) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Configs():
			if !ok {
				return nil
			}
			return ConfigReloadedMsg{Config: cfg}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}
