package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/young1lin/colorwell/internal/config"
	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/palette"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatal("Update() should return a Model")
	}
	return model
}

// fakeWatcher implements config.WatcherInterface with controllable channels
type fakeWatcher struct {
	configs chan *config.Config
	errs    chan error
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{configs: make(chan *config.Config, 1), errs: make(chan error, 1)}
}

func (w *fakeWatcher) Configs() <-chan *config.Config { return w.configs }
func (w *fakeWatcher) Errors() <-chan error           { return w.errs }
func (w *fakeWatcher) Close() error {
	close(w.configs)
	close(w.errs)
	return nil
}

func TestNewModel(t *testing.T) {
	model := newTestModel(t)

	if model.quitting {
		t.Error("NewModel().quitting should be false")
	}
	if model.button == nil {
		t.Fatal("NewModel().button should be set")
	}
	if model.button.IsOpen() {
		t.Error("popover should start closed")
	}
	if !model.button.Color().Equal(palette.White) {
		t.Errorf("initial color = %v, want white", model.button.Color())
	}
	if model.Init() != nil {
		t.Error("Init() without a watcher should return nil")
	}
}

func TestNewModelFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Palette.Initial = "#ff8000"
	cfg.Palette.Custom = "teal"
	cfg.Menu.DefaultTitle = "Automatic"
	cfg.Menu.Alpha = true

	model, err := NewModel(cfg)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	b := model.Button()
	if b.Color().Hex() != "#ff8000" {
		t.Errorf("Color() = %v, want #ff8000", b.Color())
	}
	if b.CustomColor().Hex() != "#008080" {
		t.Errorf("CustomColor() = %v, want teal", b.CustomColor())
	}
	if b.DefaultTitle() != "Automatic" || b.CustomTitle() != "Custom Color" {
		t.Errorf("titles = %q, %q", b.DefaultTitle(), b.CustomTitle())
	}
	if !b.UsesAlphaChannel() {
		t.Error("UsesAlphaChannel() should follow the config")
	}
}

func TestNewModelNilConfig(t *testing.T) {
	model, err := NewModel(nil)
	if err != nil {
		t.Fatalf("NewModel(nil) error = %v", err)
	}
	if model.Button().Config().Rows() != 3 {
		t.Error("NewModel(nil) should use the built-in palette")
	}
}

func TestNewModelInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid.BoxHeight = 0
	if _, err := NewModel(cfg); !errors.Is(err, layout.ErrInvalidConfig) {
		t.Errorf("NewModel() error = %v, want ErrInvalidConfig", err)
	}

	cfg = config.DefaultConfig()
	cfg.Palette.Default = "nope"
	if _, err := NewModel(cfg); !errors.Is(err, palette.ErrInvalidColor) {
		t.Errorf("NewModel() error = %v, want ErrInvalidColor", err)
	}
}

func TestWaitForConfig(t *testing.T) {
	if waitForConfig(nil) != nil {
		t.Error("waitForConfig(nil) should return nil")
	}

	w := newFakeWatcher()
	cfg := config.DefaultConfig()
	w.configs <- cfg
	msg := waitForConfig(w)()
	reloaded, ok := msg.(ConfigReloadedMsg)
	if !ok || reloaded.Config != cfg {
		t.Errorf("waitForConfig() = %#v, want ConfigReloadedMsg", msg)
	}

	w.errs <- errors.New("boom")
	msg = waitForConfig(w)()
	if e, ok := msg.(ConfigErrorMsg); !ok || e.Err.Error() != "boom" {
		t.Errorf("waitForConfig() = %#v, want ConfigErrorMsg", msg)
	}

	w.Close()
	if msg := waitForConfig(w)(); msg != nil {
		t.Errorf("waitForConfig() after Close = %#v, want nil", msg)
	}
}

func TestWithWatcher(t *testing.T) {
	w := newFakeWatcher()
	model := newTestModel(t).WithWatcher(w, "/tmp/colorwell.yaml")
	if model.configPath != "/tmp/colorwell.yaml" {
		t.Errorf("configPath = %q", model.configPath)
	}
	if model.Init() == nil {
		t.Error("Init() with a watcher should wait for reloads")
	}
}

func TestDefaultStyles(t *testing.T) {
	styles := DefaultStyles()
	if styles.Border.Render("x") == "" {
		t.Error("Border style should render")
	}
	if styles.Error.Render("x") == "" {
		t.Error("Error style should render")
	}
}
