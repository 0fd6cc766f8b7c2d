package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/colorwell/internal/config"
	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/logging"
	"github.com/young1lin/colorwell/internal/palette"
	"github.com/young1lin/colorwell/tui"
)

// MockWatcher is a config.WatcherInterface that records Close
type MockWatcher struct {
	configs chan *config.Config
	errs    chan error
	closed  bool
}

func NewMockWatcher() *MockWatcher {
	return &MockWatcher{configs: make(chan *config.Config), errs: make(chan error)}
}

func (w *MockWatcher) Configs() <-chan *config.Config { return w.configs }
func (w *MockWatcher) Errors() <-chan error           { return w.errs }
func (w *MockWatcher) Close() error {
	w.closed = true
	return nil
}

// finalModel builds the model a ProgramRunner hands back on exit
func finalModel(t *testing.T, c palette.Color) tea.Model {
	t.Helper()
	m, err := tui.NewModel(nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	m.Button().SetColor(c)
	return m
}

func defaultLoader(string) (*config.Config, string, error) {
	return config.DefaultConfig(), "", nil
}

func TestRunDefaultConfig(t *testing.T) {
	var out bytes.Buffer
	runnerCalled := false
	watcherCalled := false

	deps := &AppDependencies{
		ProjectDir:   t.TempDir(),
		ConfigLoader: defaultLoader,
		WatcherCreator: func(string) (config.WatcherInterface, error) {
			watcherCalled = true
			return NewMockWatcher(), nil
		},
		ProgramRunner: func(p *tea.Program) (tea.Model, error) {
			runnerCalled = true
			if p == nil {
				t.Error("ProgramRunner got a nil program")
			}
			return finalModel(t, palette.Red), nil
		},
		Stdout: &out,
		Logger: logging.Nop(),
	}

	if err := run(deps); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !runnerCalled {
		t.Error("ProgramRunner should be called")
	}
	if watcherCalled {
		t.Error("built-in palette has no file to watch")
	}
	if got := out.String(); got != "#ff0000\n" {
		t.Errorf("stdout = %q, want #ff0000", got)
	}
}

func TestRunExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorwell.yaml")
	if err := os.WriteFile(path, []byte("palette:\n  initial: \"#00ff00\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher := NewMockWatcher()
	var watched string
	deps := &AppDependencies{
		ConfigPath: path,
		ConfigLoader: func(string) (*config.Config, string, error) {
			t.Error("ConfigLoader should not be used with an explicit path")
			return nil, "", nil
		},
		WatcherCreator: func(p string) (config.WatcherInterface, error) {
			watched = p
			return watcher, nil
		},
		ProgramRunner: func(*tea.Program) (tea.Model, error) {
			return nil, nil
		},
		Logger: logging.Nop(),
	}

	if err := run(deps); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if watched != path {
		t.Errorf("watched %q, want %q", watched, path)
	}
	if !watcher.closed {
		t.Error("watcher should be closed when the program exits")
	}
}

func TestRunNoWatch(t *testing.T) {
	deps := &AppDependencies{
		ConfigLoader: func(string) (*config.Config, string, error) {
			return config.DefaultConfig(), "/etc/colorwell.yaml", nil
		},
		WatcherCreator: func(string) (config.WatcherInterface, error) {
			t.Error("WatcherCreator should not be called with NoWatch")
			return nil, nil
		},
		ProgramRunner: func(*tea.Program) (tea.Model, error) { return nil, nil },
		Logger:        logging.Nop(),
		NoWatch:       true,
	}
	if err := run(deps); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRunWatcherErrorNotFatal(t *testing.T) {
	runnerCalled := false
	deps := &AppDependencies{
		ConfigLoader: func(string) (*config.Config, string, error) {
			return config.DefaultConfig(), "/etc/colorwell.yaml", nil
		},
		WatcherCreator: func(string) (config.WatcherInterface, error) {
			return nil, errors.New("watcher error")
		},
		ProgramRunner: func(*tea.Program) (tea.Model, error) {
			runnerCalled = true
			return nil, nil
		},
		Logger: logging.Nop(),
	}
	if err := run(deps); err != nil {
		t.Fatalf("run() error = %v, want the program to start without reload", err)
	}
	if !runnerCalled {
		t.Error("ProgramRunner should still be called")
	}
}

func TestRunLoadError(t *testing.T) {
	expected := errors.New("bad file")
	deps := &AppDependencies{
		ConfigLoader: func(string) (*config.Config, string, error) {
			return nil, "/etc/colorwell.yaml", expected
		},
		ProgramRunner: func(*tea.Program) (tea.Model, error) {
			t.Error("ProgramRunner should not run after a load error")
			return nil, nil
		},
		Logger: logging.Nop(),
	}
	if err := run(deps); !errors.Is(err, expected) {
		t.Errorf("run() error = %v, want %v", err, expected)
	}
}

func TestRunInvalidLayout(t *testing.T) {
	deps := &AppDependencies{
		ConfigLoader: func(string) (*config.Config, string, error) {
			cfg := config.DefaultConfig()
			cfg.Grid.BoxWidth = 0
			return cfg, "", nil
		},
		ProgramRunner: func(*tea.Program) (tea.Model, error) { return nil, nil },
		Logger:        logging.Nop(),
	}
	if err := run(deps); !errors.Is(err, layout.ErrInvalidConfig) {
		t.Errorf("run() error = %v, want ErrInvalidConfig", err)
	}
}

func TestRunProgramError(t *testing.T) {
	var out bytes.Buffer
	deps := &AppDependencies{
		ConfigLoader: defaultLoader,
		ProgramRunner: func(*tea.Program) (tea.Model, error) {
			return nil, errors.New("tty error")
		},
		Stdout: &out,
		Logger: logging.Nop(),
	}
	err := run(deps)
	if err == nil || !strings.Contains(err.Error(), "tty error") {
		t.Errorf("run() error = %v, want the program error", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing after a failure", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorwell.log")
	logger, closeLog, err := newLogger(path, true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("debug line", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "debug line") {
		t.Errorf("log = %q, want the debug line", data)
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "colorwell.log")
	if _, _, err := newLogger(path, false); err == nil {
		t.Error("newLogger() should fail for a missing directory")
	}
}

func TestNewTextLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	newTextLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logger wrote %q", buf.String())
	}
}

func TestLogAndExit(t *testing.T) {
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	code := -1
	exitFunc = func(c int) { code = c }

	logAndExit(nil)
	if code != -1 {
		t.Error("logAndExit(nil) should not exit")
	}
	logAndExit(errors.New("fail"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestFinishClosesLogBeforeExit(t *testing.T) {
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	var calls []string
	exitFunc = func(int) { calls = append(calls, "exit") }
	closeLog := func() { calls = append(calls, "close") }

	var buf bytes.Buffer
	finish(newTextLogger(&buf, false), closeLog, errors.New("config broken"))
	if strings.Join(calls, ",") != "close,exit" {
		t.Errorf("calls = %v, want close then exit", calls)
	}
	if !strings.Contains(buf.String(), "config broken") {
		t.Errorf("log = %q, want the error", buf.String())
	}

	calls = nil
	finish(logging.Nop(), closeLog, nil)
	if strings.Join(calls, ",") != "close" {
		t.Errorf("calls = %v, want close only", calls)
	}
}
