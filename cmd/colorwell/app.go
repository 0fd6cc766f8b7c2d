package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/colorwell/internal/colorbutton"
	"github.com/young1lin/colorwell/internal/config"
	"github.com/young1lin/colorwell/internal/logging"
	"github.com/young1lin/colorwell/tui"
)

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	ProjectDir     string
	ConfigPath     string
	ConfigLoader   func(projectDir string) (*config.Config, string, error)
	FileLoader     func(path string) (*config.Config, error)
	WatcherCreator func(string) (config.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) (tea.Model, error)
	Stdout         io.Writer
	Logger         *slog.Logger
	NoWatch        bool
}

func run(deps *AppDependencies) error {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Logger()
	}

	cfg, path, err := loadConfig(deps)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if path != "" {
		logger.Info("configuration loaded", "path", path)
	} else {
		logger.Info("using built-in palette")
	}

	model, err := tui.NewModel(cfg, colorbutton.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	// A missing watcher only disables live reload
	if path != "" && !deps.NoWatch && deps.WatcherCreator != nil {
		watcher, err := deps.WatcherCreator(path)
		if err != nil {
			logger.Warn("config watcher unavailable", "path", path, "err", err)
			model = model.WithWatcher(nil, path)
		} else {
			defer watcher.Close()
			model = model.WithWatcher(watcher, path)
		}
	} else if path != "" {
		model = model.WithWatcher(nil, path)
	}

	p := tea.NewProgram(model, tea.WithMouseAllMotion(), tea.WithAltScreen())

	final, err := deps.ProgramRunner(p)
	if err != nil {
		return fmt.Errorf("program failed: %w", err)
	}

	if m, ok := final.(tui.Model); ok && deps.Stdout != nil {
		c := m.Button().Color()
		logger.Info("final color", "color", c.String(), "kind", m.Button().LastSelection().String())
		fmt.Fprintln(deps.Stdout, c.Normalized().String())
	}
	return nil
}

// loadConfig reads the explicit config file when one is given, otherwise
// searches the project and user config directories
func loadConfig(deps *AppDependencies) (*config.Config, string, error) {
	if deps.ConfigPath != "" {
		loader := deps.FileLoader
		if loader == nil {
			loader = config.LoadFile
		}
		cfg, err := loader(deps.ConfigPath)
		return cfg, deps.ConfigPath, err
	}
	loader := deps.ConfigLoader
	if loader == nil {
		loader = config.Load
	}
	return loader(deps.ProjectDir)
}
