// Command colorwell is a terminal color well: a swatch that opens a palette
// popover and prints the chosen color on exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/colorwell/internal/config"
	"github.com/young1lin/colorwell/internal/logging"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	configPath := flag.String("config", "", "path to a colorwell.yaml or colorwell.toml file")
	projectDir := flag.String("project", "", "project directory searched for .colorwell/ (default: current directory)")
	logPath := flag.String("log", "", "log file (default: user cache directory)")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	noWatch := flag.Bool("no-watch", false, "do not reload the config file when it changes")
	flag.Parse()

	if *projectDir == "" {
		if wd, err := os.Getwd(); err == nil {
			*projectDir = wd
		}
	}

	logger, closeLog, err := newLogger(*logPath, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		logAndExit(err)
		return
	}
	logging.SetLogger(logger)

	err = run(&AppDependencies{
		ProjectDir:   *projectDir,
		ConfigPath:   *configPath,
		ConfigLoader: config.Load,
		FileLoader:   config.LoadFile,
		WatcherCreator: func(path string) (config.WatcherInterface, error) {
			return config.Watch(path)
		},
		ProgramRunner: func(p *tea.Program) (tea.Model, error) {
			return p.Run()
		},
		Stdout:  os.Stdout,
		Logger:  logger,
		NoWatch: *noWatch,
	})
	finish(logger, closeLog, err)
}

// finish closes the log file before exiting, since exitFunc skips deferred
// calls
func finish(logger *slog.Logger, closeLog func(), err error) {
	if err != nil {
		logger.Error("colorwell failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	closeLog()
	logAndExit(err)
}

// newLogger opens the log file. The terminal belongs to the TUI, so nothing
// is logged to stderr.
func newLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	if path == "" {
		path = config.LogPath()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return newTextLogger(f, verbose), func() { f.Close() }, nil
}

func newTextLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func logAndExit(err error) {
	// This is a separate function to allow testing of error handling
	if err != nil {
		exitFunc(1)
	}
}
