// Package config provides YAML and TOML configuration support for the color well
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/palette"
)

// CurrentVersion is written by DefaultConfig and accepted by Load
const CurrentVersion = "1.0.0"

// supportedVersions is the range of file versions this build understands
const supportedVersions = "^1"

// ErrUnsupportedVersion is returned for config files outside supportedVersions
var ErrUnsupportedVersion = errors.New("unsupported config version")

// FileNames are the config file names searched in each directory, in order
var FileNames = []string{"colorwell.yaml", "colorwell.yml", "colorwell.toml"}

// Config represents the color well configuration file
type Config struct {
	Version string        `yaml:"version" toml:"version"`
	Palette PaletteConfig `yaml:"palette" toml:"palette"`
	Grid    GridConfig    `yaml:"grid" toml:"grid"`
	Menu    MenuConfig    `yaml:"menu" toml:"menu"`
}

// PaletteConfig holds the colors offered by the popover. Every entry is a
// string accepted by palette.Parse. Empty values select the built-in colors.
type PaletteConfig struct {
	Rows    [][]string `yaml:"rows" toml:"rows"`
	Default string     `yaml:"default" toml:"default"`
	Custom  string     `yaml:"custom" toml:"custom"`
	Initial string     `yaml:"initial" toml:"initial"`
}

// GridConfig controls swatch sizes and spacing, in cells
type GridConfig struct {
	BoxWidth            float64 `yaml:"boxWidth" toml:"box_width"`
	BoxHeight           float64 `yaml:"boxHeight" toml:"box_height"`
	HorizontalSpacing   float64 `yaml:"horizontalSpacing" toml:"horizontal_spacing"`
	VerticalSpacing     float64 `yaml:"verticalSpacing" toml:"vertical_spacing"`
	HorizontalMargin    float64 `yaml:"horizontalMargin" toml:"horizontal_margin"`
	VerticalMargin      float64 `yaml:"verticalMargin" toml:"vertical_margin"`
	BorderWidth         float64 `yaml:"borderWidth" toml:"border_width"`
	SelectedBorderWidth float64 `yaml:"selectedBorderWidth" toml:"selected_border_width"`
}

// MenuConfig controls the menu rows and the external picker
type MenuConfig struct {
	DefaultColor bool   `yaml:"defaultColor" toml:"default_color"`
	CustomColor  bool   `yaml:"customColor" toml:"custom_color"`
	DefaultTitle string `yaml:"defaultTitle" toml:"default_title"`
	CustomTitle  string `yaml:"customTitle" toml:"custom_title"`
	Alpha        bool   `yaml:"alpha" toml:"alpha"`
}

// Load loads configuration with priority:
// 1. Project-level: <projectDir>/.colorwell/colorwell.{yaml,yml,toml}
// 2. Global: ConfigDir()/colorwell.{yaml,yml,toml}
// 3. Default: built-in defaults
//
// The returned path is empty when the defaults are used.
func Load(projectDir string) (*Config, string, error) {
	path := Resolve(projectDir)
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Resolve returns the config file Load would read, or "" if there is none
func Resolve(projectDir string) string {
	return ResolveWithPlatform(projectDir, DefaultPlatform)
}

// ResolveWithPlatform allows injecting a custom platform provider for testing
func ResolveWithPlatform(projectDir string, platform PlatformProvider) string {
	dirs := make([]string, 0, 2)
	if projectDir != "" {
		dirs = append(dirs, filepath.Join(projectDir, ".colorwell"))
	}
	if dir := ConfigDirWithPlatform(platform); dir != "" {
		dirs = append(dirs, dir)
	}

	for _, dir := range dirs {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// LoadFile loads configuration from a specific file. Files ending in .toml
// are decoded as TOML, everything else as YAML. Keys missing from the file
// keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := checkVersion(cfg.Version); err != nil {
		return nil, err
	}

	// Check every color and the grid shape up front so a reload never
	// replaces a working configuration with a broken one
	if _, err := cfg.Layout(); err != nil {
		return nil, err
	}
	if _, _, err := cfg.Swatches(); err != nil {
		return nil, err
	}
	if _, err := cfg.InitialColor(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, v, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, version, supportedVersions)
	}
	return nil
}

// DefaultConfig returns the default configuration. Sizes are in terminal
// cells: each swatch is four columns by two rows.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Palette: PaletteConfig{
			Rows:    nil, // built-in 3x4 grid
			Default: "",
			Custom:  "",
			Initial: "",
		},
		Grid: GridConfig{
			BoxWidth:            4,
			BoxHeight:           2,
			HorizontalSpacing:   1,
			VerticalSpacing:     1,
			HorizontalMargin:    1,
			VerticalMargin:      1,
			BorderWidth:         0,
			SelectedBorderWidth: 0,
		},
		Menu: MenuConfig{
			DefaultColor: true,
			CustomColor:  true,
		},
	}
}

// Colors parses the palette rows. Nil rows select the built-in grid.
func (c *Config) Colors() ([][]palette.Color, error) {
	if c.Palette.Rows == nil {
		return palette.DefaultGrid(), nil
	}
	grid := make([][]palette.Color, len(c.Palette.Rows))
	for i, row := range c.Palette.Rows {
		grid[i] = make([]palette.Color, len(row))
		for j, s := range row {
			color, err := palette.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("palette row %d column %d: %w", i, j, err)
			}
			grid[i][j] = color
		}
	}
	return grid, nil
}

// Layout converts the file configuration into a validated layout.Config
func (c *Config) Layout() (layout.Config, error) {
	colors, err := c.Colors()
	if err != nil {
		return layout.Config{}, err
	}
	cfg := layout.Config{
		Colors:                 colors,
		BoxWidth:               c.Grid.BoxWidth,
		BoxHeight:              c.Grid.BoxHeight,
		HorizontalBoxSpacing:   c.Grid.HorizontalSpacing,
		VerticalBoxSpacing:     c.Grid.VerticalSpacing,
		HorizontalMargin:       c.Grid.HorizontalMargin,
		VerticalMargin:         c.Grid.VerticalMargin,
		UsesDefaultColor:       c.Menu.DefaultColor,
		UsesCustomColor:        c.Menu.CustomColor,
		BoxBorderWidth:         c.Grid.BorderWidth,
		SelectedBoxBorderWidth: c.Grid.SelectedBorderWidth,
	}
	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// Swatches returns the colors behind the default and custom menu rows
func (c *Config) Swatches() (def, custom palette.Color, err error) {
	def, err = parseOr(c.Palette.Default, palette.DefaultColor())
	if err != nil {
		return def, custom, fmt.Errorf("palette default: %w", err)
	}
	custom, err = parseOr(c.Palette.Custom, palette.DefaultCustomColor())
	if err != nil {
		return def, custom, fmt.Errorf("palette custom: %w", err)
	}
	return def, custom, nil
}

// InitialColor returns the color the button starts with
func (c *Config) InitialColor() (palette.Color, error) {
	color, err := parseOr(c.Palette.Initial, palette.White)
	if err != nil {
		return color, fmt.Errorf("palette initial: %w", err)
	}
	return color, nil
}

// GetDefaultTitle returns the default menu row label, or "" for the built-in one
func (c *Config) GetDefaultTitle() string {
	return c.Menu.DefaultTitle
}

// GetCustomTitle returns the custom menu row label, or "" for the built-in one
func (c *Config) GetCustomTitle() string {
	return c.Menu.CustomTitle
}

// UsesAlpha returns true if the external picker may edit alpha
func (c *Config) UsesAlpha() bool {
	return c.Menu.Alpha
}

func parseOr(s string, fallback palette.Color) (palette.Color, error) {
	if strings.TrimSpace(s) == "" {
		return fallback, nil
	}
	return palette.Parse(s)
}
