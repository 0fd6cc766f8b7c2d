package layout

import (
	"github.com/young1lin/colorwell/internal/logging"
	"github.com/young1lin/colorwell/internal/palette"
)

// Engine holds the current configuration and memoizes its geometry.
// SetConfig invalidates the cached geometry; Geometry recomputes it on the
// next query. An Engine is not safe for concurrent use.
type Engine struct {
	cfg      Config
	geometry Geometry
	valid    bool
	revision uint64
}

// NewEngine returns an engine for cfg, or the validation error
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{}
	if err := e.SetConfig(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// SetConfig validates and stores a copy of cfg. On error the previous
// configuration stays in effect.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		logging.Logger().Warn("rejected grid configuration", "error", err)
		return err
	}
	e.cfg = cfg.Clone()
	e.valid = false
	e.revision++
	return nil
}

// Update applies fn to a copy of the current configuration and stores the
// result through SetConfig.
func (e *Engine) Update(fn func(*Config)) error {
	next := e.cfg.Clone()
	fn(&next)
	return e.SetConfig(next)
}

// Config returns a copy of the current configuration
func (e *Engine) Config() Config {
	return e.cfg.Clone()
}

// Revision increments every time the configuration changes
func (e *Engine) Revision() uint64 {
	return e.revision
}

// Geometry returns the geometry for the current configuration
func (e *Engine) Geometry() Geometry {
	if !e.valid {
		// SetConfig only accepts valid configurations, so Compute cannot fail.
		g, _ := Compute(e.cfg)
		e.geometry = g
		e.valid = true
		logging.Logger().Debug("geometry recomputed",
			"revision", e.revision,
			"width", g.Size.Width,
			"height", g.Size.Height)
	}
	return e.geometry
}

// ColorAt returns the grid color at (row, column) without copying the grid
func (e *Engine) ColorAt(row, column int) (palette.Color, bool) {
	return e.cfg.ColorAt(row, column)
}
