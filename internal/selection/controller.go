package selection

import (
	"log/slog"

	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/logging"
)

// Controller tracks one interaction session over the popover. All methods
// must be called from the goroutine that delivers pointer events.
//
// Lifecycle: PointerEnter moves Idle to Hovering, PointerMove updates the
// highlighted target, PointerUp commits it and returns to Idle, PointerExit
// abandons the hover.
type Controller struct {
	engine   *layout.Engine
	swatches Swatches
	handler  OutcomeHandler
	redraw   RedrawFunc
	logger   *slog.Logger

	state    State
	hovering bool
	// last pointer position and the engine revision the state was resolved
	// against, used to re-resolve after a configuration change
	last     layout.Point
	hasLast  bool
	revision uint64
}

// Option configures a Controller
type Option func(*Controller)

// WithRedraw sets the function called whenever the highlighted target changes
func WithRedraw(fn RedrawFunc) Option {
	return func(c *Controller) {
		c.redraw = fn
	}
}

// WithLogger overrides the package logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController returns an idle controller reading geometry from engine and
// menu colors from swatches. handler receives every committed outcome.
func NewController(engine *layout.Engine, swatches Swatches, handler OutcomeHandler, opts ...Option) *Controller {
	c := &Controller{
		engine:   engine,
		swatches: swatches,
		handler:  handler,
		logger:   logging.Logger(),
		revision: engine.Revision(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns Hovering while the pointer is tracked, Idle otherwise
func (c *Controller) Phase() Phase {
	if c.hovering {
		return Hovering
	}
	return Idle
}

// State returns the highlighted target. After a configuration change that
// has not been applied yet, the target is resolved against the new geometry
// without updating the controller or calling the redraw function.
func (c *Controller) State() State {
	if c.revision != c.engine.Revision() {
		return c.resolve()
	}
	return c.state
}

// Refresh re-resolves the last pointer position after a configuration change
// and reports whether the highlighted target changed. It is a no-op when the
// geometry is unchanged.
func (c *Controller) Refresh() bool {
	return c.refresh()
}

// PointerEnter starts tracking with nothing highlighted
func (c *Controller) PointerEnter() {
	c.hovering = true
	c.hasLast = false
	c.revision = c.engine.Revision()
	c.set(State{Kind: NoSelection})
}

// PointerExit stops tracking and clears the highlight
func (c *Controller) PointerExit() {
	c.hovering = false
	c.hasLast = false
	c.revision = c.engine.Revision()
	c.set(State{Kind: NoSelection})
}

// PointerMove resolves p against the current geometry. It is ignored while
// Idle and reports whether the highlighted target changed.
func (c *Controller) PointerMove(p layout.Point) bool {
	if !c.hovering {
		return false
	}
	c.last, c.hasLast = p, true
	c.revision = c.engine.Revision()
	return c.set(HitTest(c.engine.Geometry(), p))
}

// PointerDrag is PointerMove with a button held
func (c *Controller) PointerDrag(p layout.Point) bool {
	return c.PointerMove(p)
}

// PointerUp commits the highlighted target. The handler is called exactly
// once and the controller returns to Idle. Nothing happens while Idle or when
// no target is highlighted.
func (c *Controller) PointerUp() (Outcome, bool) {
	if !c.hovering {
		return Outcome{}, false
	}
	c.refresh()

	out, ok := c.outcome(c.state)
	if !ok {
		return Outcome{}, false
	}

	c.hovering = false
	c.hasLast = false
	c.set(State{Kind: NoSelection})

	c.logger.Info("selection committed", "outcome", out.String())
	if c.handler != nil {
		c.handler.HandleOutcome(out)
	}
	return out, true
}

// outcome maps a state to the outcome it commits to
func (c *Controller) outcome(s State) (Outcome, bool) {
	switch s.Kind {
	case GridCell:
		color, ok := c.engine.ColorAt(s.Row, s.Column)
		if !ok {
			return Outcome{}, false
		}
		return Outcome{Kind: GridCell, Row: s.Row, Column: s.Column, Color: color}, true
	case DefaultColor:
		return Outcome{Kind: DefaultColor, Color: c.swatches.DefaultColor()}, true
	case CustomColorSwatch:
		return Outcome{Kind: CustomColorSwatch, Color: c.swatches.CustomColor()}, true
	case CustomColorPanelRequest:
		return Outcome{Kind: CustomColorPanelRequest}, true
	}
	return Outcome{}, false
}

// refresh re-resolves the last pointer position when the configuration
// changed after it was hit-tested, so a stale target is never committed.
func (c *Controller) refresh() bool {
	if c.revision == c.engine.Revision() {
		return false
	}
	next := c.resolve()
	c.revision = c.engine.Revision()
	return c.set(next)
}

// resolve hit-tests the last pointer position against the current geometry
func (c *Controller) resolve() State {
	if c.hovering && c.hasLast {
		return HitTest(c.engine.Geometry(), c.last)
	}
	return State{Kind: NoSelection}
}

// set stores s and requests a redraw when it differs from the previous state
func (c *Controller) set(s State) bool {
	prev := c.state
	if s == prev {
		return false
	}
	c.state = s
	c.logger.Debug("selection changed", "from", prev.String(), "to", s.String())
	if c.redraw != nil {
		c.redraw(prev, s)
	}
	return true
}
