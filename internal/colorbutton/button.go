// Package colorbutton implements the control that owns a color popover: it
// holds the current, default and custom colors, opens selection sessions and
// applies their outcomes.
package colorbutton

import (
	"errors"
	"log/slog"

	"github.com/young1lin/colorwell/internal/layout"
	"github.com/young1lin/colorwell/internal/logging"
	"github.com/young1lin/colorwell/internal/palette"
	"github.com/young1lin/colorwell/internal/selection"
)

// ErrStalePanel is returned when a picker result arrives for a request that
// is no longer outstanding
var ErrStalePanel = errors.New("stale color panel token")

// Menu row labels used when none are configured
const (
	DefaultColorTitle = "Default Color"
	CustomColorTitle  = "Custom Color"
)

// Listener is notified whenever the button's color is committed
type Listener interface {
	ColorSelected(b *Button, c palette.Color)
}

// ListenerFunc adapts a function to Listener
type ListenerFunc func(b *Button, c palette.Color)

// ColorSelected calls f(b, c)
func (f ListenerFunc) ColorSelected(b *Button, c palette.Color) { f(b, c) }

// PanelToken identifies one request for the external color picker
type PanelToken uint64

// PanelRequest asks the host to show a full color picker. The host reports
// the result with CompletePanel or CancelPanel using the same Token.
type PanelRequest struct {
	Token      PanelToken
	Initial    palette.Color
	ShowsAlpha bool
}

// PanelOpener shows an external color picker
type PanelOpener interface {
	OpenPanel(req PanelRequest)
}

// PanelFunc adapts a function to PanelOpener
type PanelFunc func(req PanelRequest)

// OpenPanel calls f(req)
func (f PanelFunc) OpenPanel(req PanelRequest) { f(req) }

// Button is a color well: a swatch showing the current color that opens a
// popover of choices. It is not safe for concurrent use.
type Button struct {
	engine *layout.Engine

	color        palette.Color
	defaultColor palette.Color
	customColor  palette.Color

	defaultTitle string
	customTitle  string
	usesAlpha    bool

	lastSelection selection.Kind

	listener Listener
	panel    PanelOpener
	redraw   selection.RedrawFunc
	logger   *slog.Logger

	session   *selection.Controller
	pending   PanelToken
	nextToken PanelToken
}

// Option configures a Button
type Option func(*Button)

// WithListener sets the listener notified on every committed color
func WithListener(l Listener) Option {
	return func(b *Button) { b.listener = l }
}

// WithPanel sets the opener used for custom color panel requests
func WithPanel(p PanelOpener) Option {
	return func(b *Button) { b.panel = p }
}

// WithColor sets the initial color
func WithColor(c palette.Color) Option {
	return func(b *Button) { b.color = c }
}

// WithDefaultColor sets the color offered by the default menu row
func WithDefaultColor(c palette.Color) Option {
	return func(b *Button) { b.defaultColor = c }
}

// WithCustomColor sets the color offered by the custom menu row
func WithCustomColor(c palette.Color) Option {
	return func(b *Button) { b.customColor = c }
}

// WithTitles sets the menu row labels. Empty strings keep the defaults.
func WithTitles(defaultTitle, customTitle string) Option {
	return func(b *Button) {
		if defaultTitle != "" {
			b.defaultTitle = defaultTitle
		}
		if customTitle != "" {
			b.customTitle = customTitle
		}
	}
}

// WithAlphaChannel lets the external picker edit alpha
func WithAlphaChannel(on bool) Option {
	return func(b *Button) { b.usesAlpha = on }
}

// WithRedraw is passed to every selection session the button opens
func WithRedraw(fn selection.RedrawFunc) Option {
	return func(b *Button) { b.redraw = fn }
}

// WithLogger overrides the package logger
func WithLogger(l *slog.Logger) Option {
	return func(b *Button) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a closed button for cfg
func New(cfg layout.Config, opts ...Option) (*Button, error) {
	engine, err := layout.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	b := &Button{
		engine:        engine,
		color:         palette.White,
		defaultColor:  palette.DefaultColor(),
		customColor:   palette.DefaultCustomColor(),
		defaultTitle:  DefaultColorTitle,
		customTitle:   CustomColorTitle,
		lastSelection: selection.GridCell,
		logger:        logging.Logger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Open shows the popover and starts a new selection session. It returns
// false if the popover is already open.
func (b *Button) Open() bool {
	if b.session != nil {
		return false
	}
	b.session = selection.NewController(b.engine, b, b,
		selection.WithRedraw(b.redraw),
		selection.WithLogger(b.logger))
	size := b.engine.Geometry().Size
	b.logger.Debug("popover opened", "width", size.Width, "height", size.Height)
	return true
}

// Close hides the popover and discards its session
func (b *Button) Close() {
	if b.session == nil {
		return
	}
	b.session = nil
	b.logger.Debug("popover closed")
}

// IsOpen reports whether the popover is shown
func (b *Button) IsOpen() bool {
	return b.session != nil
}

// Session returns the open selection session, or nil when closed
func (b *Button) Session() *selection.Controller {
	return b.session
}

// HandleOutcome applies a committed selection. The popover closes first; a
// panel request asks the PanelOpener for a picker unless one is already
// outstanding, and every other outcome commits its color.
func (b *Button) HandleOutcome(o selection.Outcome) {
	b.Close()
	b.lastSelection = o.Kind

	if o.Kind == selection.CustomColorPanelRequest {
		b.requestPanel()
		return
	}
	if o.HasColor() {
		b.commit(o.Color)
	}
}

func (b *Button) requestPanel() {
	if b.pending != 0 {
		b.logger.Debug("color panel already open", "token", uint64(b.pending))
		return
	}
	b.nextToken++
	b.pending = b.nextToken
	req := PanelRequest{Token: b.pending, Initial: b.color, ShowsAlpha: b.usesAlpha}
	b.logger.Info("color panel requested", "token", uint64(req.Token))
	if b.panel != nil {
		b.panel.OpenPanel(req)
	}
}

// PendingPanel returns the outstanding picker request token, if any
func (b *Button) PendingPanel() (PanelToken, bool) {
	return b.pending, b.pending != 0
}

// CompletePanel commits the color chosen in the picker opened for token.
// Alpha is dropped unless the button uses the alpha channel.
func (b *Button) CompletePanel(token PanelToken, c palette.Color) error {
	if token == 0 || token != b.pending {
		b.logger.Warn("ignoring stale color panel result", "token", uint64(token))
		return ErrStalePanel
	}
	b.pending = 0
	if !b.usesAlpha {
		r, g, bl, _ := c.Components()
		if c.Model() == palette.ModelGray {
			c = palette.Gray(r)
		} else {
			c = palette.RGB(r, g, bl)
		}
	}
	b.commit(c)
	return nil
}

// CancelPanel abandons the picker opened for token
func (b *Button) CancelPanel(token PanelToken) error {
	if token == 0 || token != b.pending {
		return ErrStalePanel
	}
	b.pending = 0
	b.logger.Debug("color panel cancelled", "token", uint64(token))
	return nil
}

func (b *Button) commit(c palette.Color) {
	b.SetColor(c)
	if b.listener != nil {
		b.listener.ColorSelected(b, c)
	}
}

// SetColor changes the current color without notifying the listener. A color
// that is not already offered by the popover becomes the new custom color.
func (b *Button) SetColor(c palette.Color) {
	if !b.referenced(c) {
		b.customColor = c
	}
	b.color = c
}

// referenced reports whether c is the default color, the custom color or any
// grid color
func (b *Button) referenced(c palette.Color) bool {
	if c.Equal(b.defaultColor) || c.Equal(b.customColor) {
		return true
	}
	cfg := b.engine.Config()
	return palette.Contains(cfg.Colors, c)
}

// SetConfig replaces the popover configuration. Cached geometry is
// invalidated and an open session re-resolves its target against the new
// geometry immediately. On error the previous configuration stays in effect.
func (b *Button) SetConfig(cfg layout.Config) error {
	if err := b.engine.SetConfig(cfg); err != nil {
		return err
	}
	b.refreshSession()
	return nil
}

// UpdateConfig edits a copy of the configuration and applies it via SetConfig
func (b *Button) UpdateConfig(fn func(*layout.Config)) error {
	if err := b.engine.Update(fn); err != nil {
		return err
	}
	b.refreshSession()
	return nil
}

func (b *Button) refreshSession() {
	if b.session != nil {
		b.session.Refresh()
	}
}

// Config returns a copy of the popover configuration
func (b *Button) Config() layout.Config {
	return b.engine.Config()
}

// Geometry returns the popover geometry for the current configuration
func (b *Button) Geometry() layout.Geometry {
	return b.engine.Geometry()
}

// Color returns the current color
func (b *Button) Color() palette.Color { return b.color }

// DefaultColor returns the color behind the default menu row
func (b *Button) DefaultColor() palette.Color { return b.defaultColor }

// CustomColor returns the color behind the custom menu row
func (b *Button) CustomColor() palette.Color { return b.customColor }

// SetDefaultColor changes the color behind the default menu row
func (b *Button) SetDefaultColor(c palette.Color) { b.defaultColor = c }

// SetCustomColor changes the color behind the custom menu row
func (b *Button) SetCustomColor(c palette.Color) { b.customColor = c }

// LastSelection returns the kind of the most recent outcome
func (b *Button) LastSelection() selection.Kind { return b.lastSelection }

// DefaultTitle returns the default menu row label
func (b *Button) DefaultTitle() string { return b.defaultTitle }

// CustomTitle returns the custom menu row label
func (b *Button) CustomTitle() string { return b.customTitle }

// SetTitles changes the menu row labels. Empty strings restore the defaults.
func (b *Button) SetTitles(defaultTitle, customTitle string) {
	b.defaultTitle, b.customTitle = DefaultColorTitle, CustomColorTitle
	WithTitles(defaultTitle, customTitle)(b)
}

// UsesAlphaChannel reports whether picker results keep their alpha
func (b *Button) UsesAlphaChannel() bool { return b.usesAlpha }

// SetAlphaChannel controls whether picker results keep their alpha
func (b *Button) SetAlphaChannel(on bool) { b.usesAlpha = on }
