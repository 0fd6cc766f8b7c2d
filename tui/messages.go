package tui

import (
	"github.com/young1lin/colorwell/internal/colorbutton"
	"github.com/young1lin/colorwell/internal/config"
	"github.com/young1lin/colorwell/internal/palette"
)

// ColorSelectedMsg is sent when the button commits a color
type ColorSelectedMsg struct {
	Color palette.Color
}

// PanelRequestedMsg is sent when the custom row asks for the full picker
type PanelRequestedMsg struct {
	Request colorbutton.PanelRequest
}

// ConfigReloadedMsg is sent when the config file changed and loaded cleanly
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg is sent when the config watcher fails or a reload is rejected
type ConfigErrorMsg struct {
	Err error
}
