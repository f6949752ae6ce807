package helpoverlay

import (
	"github.com/charmbracelet/bubbles/help"

	"gtunnel-site/internal/tui/state"
)

type HelpOverlay struct {
	model help.Model
}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{model: help.New()} }

// View returns the one-line key hints, or the grouped key table when the
// help overlay is open.
func (h HelpOverlay) View(s state.UIState, keys help.KeyMap) string {
	m := h.model
	m.Width = s.Width
	m.ShowAll = s.ShowHelp
	return m.View(keys)
}
