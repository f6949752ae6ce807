package statusbar

import (
	"fmt"
	"strings"

	"gtunnel-site/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState) string {
	view := "[" + s.View.String() + "]"
	pos := fmt.Sprintf("Y:%dpx", s.Offset())
	if state.AppearanceAt(s.Offset()).Scrolled {
		pos += " (scrolled)"
	}
	size := fmt.Sprintf("%dx%d", s.Width, s.Height)

	parts := []string{view, pos, size}
	if s.ShowFlags {
		parts = append(parts, "flags: on")
	}
	if s.Notice != "" {
		parts = append(parts, s.Notice)
	}
	return strings.Join(parts, "  ")
}
