package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors shared by the landing page widgets.
type Palette struct {
	Primary lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Surface lipgloss.AdaptiveColor // opaque navigation bar background
	Text    lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
	return Palette{
		Primary: lipgloss.AdaptiveColor{Light: "#2E5BFF", Dark: "#6C8CFF"},
		Accent:  lipgloss.AdaptiveColor{Light: "#00A389", Dark: "#2DD4BF"},
		Success: lipgloss.AdaptiveColor{Light: "#2AA876", Dark: "#4ADE80"},
		Surface: lipgloss.AdaptiveColor{Light: "#F1F3F9", Dark: "#1B1F2A"},
		Text:    lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EDEDED"},
		Muted:   lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#8B949E"},
		Border:  lipgloss.AdaptiveColor{Light: "#D0D4DE", Dark: "#30363D"},
	}
}
