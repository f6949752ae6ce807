package flagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gtunnel-site/internal/tui/state"
	"gtunnel-site/internal/tui/util"
)

// View renders the flags currently set on each element as chips, one line per
// element, in a stable order. With noColor (or NO_COLOR set) chips fall back
// to bracketed ASCII.
func View(noColor bool, els ...*state.Element) string {
	noColor = util.NoColor(noColor)
	lines := make([]string, 0, len(els))
	for _, el := range els {
		if el == nil {
			continue
		}
		flags := el.Flags()
		parts := make([]string, 0, len(flags)+1)
		parts = append(parts, fmt.Sprintf("%s:", el.Name))
		if len(flags) == 0 {
			parts = append(parts, "(none)")
		}
		for _, f := range flags {
			parts = append(parts, renderChip(f, noColor))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func renderChip(f state.Flag, noColor bool) string {
	if noColor {
		return fmt.Sprintf("[%s]", f)
	}
	return chipStyle(f).Render(" " + string(f) + " ")
}

func chipStyle(f state.Flag) lipgloss.Style {
	p := util.DefaultPalette()
	base := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	switch f {
	case state.FlagLandingPage:
		return base.Background(p.Primary)
	case state.FlagTransparent:
		return base.Background(p.Muted)
	case state.FlagScrolled, state.FlagLandingScrolled:
		return base.Background(p.Accent)
	default:
		return base.Background(p.Border)
	}
}
