package navbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gtunnel-site/internal/site"
	"gtunnel-site/internal/tui/state"
	"gtunnel-site/internal/tui/util"
)

// Height is the number of rows the bar occupies in every mode.
const Height = 2

// Mode is the visual style selected by the navigation element's flags.
type Mode int

const (
	// Opaque is the regular bar used outside the landing page.
	Opaque Mode = iota
	// Transparent blends into the landing page hero while at the top.
	Transparent
	// Scrolled is the solid bar shown once the landing page scrolls.
	Scrolled
)

func (m Mode) String() string {
	switch m {
	case Transparent:
		return "transparent"
	case Scrolled:
		return "scrolled"
	default:
		return "opaque"
	}
}

// ModeOf derives the mode from the element's flags. scrolledMode wins over
// transparentMode, matching the stylesheet precedence of the web navbar.
func ModeOf(nav *state.Element) Mode {
	switch {
	case nav.Has(state.FlagScrolled):
		return Scrolled
	case nav.Has(state.FlagTransparent):
		return Transparent
	default:
		return Opaque
	}
}

// Options controls rendering.
type Options struct {
	Width   int
	NoColor bool
	Current string // label of the highlighted item
}

// View renders the bar for the given element.
func View(nav *state.Element, items []site.NavItem, o Options) string {
	width := o.Width
	if width <= 0 {
		width = 80
	}
	mode := ModeOf(nav)
	noColor := util.NoColor(o.NoColor)
	p := util.DefaultPalette()

	brand := "◆ " + site.Name
	var left, right []string
	for _, it := range items {
		label := it.Label
		if label == o.Current {
			label = "[" + label + "]"
		}
		if it.Right {
			right = append(right, label)
		} else {
			left = append(left, label)
		}
	}
	l := brand + "   " + strings.Join(left, "  ")
	r := strings.Join(right, "  ")
	gap := width - lipgloss.Width(l) - lipgloss.Width(r) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + l + strings.Repeat(" ", gap) + r + " "

	under := strings.Repeat(" ", width)
	if mode != Transparent {
		under = strings.Repeat("─", width)
	}
	if noColor {
		return line + "\n" + under
	}

	bar := lipgloss.NewStyle().Width(width).Foreground(p.Text)
	rule := lipgloss.NewStyle().Foreground(p.Border)
	switch mode {
	case Transparent:
		bar = bar.Bold(true)
	case Scrolled:
		bar = bar.Background(p.Surface)
		if nav.Has(state.FlagLandingScrolled) {
			bar = bar.Foreground(p.Primary).Bold(true)
			rule = rule.Foreground(p.Primary)
		}
	default:
		bar = bar.Background(p.Surface)
	}
	return bar.Render(line) + "\n" + rule.Render(under)
}
