package copybutton

import (
	"github.com/charmbracelet/lipgloss"

	"gtunnel-site/internal/tui/util"
)

// Feedback is the state the button renders. copyfeedback.Widget satisfies it.
type Feedback interface {
	Copied() bool
	Label() string
	Icon() string
}

// View renders the copy affordance: the default icon, or the confirmation
// icon while the copy feedback is showing.
func View(f Feedback, noColor bool) string {
	text := "[" + f.Icon() + " " + f.Label() + "]"
	if util.NoColor(noColor) {
		return text
	}
	p := util.DefaultPalette()
	st := lipgloss.NewStyle().Foreground(p.Muted)
	if f.Copied() {
		st = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	}
	return st.Render(text)
}
