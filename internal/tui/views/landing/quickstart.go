package landing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gtunnel-site/internal/site"
)

// QuickStart renders the quick start page. The first step shows installCmd.
func QuickStart(installCmd string, o Options) string {
	st := newStyles(o)
	w := o.width()

	var b strings.Builder
	b.WriteString("\n" + st.title.Render("Quick Start") + "\n")
	b.WriteString(st.subtitle.Render("From zero to a public URL in a few commands.") + "\n\n")
	for i, s := range site.QuickStart {
		cmd := s.Command
		if cmd == "" {
			cmd = installCmd
		}
		fmt.Fprintf(&b, "%s\n", st.heading.Render(fmt.Sprintf("%d. %s", i+1, s.Title)))
		code := lipgloss.NewStyle().Width(min(w-6, max(lipgloss.Width(cmd), 20))).Render(st.code.Render("$ " + cmd))
		b.WriteString(st.box.Render(code) + "\n")
		if s.Note != "" {
			b.WriteString(st.subtitle.Render(s.Note) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(st.subtitle.Render("Full documentation: "+site.DocsURL) + "\n")
	return b.String()
}
