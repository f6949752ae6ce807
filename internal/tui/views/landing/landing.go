// Package landing renders the static sections of the landing page and the
// quick start page. Nothing here holds state; the shell passes in what each
// section needs.
package landing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gtunnel-site/internal/site"
	"gtunnel-site/internal/tui/util"
	"gtunnel-site/internal/tui/widgets/copybutton"
)

// Options controls rendering of every section.
type Options struct {
	Width   int
	NoColor bool
}

func (o Options) width() int {
	if o.Width <= 0 {
		return 80
	}
	return o.Width
}

type styles struct {
	title, accent, subtitle, heading, body, code, box, card lipgloss.Style
}

func newStyles(o Options) styles {
	if util.NoColor(o.NoColor) {
		plain := lipgloss.NewStyle()
		return styles{
			title:    plain.Bold(true),
			accent:   plain.Bold(true),
			subtitle: plain,
			heading:  plain.Bold(true),
			body:     plain,
			code:     plain,
			box:      plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			card:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}
	p := util.DefaultPalette()
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		accent:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		subtitle: lipgloss.NewStyle().Foreground(p.Muted),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		body:     lipgloss.NewStyle().Foreground(p.Text),
		code:     lipgloss.NewStyle().Foreground(p.Accent),
		box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
	}
}

// Page renders the whole landing page: header, features, use cases and the
// call to action.
func Page(installCmd string, fb copybutton.Feedback, o Options) string {
	return strings.Join([]string{
		Header(installCmd, fb, o),
		Features(o),
		UseCases(o),
		CTA(o),
	}, "\n\n")
}

// Header renders the hero block with the quick install command.
func Header(installCmd string, fb copybutton.Feedback, o Options) string {
	st := newStyles(o)
	w := o.width()
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Render(st.title.Render(site.HeroTitle)) + "\n")
	b.WriteString(center.Render(st.accent.Render(site.HeroAccent)) + "\n\n")
	b.WriteString(center.Render(st.subtitle.Width(min(w-4, 72)).Align(lipgloss.Center).Render(site.HeroSummary)) + "\n\n")
	b.WriteString(center.Render("[ Get Started → ]   [ Documentation ]") + "\n\n")

	label := st.subtitle.Render("Quick Install")
	btn := copybutton.View(fb, o.NoColor)
	inner := min(w-6, max(lipgloss.Width(installCmd), lipgloss.Width(label)+lipgloss.Width(btn)+2))
	gap := max(inner-lipgloss.Width(label)-lipgloss.Width(btn), 1)
	head := label + strings.Repeat(" ", gap) + btn
	code := lipgloss.NewStyle().Width(inner).Render(st.code.Render(installCmd))
	b.WriteString(center.Render(st.box.Render(head + "\n" + code)))
	return b.String()
}

// Features renders the feature grid, two or three cards per row depending on
// the width.
func Features(o Options) string {
	return section(site.FeaturesSection, site.Features, o)
}

// UseCases renders the use case list.
func UseCases(o Options) string {
	return section(site.UseCasesSection, site.UseCases, o)
}

// CTA renders the closing call to action.
func CTA(o Options) string {
	st := newStyles(o)
	center := lipgloss.NewStyle().Width(o.width()).Align(lipgloss.Center)
	lines := []string{
		center.Render(st.heading.Render(site.CTA.Title)),
		center.Render(st.subtitle.Render(site.CTA.Subtitle)),
		"",
		center.Render("[ " + site.CTA.Primary.Label + " ]   [ " + site.CTA.Second.Label + " ]"),
		center.Render(st.subtitle.Render(site.CTA.Second.URL)),
		"",
	}
	return strings.Join(lines, "\n")
}

func section(sec site.Section, cards []site.Card, o Options) string {
	st := newStyles(o)
	w := o.width()
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)

	perRow := 1
	switch {
	case w >= 120:
		perRow = 3
	case w >= 80:
		perRow = 2
	}
	cardW := (w-2)/perRow - 2

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := st.heading.Render(c.Icon+"  "+c.Title) + "\n" + st.body.Render(c.Description)
		rendered = append(rendered, st.card.Width(cardW).Render(body))
	}
	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		end := min(i+perRow, len(rendered))
		rows = append(rows, center.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:end]...)))
	}

	head := center.Render(st.heading.Render(sec.Title)) + "\n" +
		center.Render(st.subtitle.Width(min(w-4, 72)).Align(lipgloss.Center).Render(sec.Subtitle))
	return head + "\n\n" + strings.Join(rows, "\n")
}
