package flagchips

import (
	"strings"
	"testing"

	"gtunnel-site/internal/tui/state"
)

func TestViewNoColor(t *testing.T) {
	nav := state.NewElement("navbar")
	nav.Set(state.FlagTransparent, true)
	nav.Set(state.FlagScrolled, true)
	root := state.NewElement("root")

	out := View(true, nav, root, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "navbar: [scrolledMode] [transparentMode]" {
		t.Fatalf("unexpected navbar line: %q", lines[0])
	}
	if lines[1] != "root: (none)" {
		t.Fatalf("unexpected root line: %q", lines[1])
	}
}

func TestViewHonorsNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	root := state.NewElement("root")
	root.Set(state.FlagLandingPage, true)
	if out := View(false, root); !strings.Contains(out, "[landingPageMode]") {
		t.Fatalf("expected ASCII chip, got %q", out)
	}
}
