package statusbar

import (
	"strings"
	"testing"

	"gtunnel-site/internal/tui/state"
)

func TestViewShowsOffsetAndView(t *testing.T) {
	out := NewStatusBar().View(state.UIState{View: state.Landing, ScrollV: 2, CellHeight: 16, Width: 80, Height: 24})
	if !strings.HasPrefix(out, "[Home]") {
		t.Fatalf("missing view: %q", out)
	}
	if !strings.Contains(out, "Y:32px") || strings.Contains(out, "scrolled") {
		t.Fatalf("unexpected offset segment: %q", out)
	}
}

func TestViewScrolledAndNotice(t *testing.T) {
	s := state.UIState{View: state.QuickStart, ScrollV: 4, CellHeight: 16, Notice: "Copied install command"}
	out := NewStatusBar().View(s)
	if !strings.Contains(out, "Y:64px (scrolled)") {
		t.Fatalf("expected scrolled marker: %q", out)
	}
	if !strings.HasSuffix(out, "Copied install command") {
		t.Fatalf("expected notice last: %q", out)
	}
}
