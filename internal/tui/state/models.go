package state

// View selects which page the shell renders.
type View int

const (
	Landing View = iota
	QuickStart
)

func (v View) String() string {
	switch v {
	case QuickStart:
		return "Quick Start"
	default:
		return "Home"
	}
}

// UIState holds cross-widget UI state used by the status bar, help overlay
// and flag chips.
type UIState struct {
	View View

	// Layout & scrolling
	Width      int
	Height     int
	ScrollV    int // viewport rows scrolled
	ScrollPx   int // pixels past ScrollV, set only by ScrollPixels
	CellHeight int // pixels per terminal row; default 16 at runtime if zero

	ShowHelp  bool
	ShowFlags bool
	NoColor   bool

	// Notices and ephemeral messages
	Notice string
}

// Offset converts the row offset into the pixel offset the scroll threshold
// is expressed in.
func (s UIState) Offset() int {
	return s.ScrollV*s.cellHeight() + s.ScrollPx
}

func (s UIState) cellHeight() int {
	if s.CellHeight <= 0 {
		return DefaultCellHeight
	}
	return s.CellHeight
}

// DefaultCellHeight approximates one terminal row in CSS pixels.
const DefaultCellHeight = 16
