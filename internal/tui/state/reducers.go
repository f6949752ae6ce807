package state

// SwitchView selects v and resets the scroll position, like a page navigation.
func SwitchView(s UIState, v View) UIState {
	if s.View == v {
		return s
	}
	s.View = v
	s.ScrollV = 0
	s.ScrollPx = 0
	s.Notice = v.String()
	return s
}

// ToggleHelp flips the help overlay.
func ToggleHelp(s UIState) UIState {
	s.ShowHelp = !s.ShowHelp
	return s
}

// ToggleFlags flips the presentation flag chips.
func ToggleFlags(s UIState) UIState {
	s.ShowFlags = !s.ShowFlags
	return s
}

// Resize updates the terminal geometry. Non-positive values are ignored.
func Resize(s UIState, width, height int) UIState {
	if width > 0 {
		s.Width = width
	}
	if height > 0 {
		s.Height = height
	}
	return s
}

// Scroll records the viewport row offset.
func Scroll(s UIState, rows int) UIState {
	if rows < 0 {
		rows = 0
	}
	s.ScrollV = rows
	s.ScrollPx = 0
	return s
}

// ScrollPixels records an exact pixel offset: the whole rows it spans plus
// the remainder, so Offset returns px unchanged.
func ScrollPixels(s UIState, px int) UIState {
	if px < 0 {
		px = 0
	}
	h := s.cellHeight()
	s.ScrollV = px / h
	s.ScrollPx = px % h
	return s
}

// ClearNotice drops the ephemeral notice.
func ClearNotice(s UIState) UIState {
	s.Notice = ""
	return s
}
