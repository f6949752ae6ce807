package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Copy     key.Binding
	Home     key.Binding
	Quick    key.Binding
	Flags    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn/space", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "copy install command")),
		Home:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Quick:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "quick start")),
		Flags:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "presentation flags")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// viewportKeys maps the scrolling bindings onto the viewport; the page shell
// keeps every other key for itself.
func (k keyMap) viewportKeys() viewport.KeyMap {
	km := viewport.DefaultKeyMap()
	km.Up = k.Up
	km.Down = k.Down
	km.PageUp = k.PageUp
	km.PageDown = k.PageDown
	km.HalfPageUp = key.NewBinding(key.WithKeys("u", "ctrl+u"))
	km.HalfPageDown = key.NewBinding(key.WithKeys("d", "ctrl+d"))
	return km
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Home, k.Quick, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Copy, k.Home, k.Quick},
		{k.Flags, k.Help, k.Quit},
	}
}
