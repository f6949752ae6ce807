package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gtunnel-site/internal/clipboard"
	"gtunnel-site/internal/site"
	"gtunnel-site/internal/tui/copyfeedback"
	"gtunnel-site/internal/tui/scrollnav"
	"gtunnel-site/internal/tui/state"
	"gtunnel-site/internal/tui/views/landing"
	"gtunnel-site/internal/tui/widgets/flagchips"
	"gtunnel-site/internal/tui/widgets/helpoverlay"
	"gtunnel-site/internal/tui/widgets/navbar"
	"gtunnel-site/internal/tui/widgets/statusbar"
)

// copyTimeout bounds a single clipboard write.
const copyTimeout = 5 * time.Second

// Options configures the landing page program.
type Options struct {
	InstallCommand string
	Clipboard      clipboard.Writer
	CellHeight     int
	NoColor        bool
	AltScreen      bool
	Mouse          bool
	Logger         *zerolog.Logger
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return log.Logger
}

// Run shows the landing page until the user quits or ctx is done. The
// scroll controller and the copy widget are torn down on every exit path.
func Run(ctx context.Context, o Options) error {
	m := newModel(ctx, o)
	defer m.close()

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if o.Mouse {
		popts = append(popts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, popts...)
	m.send = p.Send
	_, err := p.Run()
	return err
}

// Render returns a single frame of the landing page scrolled to offsetPx,
// with the scroll controller mounted for the duration of the render.
func Render(o Options, width, height, offsetPx int) string {
	m := newModel(context.Background(), o)
	defer m.copy.Close()

	var out string
	_ = m.ctrl.Scope(func() error {
		m.resize(width, height)
		m.scrollToPixels(offsetPx)
		out = m.View()
		return nil
	})
	return out
}

// ===== Model =====

type copyDoneMsg struct{ copied bool }

type copyChangedMsg struct{ copied bool }

type model struct {
	ctx  context.Context
	opts Options
	log  zerolog.Logger
	send func(tea.Msg)

	ui   state.UIState
	keys keyMap
	vp   viewport.Model

	// presentation targets owned by the page shell
	nav  *state.Element
	root *state.Element

	scroll *scrollnav.Source
	ctrl   *scrollnav.Controller
	copy   *copyfeedback.Widget

	help   helpoverlay.HelpOverlay
	status statusbar.StatusBar
}

func newModel(ctx context.Context, o Options) *model {
	if o.InstallCommand == "" {
		o.InstallCommand = site.InstallCommand
	}
	if o.CellHeight <= 0 {
		o.CellHeight = state.DefaultCellHeight
	}
	m := &model{
		ctx:    ctx,
		opts:   o,
		log:    o.logger(),
		ui:     state.UIState{View: state.Landing, CellHeight: o.CellHeight, NoColor: o.NoColor, Width: 80, Height: 24},
		keys:   defaultKeyMap(),
		nav:    state.NewElement("navbar"),
		root:   state.NewElement("root"),
		help:   helpoverlay.NewHelpOverlay(),
		status: statusbar.NewStatusBar(),
	}
	m.vp = viewport.New(80, 24)
	m.vp.KeyMap = m.keys.viewportKeys()
	m.vp.MouseWheelEnabled = o.Mouse

	m.scroll = scrollnav.NewSource(func() int { return m.ui.Offset() })
	m.ctrl = scrollnav.New(m.scroll,
		func() *state.Element { return m.nav },
		func() *state.Element { return m.root },
		scrollnav.WithLogger(m.log),
	)
	m.copy = copyfeedback.New(o.Clipboard, o.InstallCommand,
		copyfeedback.WithLogger(m.log),
		copyfeedback.WithOnChange(func(copied bool) {
			if m.send != nil {
				m.send(copyChangedMsg{copied: copied})
			}
		}),
	)
	m.refresh()
	return m
}

func (m *model) Init() tea.Cmd {
	if m.ui.View == state.Landing {
		m.ctrl.Mount()
	}
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// The copy widget is closed by Run once the loop has stopped;
			// its change callback sends into the program.
			m.ctrl.Release()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Copy):
			m.ui = state.ClearNotice(m.ui)
			return m, m.requestCopy()
		case key.Matches(msg, m.keys.Home):
			m.show(state.Landing)
			return m, nil
		case key.Matches(msg, m.keys.Quick):
			m.show(state.QuickStart)
			return m, nil
		case key.Matches(msg, m.keys.Flags):
			m.ui = state.ToggleFlags(m.ui)
			m.layout()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.ui = state.ToggleHelp(m.ui)
			m.layout()
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.vp.GotoTop()
			m.syncScroll()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.vp.GotoBottom()
			m.syncScroll()
			return m, nil
		}

	case copyDoneMsg:
		if msg.copied {
			m.ui.Notice = "Copied install command"
		}
		m.refresh()
		return m, nil

	case copyChangedMsg:
		if !msg.copied {
			m.ui = state.ClearNotice(m.ui)
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	m.syncScroll()
	return m, cmd
}

func (m *model) View() string {
	var b strings.Builder
	current := ""
	if m.ui.View == state.QuickStart {
		current = "Quick Start"
	}
	b.WriteString(navbar.View(m.nav, site.Nav, navbar.Options{Width: m.ui.Width, NoColor: m.ui.NoColor, Current: current}))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *model) footer() string {
	var parts []string
	if m.ui.ShowFlags {
		parts = append(parts, flagchips.View(m.ui.NoColor, m.nav, m.root))
	}
	parts = append(parts, faintStyle.Render(m.status.View(m.ui)))
	parts = append(parts, m.help.View(m.ui, m.keys))
	return strings.Join(parts, "\n")
}

// ===== helpers =====

var faintStyle = lipgloss.NewStyle().Faint(true)

func (m *model) resize(width, height int) {
	m.ui = state.Resize(m.ui, width, height)
	m.layout()
}

// layout sizes the viewport to what the navbar and footer leave over, then
// re-renders the content for the new width.
func (m *model) layout() {
	h := m.ui.Height - navbar.Height - lipgloss.Height(m.footer()) - 1
	if h < 1 {
		h = 1
	}
	m.vp.Width = m.ui.Width
	m.vp.Height = h
	m.refresh()
}

// refresh re-renders the page content; the copy button lives inside it.
func (m *model) refresh() {
	o := landing.Options{Width: m.ui.Width, NoColor: m.ui.NoColor}
	var content string
	switch m.ui.View {
	case state.QuickStart:
		content = landing.QuickStart(m.opts.InstallCommand, o)
	default:
		content = landing.Page(m.opts.InstallCommand, m.copy, o)
	}
	m.vp.SetContent(content)
	m.syncScroll()
}

// syncScroll records the viewport offset and notifies scroll subscribers
// when it moved.
func (m *model) syncScroll() {
	if m.vp.YOffset == m.ui.ScrollV {
		return
	}
	m.ui = state.Scroll(m.ui, m.vp.YOffset)
	m.scroll.Notify()
}

// scrollToPixels shows the row containing px and reports px itself as the
// scroll offset, so offsets between rows still cross the threshold exactly.
// A viewport too short to reach px reports the row it stopped at.
func (m *model) scrollToPixels(px int) {
	px = max(px, 0)
	row := px / m.ui.CellHeight
	m.vp.SetYOffset(row)
	if m.vp.YOffset == row {
		m.ui = state.ScrollPixels(m.ui, px)
	} else {
		m.ui = state.Scroll(m.ui, m.vp.YOffset)
	}
	m.scroll.Notify()
}

// show navigates between views. Leaving the landing page releases the scroll
// controller so its flags never reach the quick start page.
func (m *model) show(v state.View) {
	if m.ui.View == v {
		return
	}
	if m.ui.View == state.Landing {
		m.ctrl.Release()
	}
	m.ui = state.SwitchView(m.ui, v)
	m.vp.GotoTop()
	m.refresh()
	if v == state.Landing {
		m.ctrl.Mount()
	}
}

func (m *model) requestCopy() tea.Cmd {
	ctx, w := m.ctx, m.copy
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, copyTimeout)
		defer cancel()
		w.RequestCopy(ctx)
		return copyDoneMsg{copied: w.Copied()}
	}
}

func (m *model) close() {
	m.ctrl.Release()
	m.copy.Close()
}
