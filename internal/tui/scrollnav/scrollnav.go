// Package scrollnav keeps the landing page navigation bar in sync with the
// viewport scroll position while the landing page is mounted.
//
// A Controller is Idle until Mount, then Active until Release. While Active it
// owns four presentation flags: transparentMode, scrolledMode and
// landingScrolledMode on the navigation element, and landingPageMode on the
// page root. Release removes every one of them and drops the scroll
// subscription, so nothing leaks into the next view.
package scrollnav

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gtunnel-site/internal/tui/state"
)

// Threshold is the strict scroll offset, in pixels, past which the page is
// considered scrolled.
const Threshold = state.ScrollThreshold

// ErrTargetNotFound is logged when the navigation element or page root is
// absent at apply time. It never leaves the controller.
var ErrTargetNotFound = errors.New("presentation target not found")

// IsScrolled reports whether offset is past Threshold.
func IsScrolled(offset int) bool {
	return state.AppearanceAt(offset).Scrolled
}

// Viewport is the scroll source the controller observes.
type Viewport interface {
	// ScrollOffset returns the current vertical offset in pixels.
	ScrollOffset() int
	// Subscribe registers fn for scroll notifications and returns a func that
	// removes the registration.
	Subscribe(fn func()) (cancel func())
}

// Locator finds a presentation target. It returns nil if the target is not
// mounted.
type Locator func() *state.Element

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller is the scroll appearance controller. It is driven from a single
// event loop and is not safe for concurrent use.
type Controller struct {
	vp   Viewport
	nav  Locator
	root Locator
	log  zerolog.Logger

	active      bool
	unsubscribe func()
}

// New returns an Idle controller.
func New(vp Viewport, nav, root Locator, opts ...Option) *Controller {
	c := &Controller{vp: vp, nav: nav, root: root, log: log.Logger}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With().Str("component", "scrollnav").Logger()
	return c
}

// Active reports whether the controller is mounted.
func (c *Controller) Active() bool { return c.active }

// Mount applies the landing page flags, subscribes to scroll notifications
// and computes the initial scroll state. Mounting twice is a no-op.
func (c *Controller) Mount() {
	if c.active {
		return
	}
	c.active = true
	c.unsubscribe = c.vp.Subscribe(c.HandleScroll)
	c.HandleScroll()
	c.log.Debug().Msg("mounted")
}

// HandleScroll recomputes the scroll state from the current offset and
// reconciles the flags on both targets. Targets that cannot be located are
// skipped for this cycle and picked up again on the next notification. It
// does nothing while Idle.
func (c *Controller) HandleScroll() {
	if !c.active {
		return
	}
	if root := c.locate(c.root, "root"); root != nil {
		state.Reconcile(root, map[state.Flag]bool{state.FlagLandingPage: true})
	}
	nav := c.locate(c.nav, "nav")
	if nav == nil {
		return
	}
	offset := c.vp.ScrollOffset()
	want := state.NavFlags(state.AppearanceAt(offset))
	want[state.FlagTransparent] = true
	if state.Reconcile(nav, want) {
		c.log.Trace().Int("offset", offset).Strs("flags", flagNames(nav)).Msg("navigation flags changed")
	}
}

// Release removes every flag the controller may have applied and cancels the
// scroll subscription. Releasing an Idle controller is a no-op.
func (c *Controller) Release() {
	if !c.active {
		return
	}
	c.active = false

	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if nav := c.locate(c.nav, "nav"); nav != nil {
		nav.Set(state.FlagTransparent, false)
		nav.Set(state.FlagLandingScrolled, false)
		nav.Set(state.FlagScrolled, false)
	}
	if root := c.locate(c.root, "root"); root != nil {
		root.Set(state.FlagLandingPage, false)
	}
	c.log.Debug().Msg("released")
}

// Scope mounts the controller, runs fn and releases the controller on every
// exit path, including a panic in fn.
func (c *Controller) Scope(fn func() error) error {
	c.Mount()
	defer c.Release()
	return fn()
}

func (c *Controller) locate(l Locator, name string) *state.Element {
	var el *state.Element
	if l != nil {
		el = l()
	}
	if el == nil {
		c.log.Debug().Err(fmt.Errorf("%s: %w", name, ErrTargetNotFound)).Msg("skipping cycle")
	}
	return el
}

func flagNames(el *state.Element) []string {
	fs := el.Flags()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}
