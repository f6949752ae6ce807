package state

import "sort"

// Flag is a named presentation flag toggled on a page element.
type Flag string

const (
	// Navigation element flags.
	FlagTransparent     Flag = "transparentMode"
	FlagScrolled        Flag = "scrolledMode"
	FlagLandingScrolled Flag = "landingScrolledMode"

	// Page root flags.
	FlagLandingPage Flag = "landingPageMode"
)

// Element is a flag-bearing presentation target (the navigation bar or the
// page root). The page shell owns elements; controllers only toggle flags.
type Element struct {
	Name  string
	flags map[Flag]struct{}
}

// NewElement returns an element with no flags set.
func NewElement(name string) *Element {
	return &Element{Name: name, flags: map[Flag]struct{}{}}
}

// Has reports whether f is set.
func (e *Element) Has(f Flag) bool {
	if e == nil || e.flags == nil {
		return false
	}
	_, ok := e.flags[f]
	return ok
}

// Set adds or removes f. Setting a flag to its current value is a no-op.
func (e *Element) Set(f Flag, on bool) {
	if e == nil {
		return
	}
	if e.flags == nil {
		e.flags = map[Flag]struct{}{}
	}
	if on {
		e.flags[f] = struct{}{}
	} else {
		delete(e.flags, f)
	}
}

// Flags returns the set flags in sorted order.
func (e *Element) Flags() []Flag {
	if e == nil {
		return nil
	}
	out := make([]Flag, 0, len(e.flags))
	for f := range e.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
