package state

// ScrollThreshold is the vertical offset, in pixels, past which the page
// counts as scrolled. The comparison is strict.
const ScrollThreshold = 50

// Appearance is the scroll-derived state of the landing page navigation.
type Appearance struct {
	Scrolled bool
}

// AppearanceAt computes the appearance for a vertical offset.
func AppearanceAt(offset int) Appearance {
	return Appearance{Scrolled: offset > ScrollThreshold}
}

// NavFlags returns the desired values of the scroll-driven navigation flags.
// Flags absent from the result are not touched by Reconcile.
func NavFlags(a Appearance) map[Flag]bool {
	return map[Flag]bool{
		FlagScrolled:        a.Scrolled,
		FlagLandingScrolled: a.Scrolled,
	}
}

// Reconcile applies desired flag values to el and reports whether anything
// changed. Applying the same desired set twice changes nothing the second time.
func Reconcile(el *Element, desired map[Flag]bool) bool {
	if el == nil {
		return false
	}
	changed := false
	for f, on := range desired {
		if el.Has(f) != on {
			el.Set(f, on)
			changed = true
		}
	}
	return changed
}
