package scrollnav

import "sort"

// Source is a Viewport backed by an offset func. The owner calls Notify after
// every scroll; subscribers read the offset at dispatch time, so a burst of
// scrolls collapses into the latest position.
type Source struct {
	offset func() int
	subs   map[int]func()
	next   int
}

// NewSource returns a Source reading offsets from fn.
func NewSource(fn func() int) *Source {
	return &Source{offset: fn, subs: map[int]func(){}}
}

// ScrollOffset implements Viewport.
func (s *Source) ScrollOffset() int {
	if s.offset == nil {
		return 0
	}
	return s.offset()
}

// Subscribe implements Viewport. Calling the returned cancel func more than
// once is safe.
func (s *Source) Subscribe(fn func()) func() {
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// Subscribers returns the number of live subscriptions.
func (s *Source) Subscribers() int { return len(s.subs) }

// Notify dispatches a scroll notification to every subscriber in
// registration order.
func (s *Source) Notify() {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := s.subs[id]; ok {
			fn()
		}
	}
}
