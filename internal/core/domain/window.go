package domain

import "time"

// ValidityWindow is an inclusive interval of instants. Either end may be unbounded.
// The zero value is the unbounded window.
type ValidityWindow struct {
	start Bound
	end   Bound
	empty bool
}

// UnboundedWindow contains every instant.
func UnboundedWindow() ValidityWindow {
	return ValidityWindow{}
}

// EmptyWindow contains no instant.
func EmptyWindow() ValidityWindow {
	return ValidityWindow{empty: true}
}

// NewValidityWindow creates a window; start after end yields the empty window.
func NewValidityWindow(start, end Bound) ValidityWindow {
	w := ValidityWindow{start: start, end: end}
	if w.inverted() {
		return EmptyWindow()
	}
	return w
}

// Start returns the lower bound.
func (w ValidityWindow) Start() Bound { return w.start }

// End returns the upper bound.
func (w ValidityWindow) End() Bound { return w.end }

// IsEmpty reports whether no instant lies in the window.
func (w ValidityWindow) IsEmpty() bool { return w.empty }

// Contains reports whether start <= t <= end.
func (w ValidityWindow) Contains(t time.Time) bool {
	if w.empty {
		return false
	}
	if start, ok := w.start.Time(); ok && t.Before(start) {
		return false
	}
	if end, ok := w.end.Time(); ok && t.After(end) {
		return false
	}
	return true
}

// Intersect returns the overlap of both windows.
func (w ValidityWindow) Intersect(other ValidityWindow) ValidityWindow {
	if w.empty || other.empty {
		return EmptyWindow()
	}
	out := ValidityWindow{
		start: laterBound(w.start, other.start),
		end:   earlierBound(w.end, other.end),
	}
	if out.inverted() {
		return EmptyWindow()
	}
	return out
}

// String returns "[start, end]" or "empty".
func (w ValidityWindow) String() string {
	if w.empty {
		return "empty"
	}
	return "[" + w.start.String() + ", " + w.end.String() + "]"
}

func (w ValidityWindow) inverted() bool {
	start, hasStart := w.start.Time()
	end, hasEnd := w.end.Time()
	return hasStart && hasEnd && start.After(end)
}

// laterBound picks the tighter lower bound; an unbounded side adds no constraint.
func laterBound(a, b Bound) Bound {
	at, aok := a.Time()
	bt, bok := b.Time()
	switch {
	case !aok:
		return b
	case !bok:
		return a
	case bt.After(at):
		return b
	default:
		return a
	}
}

// earlierBound picks the tighter upper bound.
func earlierBound(a, b Bound) Bound {
	at, aok := a.Time()
	bt, bok := b.Time()
	switch {
	case !aok:
		return b
	case !bok:
		return a
	case bt.Before(at):
		return b
	default:
		return a
	}
}
