package domain

import "time"

// Bound is an optional instant. The zero Bound is unbounded.
type Bound struct {
	at      time.Time
	bounded bool
}

// Unbounded returns a Bound that places no constraint.
func Unbounded() Bound {
	return Bound{}
}

// BoundAt returns a Bound at the given instant.
func BoundAt(t time.Time) Bound {
	return Bound{at: t, bounded: true}
}

// Time returns the instant and whether the bound is set.
func (b Bound) Time() (time.Time, bool) {
	return b.at, b.bounded
}

// IsBounded reports whether the bound is set.
func (b Bound) IsBounded() bool {
	return b.bounded
}

// String returns the RFC 3339 instant, or "unbounded".
func (b Bound) String() string {
	if !b.bounded {
		return "unbounded"
	}
	return b.at.UTC().Format(time.RFC3339)
}

// FunctionAssignment is the function chosen for a node by the external function
// resolution service. Only the invocation bounds are interpreted here; Handle is
// carried through unchanged.
type FunctionAssignment struct {
	FunctionID string
	Handle     any
	// Earliest is the earliest instant the compiled function may be invoked at.
	Earliest Bound
	// Latest is the latest instant the compiled function may be invoked at.
	Latest Bound
}

// Consistent reports whether Earliest is not after Latest.
func (f FunctionAssignment) Consistent() bool {
	start, hasStart := f.Earliest.Time()
	end, hasEnd := f.Latest.Time()
	return !hasStart || !hasEnd || !start.After(end)
}

// Window returns the interval over which the function stays valid.
// An inconsistent assignment yields the empty window.
func (f FunctionAssignment) Window() ValidityWindow {
	if !f.Consistent() {
		return EmptyWindow()
	}
	return ValidityWindow{start: f.Earliest, end: f.Latest}
}
