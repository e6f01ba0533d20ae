// Package validity computes the time interval over which a compiled view stays valid.
package validity

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultCacheSize is the number of views a Calculator remembers by default.
const DefaultCacheSize = 128

// WindowOf intersects the function windows of every node in the given graphs.
// No graphs, or graphs without bounds, yield the unbounded window. A single node with an
// inconsistent assignment empties the result.
func WindowOf(graphs ...*domain.Graph) domain.ValidityWindow {
	window := domain.UnboundedWindow()
	for _, g := range graphs {
		for node := range g.Walk() {
			window = window.Intersect(node.Function().Window())
			if window.IsEmpty() {
				return window
			}
		}
	}
	return window
}

// ViewWindow returns the window of every graph of a compiled view.
func ViewWindow(view *domain.CompiledView) domain.ValidityWindow {
	window := domain.UnboundedWindow()
	for g := range view.Graphs() {
		window = window.Intersect(WindowOf(g))
	}
	return window
}

// IsValidFor reports whether every function of the view may be invoked at t.
// Both ends of the window are inclusive.
func IsValidFor(view *domain.CompiledView, t time.Time) bool {
	return ViewWindow(view).Contains(t)
}

// Calculator memoises view windows. Views are immutable, so a window never goes stale
// while its view is alive. It is safe for concurrent use.
//
// Entries are keyed by view pointer and hold their view, so up to the cache size of views
// stay reachable after callers drop them. Call Purge to release them.
type Calculator struct {
	cache *lru.Cache[*domain.CompiledView, domain.ValidityWindow]
}

// NewCalculator creates a Calculator remembering up to size views.
func NewCalculator(size int) (*Calculator, error) {
	cache, err := lru.New[*domain.CompiledView, domain.ValidityWindow](size)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create validity cache"), "size", size)
	}
	return &Calculator{cache: cache}, nil
}

// Window returns the validity window of the view.
func (c *Calculator) Window(view *domain.CompiledView) domain.ValidityWindow {
	if w, ok := c.cache.Get(view); ok {
		return w
	}
	w := ViewWindow(view)
	c.cache.Add(view, w)
	return w
}

// IsValidFor reports whether the view may be executed at t.
func (c *Calculator) IsValidFor(view *domain.CompiledView, t time.Time) bool {
	return c.Window(view).Contains(t)
}

// Purge forgets every remembered view.
func (c *Calculator) Purge() {
	c.cache.Purge()
}

// Len returns the number of remembered views.
func (c *Calculator) Len() int {
	return c.cache.Len()
}
