package filter

import (
	"go.trai.ch/viewgraph/internal/core/domain"
)

// InvalidTargetFilter rejects nodes whose target identifier is one of a set of invalidated
// identifiers. Matching is exact: a different or missing version token on the same object is
// accepted.
type InvalidTargetFilter struct {
	invalid map[domain.UniqueID]struct{}
}

// NewInvalidTargetFilter creates a filter for the given identifiers.
func NewInvalidTargetFilter(ids ...domain.UniqueID) *InvalidTargetFilter {
	invalid := make(map[domain.UniqueID]struct{}, len(ids))
	for _, id := range ids {
		invalid[id] = struct{}{}
	}
	return &InvalidTargetFilter{invalid: invalid}
}

// Accept returns false iff the node's target identifier is invalidated.
func (f *InvalidTargetFilter) Accept(node *domain.Node) bool {
	target := node.Target()
	if target.IsNull() {
		return true
	}
	_, invalid := f.invalid[target.UniqueID()]
	return !invalid
}

// Len returns the number of invalidated identifiers.
func (f *InvalidTargetFilter) Len() int {
	return len(f.invalid)
}

// InvalidObjectFilter rejects nodes targeting any version of the given objects.
type InvalidObjectFilter struct {
	invalid map[domain.ObjectID]struct{}
}

// NewInvalidObjectFilter creates a filter for the given object identifiers.
func NewInvalidObjectFilter(ids ...domain.ObjectID) *InvalidObjectFilter {
	invalid := make(map[domain.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		invalid[id] = struct{}{}
	}
	return &InvalidObjectFilter{invalid: invalid}
}

// Accept returns false iff the node targets a version of an invalidated object.
func (f *InvalidObjectFilter) Accept(node *domain.Node) bool {
	target := node.Target()
	if target.IsNull() {
		return true
	}
	_, invalid := f.invalid[target.UniqueID().ObjectID()]
	return !invalid
}
