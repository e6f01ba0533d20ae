// Package filter implements node filters: predicates over a single node's local acceptability.
package filter

import (
	"time"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
)

// Func adapts a plain function to ports.NodeFilter.
type Func func(node *domain.Node) bool

// Accept calls f.
func (f Func) Accept(node *domain.Node) bool {
	return f(node)
}

// AcceptAll accepts every node.
var AcceptAll ports.NodeFilter = Func(func(*domain.Node) bool { return true })

// AcceptNone rejects every node.
var AcceptNone ports.NodeFilter = Func(func(*domain.Node) bool { return false })

// All accepts a node only when every filter accepts it. No filters accepts everything.
func All(filters ...ports.NodeFilter) ports.NodeFilter {
	return Func(func(node *domain.Node) bool {
		for _, f := range filters {
			if !f.Accept(node) {
				return false
			}
		}
		return true
	})
}

// Any accepts a node when at least one filter accepts it. No filters rejects everything.
func Any(filters ...ports.NodeFilter) ports.NodeFilter {
	return Func(func(node *domain.Node) bool {
		for _, f := range filters {
			if f.Accept(node) {
				return true
			}
		}
		return false
	})
}

// ValidAt rejects nodes whose function cannot be invoked at the instant.
func ValidAt(instant time.Time) ports.NodeFilter {
	return Func(func(node *domain.Node) bool {
		return node.Function().Window().Contains(instant)
	})
}
