// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/viewgraph/internal/core/domain"

// NodeFilter decides whether a single node is locally acceptable.
// Implementations must be side-effect free and must not look at other nodes.
type NodeFilter interface {
	// Accept reports whether the node may stay in the graph.
	Accept(node *domain.Node) bool
}
