// Package domain contains the core domain models of the dependency graph engine.
package domain

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is an immutable dependency graph for one calculation configuration.
// It is safe for concurrent read access.
type Graph struct {
	name  string
	order []*Node // inputs before dependents
	index map[*Node]int

	dependents map[*Node][]*Node
	terminals  map[ValueRequirement]ValueSpecification
	owners     map[ValueSpecification]*Node
	bySpec     map[ValueSpecification][]ValueRequirement
}

// Name returns the calculation configuration name of the graph.
func (g *Graph) Name() string { return g.name }

// Size returns the node count.
func (g *Graph) Size() int { return len(g.order) }

// Walk yields nodes in dependency order: every node after all of its inputs.
func (g *Graph) Walk() iter.Seq[*Node] {
	return slices.Values(g.order)
}

// Nodes returns the nodes in dependency order.
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.order)
}

// Contains reports whether the node belongs to the graph.
func (g *Graph) Contains(n *Node) bool {
	_, ok := g.index[n]
	return ok
}

// Dependents returns the nodes of this graph that consume n.
func (g *Graph) Dependents(n *Node) []*Node {
	return slices.Clone(g.dependents[n])
}

// TerminalOutputs returns a copy of the requirement -> specification table.
func (g *Graph) TerminalOutputs() map[ValueRequirement]ValueSpecification {
	return maps.Clone(g.terminals)
}

// Requirements yields the requirement -> specification table.
func (g *Graph) Requirements() iter.Seq2[ValueRequirement, ValueSpecification] {
	return maps.All(g.terminals)
}

// Owner returns the node producing the specification.
func (g *Graph) Owner(spec ValueSpecification) (*Node, bool) {
	n, ok := g.owners[spec]
	return n, ok
}

// RequirementsOf returns the requirements satisfied by the node's terminal outputs.
func (g *Graph) RequirementsOf(n *Node) []ValueRequirement {
	var reqs []ValueRequirement
	for _, spec := range n.terminal {
		reqs = append(reqs, g.bySpec[spec]...)
	}
	return reqs
}

// AssembleGraph creates a graph from nodes of already-built graphs.
// Every input of every node must be part of nodes, and every terminal specification
// must be an output of one of them.
func AssembleGraph(name string, nodes []*Node, terminals map[ValueRequirement]ValueSpecification) (*Graph, error) {
	members := make(map[*Node]struct{}, len(nodes))
	for _, n := range nodes {
		members[n] = struct{}{}
	}
	for _, n := range nodes {
		for _, in := range n.inputs {
			if _, ok := members[in]; !ok {
				return nil, zerr.With(zerr.With(ErrMissingInput, "node", n.String()), "input", in.String())
			}
		}
	}
	order, err := topologicalOrder(nodes)
	if err != nil {
		return nil, err
	}
	return newGraph(name, order, terminals)
}

func newGraph(name string, order []*Node, terminals map[ValueRequirement]ValueSpecification) (*Graph, error) {
	g := &Graph{
		name:       name,
		order:      order,
		index:      make(map[*Node]int, len(order)),
		dependents: make(map[*Node][]*Node),
		terminals:  make(map[ValueRequirement]ValueSpecification, len(terminals)),
		owners:     make(map[ValueSpecification]*Node),
		bySpec:     make(map[ValueSpecification][]ValueRequirement),
	}

	for i, n := range order {
		g.index[n] = i
		for _, spec := range n.outputs {
			if other, exists := g.owners[spec]; exists && other != n {
				return nil, zerr.With(ErrDuplicateOutput, "specification", spec.String())
			}
			g.owners[spec] = n
		}
		for _, in := range n.inputs {
			g.dependents[in] = append(g.dependents[in], n)
		}
	}

	for req, spec := range terminals {
		owner, ok := g.owners[spec]
		if !ok || !slices.Contains(owner.terminal, spec) {
			return nil, zerr.With(ErrUnownedSpecification, "specification", spec.String())
		}
		g.terminals[req] = spec
		g.bySpec[spec] = append(g.bySpec[spec], req)
	}
	for _, reqs := range g.bySpec {
		slices.SortFunc(reqs, func(a, b ValueRequirement) int {
			return strings.Compare(a.String(), b.String())
		})
	}

	return g, nil
}

// topologicalOrder orders nodes inputs-first with a depth-first walk.
// Roots are taken in the given order, so the result is deterministic.
func topologicalOrder(nodes []*Node) ([]*Node, error) {
	const (
		unvisited = iota
		visiting
		visited
	)

	order := make([]*Node, 0, len(nodes))
	state := make(map[*Node]int, len(nodes))
	var path []*Node

	var visit func(n *Node) error
	visit = func(n *Node) error {
		state[n] = visiting
		path = append(path, n)

		for _, in := range n.inputs {
			switch state[in] {
			case visiting:
				return buildCycleError(path, in)
			case unvisited:
				if err := visit(in); err != nil {
					return err
				}
			}
		}

		state[n] = visited
		path = path[:len(path)-1]
		order = append(order, n)
		return nil
	}

	for _, n := range nodes {
		if state[n] == unvisited {
			if err := visit(n); err != nil {
				return nil, err
			}
		}
	}
	return order, nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []*Node, back *Node) error {
	startIdx := slices.Index(path, back)
	parts := make([]string, 0, len(path)-startIdx+1)
	for _, n := range path[startIdx:] {
		parts = append(parts, n.String())
	}
	parts = append(parts, back.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}
