package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// GraphBuilder assembles a Graph. It is not safe for concurrent use and is frozen by Build.
type GraphBuilder struct {
	name      string
	nodes     []*Node
	members   map[*Node]struct{}
	owners    map[ValueSpecification]*Node
	terminals map[ValueRequirement]ValueSpecification
	frozen    bool
}

// NewGraphBuilder creates a builder for the named calculation configuration.
func NewGraphBuilder(name string) *GraphBuilder {
	return &GraphBuilder{
		name:      name,
		members:   make(map[*Node]struct{}),
		owners:    make(map[ValueSpecification]*Node),
		terminals: make(map[ValueRequirement]ValueSpecification),
	}
}

// AddNode creates a node for the target computed by fn.
// It returns nil once the builder is frozen.
func (b *GraphBuilder) AddNode(target TargetSpecification, fn FunctionAssignment) *Node {
	if b.frozen {
		return nil
	}
	n := &Node{target: target, function: fn}
	b.nodes = append(b.nodes, n)
	b.members[n] = struct{}{}
	return n
}

// AddInput records that node consumes the outputs of input. Adding the same edge twice is a no-op.
func (b *GraphBuilder) AddInput(node, input *Node) error {
	if err := b.checkMembers(node, input); err != nil {
		return err
	}
	if node == input {
		return zerr.With(ErrCycleDetected, "cycle", node.String()+" -> "+node.String())
	}
	if !node.HasInput(input) {
		node.inputs = append(node.inputs, input)
	}
	return nil
}

// AddOutput records a value produced by node. A specification can have one producer only.
func (b *GraphBuilder) AddOutput(node *Node, spec ValueSpecification) error {
	if err := b.checkMembers(node); err != nil {
		return err
	}
	if owner, exists := b.owners[spec]; exists {
		if owner == node {
			return nil
		}
		return zerr.With(ErrDuplicateOutput, "specification", spec.String())
	}
	b.owners[spec] = node
	node.outputs = append(node.outputs, spec)
	return nil
}

// AddTerminalOutput maps an externally requested requirement to the specification satisfying it
// and marks that specification as a terminal output of its producer.
func (b *GraphBuilder) AddTerminalOutput(req ValueRequirement, spec ValueSpecification) error {
	if b.frozen {
		return ErrGraphFrozen
	}
	owner, ok := b.owners[spec]
	if !ok {
		return zerr.With(ErrUnownedSpecification, "specification", spec.String())
	}
	if existing, mapped := b.terminals[req]; mapped && existing != spec {
		return zerr.With(ErrDuplicateRequirement, "requirement", req.String())
	}
	b.terminals[req] = spec
	if !slices.Contains(owner.terminal, spec) {
		owner.terminal = append(owner.terminal, spec)
	}
	return nil
}

// Build validates the graph, orders it and freezes the builder.
// A cycle in the input relation is rejected with ErrCycleDetected.
func (b *GraphBuilder) Build() (*Graph, error) {
	if b.frozen {
		return nil, ErrGraphFrozen
	}
	order, err := topologicalOrder(b.nodes)
	if err != nil {
		return nil, err
	}
	g, err := newGraph(b.name, order, b.terminals)
	if err != nil {
		return nil, err
	}
	b.frozen = true
	return g, nil
}

func (b *GraphBuilder) checkMembers(nodes ...*Node) error {
	if b.frozen {
		return ErrGraphFrozen
	}
	for _, n := range nodes {
		if _, ok := b.members[n]; !ok {
			return ErrForeignNode
		}
	}
	return nil
}
