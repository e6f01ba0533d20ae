package domain

import (
	"iter"
	"slices"
)

// Node is one unit of computation in a dependency graph.
// Nodes are created through a GraphBuilder and never change once it is frozen, which lets a
// pruned graph share the nodes of the graph it was derived from.
type Node struct {
	target   TargetSpecification
	function FunctionAssignment
	inputs   []*Node
	outputs  []ValueSpecification
	terminal []ValueSpecification
}

// Target returns the target specification the node computes for.
func (n *Node) Target() TargetSpecification { return n.target }

// Function returns the function assignment of the node.
func (n *Node) Function() FunctionAssignment { return n.function }

// Inputs yields the nodes whose outputs this node consumes, in the order they were added.
func (n *Node) Inputs() iter.Seq[*Node] {
	return slices.Values(n.inputs)
}

// InputCount returns the number of input nodes.
func (n *Node) InputCount() int { return len(n.inputs) }

// HasInput reports whether other is a direct input of n.
func (n *Node) HasInput(other *Node) bool {
	return slices.Contains(n.inputs, other)
}

// Outputs returns every value the node produces.
func (n *Node) Outputs() []ValueSpecification {
	return slices.Clone(n.outputs)
}

// TerminalOutputs returns the outputs that were requested directly by the caller.
func (n *Node) TerminalOutputs() []ValueSpecification {
	return slices.Clone(n.terminal)
}

// IsTerminal reports whether the node owns at least one terminal output.
func (n *Node) IsTerminal() bool {
	return len(n.terminal) > 0
}

// String returns "function(target)".
func (n *Node) String() string {
	name := n.function.FunctionID
	if name == "" {
		name = "node"
	}
	return name + "(" + n.target.String() + ")"
}
