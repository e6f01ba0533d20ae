// Package domaintest builds small dependency graphs for tests.
package domaintest

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/viewgraph/internal/core/domain"
)

// ValueName is the value name every fixture node produces.
const ValueName = "Value"

// Epoch is the compilation instant used by fixture views.
var Epoch = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

// ID returns the identifier of fixture node n.
func ID(n int) domain.UniqueID {
	return domain.NewUniqueID("Test", strconv.Itoa(n))
}

// Target returns the target of fixture node n.
func Target(n int) domain.TargetSpecification {
	return domain.NewTargetSpecification(domain.TargetTypePrimitive, ID(n))
}

// Spec returns the output of fixture node n.
func Spec(n int) domain.ValueSpecification {
	return domain.NewValueSpecification(ValueName, Target(n), domain.EmptyProperties)
}

// Req returns the requirement satisfied by a terminal fixture node n.
func Req(n int) domain.ValueRequirement {
	return domain.NewValueRequirement(ValueName, Target(n), domain.EmptyProperties)
}

// Edge makes From an input of To.
type Edge struct {
	From int
	To   int
}

// Fixture is a built graph plus its nodes by number.
type Fixture struct {
	Graph *domain.Graph
	Nodes map[int]*domain.Node
}

// Options configures Build.
type Options struct {
	Name      string
	Size      int
	Edges     []Edge
	Terminals []int
	Functions map[int]domain.FunctionAssignment
}

// Build creates nodes 1..Size, each producing Spec(n), wires the edges and maps Req(n) to
// Spec(n) for every terminal node.
func Build(t testing.TB, opts Options) *Fixture {
	t.Helper()

	name := opts.Name
	if name == "" {
		name = "default"
	}
	b := domain.NewGraphBuilder(name)
	nodes := make(map[int]*domain.Node, opts.Size)
	for n := 1; n <= opts.Size; n++ {
		fn, ok := opts.Functions[n]
		if !ok {
			fn = domain.FunctionAssignment{FunctionID: "F" + strconv.Itoa(n)}
		}
		nodes[n] = b.AddNode(Target(n), fn)
		require.NoError(t, b.AddOutput(nodes[n], Spec(n)))
	}
	for _, e := range opts.Edges {
		require.NoError(t, b.AddInput(nodes[e.To], nodes[e.From]))
	}
	for _, n := range opts.Terminals {
		require.NoError(t, b.AddTerminalOutput(Req(n), Spec(n)))
	}
	g, err := b.Build()
	require.NoError(t, err)
	return &Fixture{Graph: g, Nodes: nodes}
}

// Chain is N1 -> N2, with N2 terminal.
func Chain(t testing.TB) *Fixture {
	t.Helper()
	return Build(t, Options{
		Size:      2,
		Edges:     []Edge{{1, 2}},
		Terminals: []int{2},
	})
}

// Diamond is N1->N4*; N2->N5,N6; N3->N6; N5,N6->N7*; N4,N7->N8*.
func Diamond(t testing.TB) *Fixture {
	t.Helper()
	return Build(t, Options{
		Size: 8,
		Edges: []Edge{
			{1, 4},
			{2, 5}, {2, 6},
			{3, 6},
			{5, 7}, {6, 7},
			{4, 8}, {7, 8},
		},
		Terminals: []int{4, 7, 8},
	})
}
