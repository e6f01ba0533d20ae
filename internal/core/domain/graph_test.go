package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/domain/domaintest"
	"go.trai.ch/zerr"
)

func TestGraphBuilder_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		edges []domaintest.Edge
		size  int
	}{
		{
			name:  "Two Node Cycle",
			size:  2,
			edges: []domaintest.Edge{{From: 1, To: 2}, {From: 2, To: 1}},
		},
		{
			name:  "Three Node Cycle",
			size:  3,
			edges: []domaintest.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}},
		},
		{
			name:  "Cycle Behind Acyclic Prefix",
			size:  4,
			edges: []domaintest.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 4, To: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := domain.NewGraphBuilder("default")
			nodes := make([]*domain.Node, tt.size+1)
			for n := 1; n <= tt.size; n++ {
				nodes[n] = b.AddNode(domaintest.Target(n), domain.FunctionAssignment{})
			}
			for _, e := range tt.edges {
				require.NoError(t, b.AddInput(nodes[e.To], nodes[e.From]))
			}

			_, err := b.Build()
			require.Error(t, err)
			require.ErrorContains(t, err, domain.ErrCycleDetected.Error())

			zErr, ok := err.(*zerr.Error)
			require.True(t, ok, "expected *zerr.Error, got %T", err)
			cycle, ok := zErr.Metadata()["cycle"].(string)
			require.True(t, ok)
			assert.NotEmpty(t, cycle)
		})
	}
}

func TestGraphBuilder_SelfInput(t *testing.T) {
	b := domain.NewGraphBuilder("default")
	n := b.AddNode(domaintest.Target(1), domain.FunctionAssignment{})

	err := b.AddInput(n, n)
	require.ErrorContains(t, err, domain.ErrCycleDetected.Error())
}

func TestGraphBuilder_ForeignNode(t *testing.T) {
	a := domain.NewGraphBuilder("a")
	b := domain.NewGraphBuilder("b")
	na := a.AddNode(domaintest.Target(1), domain.FunctionAssignment{})
	nb := b.AddNode(domaintest.Target(2), domain.FunctionAssignment{})

	require.ErrorContains(t, b.AddInput(nb, na), domain.ErrForeignNode.Error())
	require.ErrorContains(t, b.AddOutput(na, domaintest.Spec(1)), domain.ErrForeignNode.Error())
}

func TestGraphBuilder_TerminalOutputNeedsOwner(t *testing.T) {
	b := domain.NewGraphBuilder("default")
	n := b.AddNode(domaintest.Target(1), domain.FunctionAssignment{})
	require.NoError(t, b.AddOutput(n, domaintest.Spec(1)))

	err := b.AddTerminalOutput(domaintest.Req(2), domaintest.Spec(2))
	require.ErrorContains(t, err, domain.ErrUnownedSpecification.Error())

	require.NoError(t, b.AddTerminalOutput(domaintest.Req(1), domaintest.Spec(1)))
	err = b.AddTerminalOutput(domaintest.Req(1), domain.NewValueSpecification("Other", domaintest.Target(1), domain.EmptyProperties))
	require.Error(t, err)
}

func TestGraphBuilder_DuplicateOutput(t *testing.T) {
	b := domain.NewGraphBuilder("default")
	n1 := b.AddNode(domaintest.Target(1), domain.FunctionAssignment{})
	n2 := b.AddNode(domaintest.Target(2), domain.FunctionAssignment{})

	require.NoError(t, b.AddOutput(n1, domaintest.Spec(1)))
	require.NoError(t, b.AddOutput(n1, domaintest.Spec(1)), "re-adding to the same producer is a no-op")
	require.ErrorContains(t, b.AddOutput(n2, domaintest.Spec(1)), domain.ErrDuplicateOutput.Error())
}

func TestGraphBuilder_Frozen(t *testing.T) {
	b := domain.NewGraphBuilder("default")
	n := b.AddNode(domaintest.Target(1), domain.FunctionAssignment{})
	_, err := b.Build()
	require.NoError(t, err)

	assert.Nil(t, b.AddNode(domaintest.Target(2), domain.FunctionAssignment{}))
	require.ErrorContains(t, b.AddOutput(n, domaintest.Spec(1)), domain.ErrGraphFrozen.Error())
	_, err = b.Build()
	require.ErrorContains(t, err, domain.ErrGraphFrozen.Error())
}

func TestGraph_Walk_DependencyOrder(t *testing.T) {
	fx := domaintest.Diamond(t)
	g := fx.Graph

	require.Equal(t, 8, g.Size())

	seen := make(map[*domain.Node]bool)
	for n := range g.Walk() {
		for in := range n.Inputs() {
			assert.True(t, seen[in], "%s visited before its input %s", n, in)
		}
		seen[n] = true
	}
	assert.Len(t, seen, 8)
}

func TestGraph_Structure(t *testing.T) {
	fx := domaintest.Diamond(t)
	g := fx.Graph

	assert.ElementsMatch(t, []*domain.Node{fx.Nodes[5], fx.Nodes[6]}, g.Dependents(fx.Nodes[2]))
	assert.Empty(t, g.Dependents(fx.Nodes[8]))
	assert.Equal(t, 2, fx.Nodes[7].InputCount())
	assert.True(t, fx.Nodes[8].HasInput(fx.Nodes[4]))
	assert.False(t, fx.Nodes[8].HasInput(fx.Nodes[1]))

	owner, ok := g.Owner(domaintest.Spec(7))
	require.True(t, ok)
	assert.Same(t, fx.Nodes[7], owner)

	assert.True(t, fx.Nodes[4].IsTerminal())
	assert.False(t, fx.Nodes[5].IsTerminal())
	assert.Equal(t, []domain.ValueRequirement{domaintest.Req(8)}, g.RequirementsOf(fx.Nodes[8]))
	assert.Empty(t, g.RequirementsOf(fx.Nodes[1]))

	terminals := g.TerminalOutputs()
	assert.Len(t, terminals, 3)
	assert.Equal(t, domaintest.Spec(4), terminals[domaintest.Req(4)])
}

func TestGraph_Walk_DeterministicRoots(t *testing.T) {
	fx := domaintest.Build(t, domaintest.Options{Size: 3})

	var order []*domain.Node
	for n := range fx.Graph.Walk() {
		order = append(order, n)
	}
	assert.Equal(t, []*domain.Node{fx.Nodes[1], fx.Nodes[2], fx.Nodes[3]}, order)
}

func TestAssembleGraph(t *testing.T) {
	fx := domaintest.Diamond(t)

	t.Run("Missing input", func(t *testing.T) {
		_, err := domain.AssembleGraph("default", []*domain.Node{fx.Nodes[4]}, nil)
		require.ErrorContains(t, err, domain.ErrMissingInput.Error())
	})

	t.Run("Unowned terminal", func(t *testing.T) {
		terminals := map[domain.ValueRequirement]domain.ValueSpecification{
			domaintest.Req(4): domaintest.Spec(4),
		}
		_, err := domain.AssembleGraph("default", []*domain.Node{fx.Nodes[1]}, terminals)
		require.ErrorContains(t, err, domain.ErrUnownedSpecification.Error())
	})

	t.Run("Shares nodes", func(t *testing.T) {
		nodes := []*domain.Node{fx.Nodes[4], fx.Nodes[1]}
		terminals := map[domain.ValueRequirement]domain.ValueSpecification{
			domaintest.Req(4): domaintest.Spec(4),
		}
		g, err := domain.AssembleGraph("default", nodes, terminals)
		require.NoError(t, err)
		assert.Equal(t, 2, g.Size())
		assert.True(t, g.Contains(fx.Nodes[1]))
		assert.Equal(t, []*domain.Node{fx.Nodes[1], fx.Nodes[4]}, slices.Collect(g.Walk()))
	})
}
