package subgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/domain/domaintest"
	"go.trai.ch/viewgraph/internal/engine/filter"
)

func TestRetain_InputNotYetVisited(t *testing.T) {
	fx := domaintest.Chain(t)

	_, err := retain(fx.Nodes[2], filter.AcceptAll, map[*domain.Node]bool{})
	require.ErrorContains(t, err, domain.ErrMalformedGraph.Error())

	keep, err := retain(fx.Nodes[2], filter.AcceptAll, map[*domain.Node]bool{fx.Nodes[1]: false})
	require.NoError(t, err)
	require.False(t, keep)
}
