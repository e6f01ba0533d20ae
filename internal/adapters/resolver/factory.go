package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
)

// NodeID is the unique identifier for the resolver factory Graft node.
const NodeID graft.ID = "adapter.resolver_factory"

// Factory builds Memory resolvers from workspace catalogues.
type Factory struct{}

// NewResolver implements ports.ResolverFactory.
func (Factory) NewResolver(ws *domain.Workspace) (ports.TargetResolver, error) {
	return New(ws.Targets, ws.DeepTypes)
}

func init() {
	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResolverFactory, error) {
			return Factory{}, nil
		},
	})
}
