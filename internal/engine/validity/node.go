package validity

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the validity calculator Graft node.
const NodeID graft.ID = "engine.validity"

func init() {
	graft.Register(graft.Node[*Calculator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Calculator, error) {
			return NewCalculator(DefaultCacheSize)
		},
	})
}
