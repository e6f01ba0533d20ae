package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/viewgraph/internal/adapters/logger"
	"go.trai.ch/viewgraph/internal/core/ports"
)

// NodeID is the unique identifier for the view loader Graft node.
const NodeID graft.ID = "adapter.view_loader"

func init() {
	graft.Register(graft.Node[ports.ViewLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ViewLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
