package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/viewgraph/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/viewgraph/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/viewgraph/internal/adapters/resolver"  //nolint:depguard // Wired in app layer
	"go.trai.ch/viewgraph/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.trai.ch/viewgraph/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/viewgraph/internal/core/ports"
	"go.trai.ch/viewgraph/internal/engine/validity"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			state.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			validity.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, tracer), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ViewLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LedgerStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	calc, err := graft.Dep[*validity.Calculator](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolvers, store, log, tracer, calc), nil
}
