// Package app implements the application layer for viewgraph.
package app

import (
	"time"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
	"go.trai.ch/viewgraph/internal/engine/validity"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ViewLoader
	resolvers ports.ResolverFactory
	store     ports.LedgerStore
	logger    ports.Logger
	tracer    ports.Tracer
	validity  *validity.Calculator
	now       func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ViewLoader,
	resolvers ports.ResolverFactory,
	store ports.LedgerStore,
	log ports.Logger,
	tracer ports.Tracer,
	calc *validity.Calculator,
) *App {
	return &App{
		loader:    loader,
		resolvers: resolvers,
		store:     store,
		logger:    log,
		tracer:    tracer,
		validity:  calc,
		now:       time.Now,
	}
}

// WithClock replaces the clock used when no instant is given.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithTracer replaces the tracer.
func (a *App) WithTracer(tracer ports.Tracer) *App {
	a.tracer = tracer
	return a
}

func (a *App) load(configPath string) (*domain.Workspace, error) {
	ws, err := a.loader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return ws, nil
}

// restore builds a ledger-ready resolver for ws and reads the stored snapshot.
func (a *App) restore(ws *domain.Workspace, statePath string) (ports.TargetResolver, domain.LedgerSnapshot, error) {
	resolver, err := a.resolvers.NewResolver(ws)
	if err != nil {
		return nil, domain.LedgerSnapshot{}, zerr.Wrap(err, "failed to build resolver")
	}
	snapshot, err := a.store.Load(statePath)
	if err != nil {
		return nil, domain.LedgerSnapshot{}, zerr.Wrap(err, "failed to load ledger")
	}
	if vc := ws.View.VersionCorrection(); len(snapshot.Entries) > 0 &&
		snapshot.VersionCorrection.String() != vc.String() {
		a.logger.Warn("ledger was recorded at a different version-correction",
			"ledger", snapshot.VersionCorrection.String(), "view", vc.String())
	}
	return resolver, snapshot, nil
}
