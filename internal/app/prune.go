package app

import (
	"context"
	"slices"
	"time"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
	"go.trai.ch/viewgraph/internal/engine/filter"
	"go.trai.ch/viewgraph/internal/engine/ledger"
	"go.trai.ch/viewgraph/internal/engine/subgraph"
	"go.trai.ch/zerr"
)

// PruneOptions configuration for the Prune method.
type PruneOptions struct {
	ConfigPath string
	StatePath  string
	// Invalid lists exact identifiers to remove.
	Invalid []domain.UniqueID
	// InvalidObjects removes every version of the listed objects.
	InvalidObjects []domain.ObjectID
	// FromLedger adds the identifiers the stored ledger has expired, and drains them.
	FromLedger bool
	// At, when set, also removes nodes whose function cannot run at the instant.
	At time.Time
}

// ConfigurationReport describes the pruning of one calculation configuration.
type ConfigurationReport struct {
	Name     string
	Total    int
	Retained int
	Missing  []domain.ValueRequirement
}

// PruneReport is the outcome of Prune.
type PruneReport struct {
	View           string
	Invalid        []domain.UniqueID
	Configurations []ConfigurationReport
	// Result is the filtered view.
	Result *domain.CompiledView
}

// Removed returns the number of nodes dropped across all configurations.
func (r *PruneReport) Removed() int {
	n := 0
	for _, c := range r.Configurations {
		n += c.Total - c.Retained
	}
	return n
}

// Prune removes invalidated nodes, and everything depending on them, from every graph of
// the view.
func (a *App) Prune(ctx context.Context, opts PruneOptions) (*PruneReport, error) {
	ctx, span := a.tracer.Start(ctx, "prune")
	defer span.End()

	ws, err := a.load(opts.ConfigPath)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	invalid := slices.Clone(opts.Invalid)
	if opts.FromLedger {
		expired, err := a.drainLedger(ws, opts.StatePath)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		invalid = append(invalid, expired...)
	}
	domain.SortUniqueIDs(invalid)
	invalid = slices.Compact(invalid)

	filters := []ports.NodeFilter{filter.NewInvalidTargetFilter(invalid...)}
	if len(opts.InvalidObjects) > 0 {
		filters = append(filters, filter.NewInvalidObjectFilter(opts.InvalidObjects...))
	}
	if !opts.At.IsZero() {
		filters = append(filters, filter.ValidAt(opts.At))
	}

	result, err := subgraph.View(ctx, ws.View, filter.All(filters...))
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to prune view"), "view", ws.View.Name())
		span.RecordError(err)
		return nil, err
	}

	report := &PruneReport{View: ws.View.Name(), Invalid: invalid, Result: result.View}
	for _, config := range ws.View.Configurations() {
		before, _ := ws.View.Graph(config)
		after, _ := result.View.Graph(config)
		missing := result.Missing[config].Sorted()
		report.Configurations = append(report.Configurations, ConfigurationReport{
			Name:     config,
			Total:    before.Size(),
			Retained: after.Size(),
			Missing:  missing,
		})
		if len(missing) > 0 {
			a.tracer.EmitMissing(ctx, config, requirementStrings(missing))
		}
	}

	span.SetAttribute("view", report.View)
	span.SetAttribute("invalid", len(invalid))
	span.SetAttribute("nodes", ws.View.Size())
	span.SetAttribute("removed", report.Removed())
	a.logger.Info("pruned view", "view", report.View, "invalid", len(invalid), "removed", report.Removed())
	return report, nil
}

// drainLedger empties the expired set of the stored ledger and returns its content.
func (a *App) drainLedger(ws *domain.Workspace, statePath string) ([]domain.UniqueID, error) {
	resolver, snapshot, err := a.restore(ws, statePath)
	if err != nil {
		return nil, err
	}
	l := ledger.New(resolver, ws.View.VersionCorrection())
	l.Restore(snapshot)
	expired := l.DrainExpired()
	if err := a.store.Save(statePath, l.Snapshot()); err != nil {
		return nil, zerr.Wrap(err, "failed to save ledger")
	}
	return expired, nil
}

func requirementStrings(reqs []domain.ValueRequirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.String()
	}
	return out
}
