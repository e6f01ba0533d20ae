package app

import (
	"context"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/engine/ledger"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	ConfigPath string
	StatePath  string
	// Touch fully resolves node targets and reads their content.
	Touch bool
}

// Change is a reference whose current resolution differs from the one the view was
// compiled with.
type Change struct {
	Reference domain.TargetReference
	Compiled  domain.UniqueID
	Current   domain.UniqueID
}

// ResolveReport is the outcome of Resolve.
type ResolveReport struct {
	View              string
	VersionCorrection domain.VersionCorrection
	Entries           []domain.LedgerEntry
	Changed           []Change
	Unresolved        []domain.TargetReference
	// Expired lists identifiers superseded during this run.
	Expired []domain.UniqueID
	Touched int
}

// Resolve re-resolves every reference the view depends on through the stored ledger,
// then saves it.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) (*ResolveReport, error) {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	report, err := a.resolve(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("view", report.View)
	span.SetAttribute("entries", len(report.Entries))
	span.SetAttribute("expired", len(report.Expired))
	span.SetAttribute("unresolved", len(report.Unresolved))
	return report, nil
}

func (a *App) resolve(ctx context.Context, opts ResolveOptions) (*ResolveReport, error) {
	ws, err := a.load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	resolver, snapshot, err := a.restore(ws, opts.StatePath)
	if err != nil {
		return nil, err
	}
	view := ws.View
	l := ledger.New(resolver, view.VersionCorrection())
	l.Restore(snapshot)
	previouslyExpired := l.Expired()

	refs := referencesOf(view)
	specs, err := l.ResolveSpecifications(ctx, refs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve references"), "view", view.Name())
	}

	report := &ResolveReport{View: view.Name(), VersionCorrection: view.VersionCorrection()}
	for _, ref := range refs {
		spec, ok := specs[ref]
		if !ok {
			report.Unresolved = append(report.Unresolved, ref)
			a.logger.Warn("reference did not resolve", "reference", ref.String())
			continue
		}
		if compiled, ok := view.Resolution(ref); ok && !spec.IsNull() && compiled != spec.UniqueID() {
			report.Changed = append(report.Changed, Change{Reference: ref, Compiled: compiled, Current: spec.UniqueID()})
		}
	}

	if opts.Touch {
		touched, err := a.touch(ctx, l, view)
		if err != nil {
			return nil, err
		}
		report.Touched = touched
	}

	report.Entries = l.Snapshot().Entries
	for _, id := range l.Expired() {
		if _, found := slices.BinarySearchFunc(previouslyExpired, id, domain.UniqueID.Compare); !found {
			report.Expired = append(report.Expired, id)
		}
	}

	if err := a.store.Save(opts.StatePath, l.Snapshot()); err != nil {
		return nil, zerr.Wrap(err, "failed to save ledger")
	}
	a.logger.Info("resolved view", "view", view.Name(),
		"entries", len(report.Entries), "expired", len(report.Expired))
	return report, nil
}

// touch resolves every distinct node target and reads its content.
func (a *App) touch(ctx context.Context, l *ledger.Ledger, view *domain.CompiledView) (int, error) {
	seen := make(map[domain.TargetSpecification]struct{})
	var targets []domain.TargetSpecification
	for g := range view.Graphs() {
		for node := range g.Walk() {
			spec := node.Target()
			if spec.IsNull() {
				continue
			}
			if _, ok := seen[spec]; ok {
				continue
			}
			seen[spec] = struct{}{}
			targets = append(targets, spec)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, spec := range targets {
		g.Go(func() error {
			target, err := l.Resolve(ctx, spec)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve target"), "target", spec.String())
			}
			_ = target.Value()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(targets), nil
}

// referencesOf collects the recorded bindings, node targets and terminal requirement
// targets of the view, sorted and without duplicates. Null targets are skipped.
func referencesOf(view *domain.CompiledView) []domain.TargetReference {
	seen := make(map[domain.TargetReference]struct{})
	add := func(ref domain.TargetReference) {
		if spec, ok := ref.(domain.TargetSpecification); ok && spec.IsNull() {
			return
		}
		seen[ref] = struct{}{}
	}
	for ref := range view.Resolutions() {
		add(ref)
	}
	for g := range view.Graphs() {
		for node := range g.Walk() {
			add(node.Target())
		}
		for req := range g.Requirements() {
			add(req.Target)
		}
	}

	refs := make([]domain.TargetReference, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, func(a, b domain.TargetReference) int {
		return strings.Compare(a.String(), b.String())
	})
	return refs
}
