// Package subgraph prunes dependency graphs: a node survives only if it is accepted and
// every node it consumes survives.
package subgraph

import (
	"context"
	"runtime"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SubGraph returns the part of g that remains executable under f, and the requirements
// whose terminal outputs are lost. When nothing is pruned g itself is returned.
func SubGraph(g *domain.Graph, f ports.NodeFilter) (*domain.Graph, domain.RequirementSet, error) {
	missing := make(domain.RequirementSet)
	out, err := Into(g, f, missing)
	if err != nil {
		return nil, nil, err
	}
	return out, missing, nil
}

// Into is SubGraph with the missing requirements added to a caller-owned set.
// The set must not be shared with a concurrent pass.
func Into(g *domain.Graph, f ports.NodeFilter, missing domain.RequirementSet) (*domain.Graph, error) {
	// decided holds every visited node and whether it is retained.
	decided := make(map[*domain.Node]bool, g.Size())
	retained := make([]*domain.Node, 0, g.Size())

	for node := range g.Walk() {
		keep, err := retain(node, f, decided)
		if err != nil {
			return nil, err
		}
		decided[node] = keep
		if keep {
			retained = append(retained, node)
			continue
		}
		for _, req := range g.RequirementsOf(node) {
			missing.Add(req)
		}
	}

	if len(retained) == g.Size() {
		return g, nil
	}

	terminals := make(map[domain.ValueRequirement]domain.ValueSpecification)
	for req, spec := range g.Requirements() {
		if owner, ok := g.Owner(spec); ok && decided[owner] {
			terminals[req] = spec
		}
	}

	out, err := domain.AssembleGraph(g.Name(), retained, terminals)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to assemble filtered graph")
	}
	return out, nil
}

// retain applies the local filter, then requires every input to have been retained.
// An input that has not been visited yet means the walk was not in dependency order.
func retain(node *domain.Node, f ports.NodeFilter, decided map[*domain.Node]bool) (bool, error) {
	keep := f.Accept(node)
	for in := range node.Inputs() {
		inputKept, visited := decided[in]
		if !visited {
			return false, zerr.With(zerr.With(domain.ErrMalformedGraph, "node", node.String()), "input", in.String())
		}
		keep = keep && inputKept
	}
	return keep, nil
}

// ViewResult is the outcome of filtering every graph of a compiled view.
type ViewResult struct {
	// View is the filtered view, or the input view when no graph changed.
	View *domain.CompiledView
	// Missing holds the lost requirements per calculation configuration. Configurations
	// that lost nothing are absent.
	Missing map[string]domain.RequirementSet
}

// View filters every graph of a compiled view concurrently.
func View(ctx context.Context, view *domain.CompiledView, f ports.NodeFilter) (*ViewResult, error) {
	configs := view.Configurations()
	graphs := make([]*domain.Graph, len(configs))
	missing := make([]domain.RequirementSet, len(configs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, config := range configs {
		g, _ := view.Graph(config)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			set := make(domain.RequirementSet)
			out, err := Into(g, f, set)
			if err != nil {
				return zerr.With(err, "calculation_configuration", config)
			}
			graphs[i] = out
			missing[i] = set
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &ViewResult{View: view, Missing: make(map[string]domain.RequirementSet)}
	var changed []*domain.Graph
	for i, config := range configs {
		if original, _ := view.Graph(config); graphs[i] != original {
			changed = append(changed, graphs[i])
		}
		if len(missing[i]) > 0 {
			result.Missing[config] = missing[i]
		}
	}
	if len(changed) > 0 {
		result.View = view.WithGraphs(changed...)
	}
	return result, nil
}
