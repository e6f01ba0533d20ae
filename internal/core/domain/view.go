package domain

import (
	"iter"
	"maps"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// VersionCorrection is the as-of context of a resolution. A zero instant means "latest".
type VersionCorrection struct {
	VersionAsOf time.Time
	CorrectedTo time.Time
}

// Latest resolves against the newest versions and corrections.
var Latest = VersionCorrection{}

// IsLatest reports whether both instants are unset.
func (vc VersionCorrection) IsLatest() bool {
	return vc.VersionAsOf.IsZero() && vc.CorrectedTo.IsZero()
}

// String returns "V<asof>.C<corrected>", using LATEST for unset instants.
func (vc VersionCorrection) String() string {
	format := func(t time.Time) string {
		if t.IsZero() {
			return "LATEST"
		}
		return t.UTC().Format(time.RFC3339)
	}
	return "V" + format(vc.VersionAsOf) + ".C" + format(vc.CorrectedTo)
}

// CompiledView is the output of one compilation pass: a graph per calculation configuration
// plus the reference bindings used while compiling. It is immutable.
type CompiledView struct {
	name              string
	compiledAt        time.Time
	versionCorrection VersionCorrection
	graphs            map[string]*Graph
	resolutions       map[TargetReference]UniqueID
}

// NewCompiledView creates a view. Graph names must be unique.
func NewCompiledView(
	name string,
	compiledAt time.Time,
	vc VersionCorrection,
	graphs []*Graph,
	resolutions map[TargetReference]UniqueID,
) (*CompiledView, error) {
	byName := make(map[string]*Graph, len(graphs))
	for _, g := range graphs {
		if _, exists := byName[g.Name()]; exists {
			return nil, zerr.With(ErrDuplicateGraph, "calculation_configuration", g.Name())
		}
		byName[g.Name()] = g
	}
	return &CompiledView{
		name:              name,
		compiledAt:        compiledAt,
		versionCorrection: vc,
		graphs:            byName,
		resolutions:       maps.Clone(resolutions),
	}, nil
}

// Name returns the view name.
func (v *CompiledView) Name() string { return v.name }

// CompiledAt returns the compilation instant.
func (v *CompiledView) CompiledAt() time.Time { return v.compiledAt }

// VersionCorrection returns the as-of context the view was compiled under.
func (v *CompiledView) VersionCorrection() VersionCorrection { return v.versionCorrection }

// Graph returns the graph of a calculation configuration.
func (v *CompiledView) Graph(config string) (*Graph, bool) {
	g, ok := v.graphs[config]
	return g, ok
}

// Configurations returns the calculation configuration names in sorted order.
func (v *CompiledView) Configurations() []string {
	return slices.Sorted(maps.Keys(v.graphs))
}

// Graphs yields the graphs ordered by calculation configuration name.
func (v *CompiledView) Graphs() iter.Seq[*Graph] {
	return func(yield func(*Graph) bool) {
		for _, name := range v.Configurations() {
			if !yield(v.graphs[name]) {
				return
			}
		}
	}
}

// Size returns the total node count across every graph.
func (v *CompiledView) Size() int {
	total := 0
	for _, g := range v.graphs {
		total += g.Size()
	}
	return total
}

// Resolutions returns a copy of the reference bindings used while compiling.
func (v *CompiledView) Resolutions() map[TargetReference]UniqueID {
	return maps.Clone(v.resolutions)
}

// Resolution returns the identifier a reference was bound to while compiling.
func (v *CompiledView) Resolution(ref TargetReference) (UniqueID, bool) {
	id, ok := v.resolutions[ref]
	return id, ok
}

// WithGraphs returns a view sharing everything with v except the replaced graphs.
// Graphs are matched to configurations by name; unknown names are added.
func (v *CompiledView) WithGraphs(replacements ...*Graph) *CompiledView {
	graphs := maps.Clone(v.graphs)
	for _, g := range replacements {
		graphs[g.Name()] = g
	}
	return &CompiledView{
		name:              v.name,
		compiledAt:        v.compiledAt,
		versionCorrection: v.versionCorrection,
		graphs:            graphs,
		resolutions:       v.resolutions,
	}
}
