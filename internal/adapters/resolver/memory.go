// Package resolver provides an in-memory, versioned target resolver.
package resolver

import (
	"context"
	"slices"
	"time"

	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Memory resolves references against a fixed catalogue of object versions.
// It is read-only after construction and safe for concurrent use.
type Memory struct {
	// versions holds every version of an object, oldest first.
	versions map[domain.ObjectID][]domain.TargetRecord
	byID     map[domain.UniqueID]domain.TargetRecord
	deep     map[domain.TargetType]bool
}

// New indexes the records. Types listed in deep resolve with ports.ResolveDeep.
func New(records []domain.TargetRecord, deep []domain.TargetType) (*Memory, error) {
	m := &Memory{
		versions: make(map[domain.ObjectID][]domain.TargetRecord),
		byID:     make(map[domain.UniqueID]domain.TargetRecord, len(records)),
		deep:     make(map[domain.TargetType]bool, len(deep)),
	}
	for _, r := range records {
		if _, exists := m.byID[r.ID]; exists {
			return nil, zerr.With(domain.ErrDuplicateTarget, "target", r.ID.String())
		}
		m.byID[r.ID] = r
		oid := r.ID.ObjectID()
		m.versions[oid] = append(m.versions[oid], r)
	}
	for oid := range m.versions {
		slices.SortStableFunc(m.versions[oid], func(a, b domain.TargetRecord) int {
			return a.ValidFrom.Compare(b.ValidFrom)
		})
	}
	for _, t := range deep {
		m.deep[t] = true
	}
	return m, nil
}

// ResolveSpecification binds ref to the version current at vc.VersionAsOf.
// A versioned specification must name an existing version exactly.
func (m *Memory) ResolveSpecification(
	ctx context.Context, ref domain.TargetReference, vc domain.VersionCorrection,
) (domain.TargetSpecification, error) {
	if err := ctx.Err(); err != nil {
		return domain.NullTarget, err
	}
	if isNull(ref) {
		return domain.NullTarget, nil
	}
	record, err := m.lookup(ref, vc)
	if err != nil {
		return domain.NullTarget, err
	}
	return domain.NewTargetSpecification(record.Type, record.ID), nil
}

// ResolveSpecifications binds every reference it can; unknown references are left out.
func (m *Memory) ResolveSpecifications(
	ctx context.Context, refs []domain.TargetReference, vc domain.VersionCorrection,
) (map[domain.TargetReference]domain.TargetSpecification, error) {
	out := make(map[domain.TargetReference]domain.TargetSpecification, len(refs))
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isNull(ref) {
			out[ref] = domain.NullTarget
			continue
		}
		record, found, err := m.find(ref, vc)
		if err != nil {
			return nil, err
		}
		if found {
			out[ref] = domain.NewTargetSpecification(record.Type, record.ID)
		}
	}
	return out, nil
}

// Resolve returns the object version spec points at.
func (m *Memory) Resolve(
	ctx context.Context, spec domain.TargetSpecification, vc domain.VersionCorrection,
) (ports.Target, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if spec.IsNull() {
		return nil, zerr.With(domain.ErrTargetNotFound, "reference", spec.String())
	}
	record, err := m.lookup(spec, vc)
	if err != nil {
		return nil, err
	}
	return &object{record: *record}, nil
}

// Depth reports ports.ResolveDeep for the configured deep types.
func (m *Memory) Depth(targetType domain.TargetType) ports.ResolutionDepth {
	if m.deep[targetType] {
		return ports.ResolveDeep
	}
	return ports.ResolveShallow
}

// lookup finds the record for ref or fails with ErrTargetNotFound.
func (m *Memory) lookup(ref domain.TargetReference, vc domain.VersionCorrection) (*domain.TargetRecord, error) {
	record, found, err := m.find(ref, vc)
	if err != nil {
		return nil, err
	}
	if !found {
		err := zerr.With(domain.ErrTargetNotFound, "reference", ref.String())
		return nil, zerr.With(err, "version_correction", vc.String())
	}
	return record, nil
}

func (m *Memory) find(ref domain.TargetReference, vc domain.VersionCorrection) (*domain.TargetRecord, bool, error) {
	switch r := ref.(type) {
	case domain.TargetSpecification:
		var (
			record domain.TargetRecord
			ok     bool
		)
		if r.UniqueID().IsVersioned() {
			record, ok = m.byID[r.UniqueID()]
		} else {
			record, ok = m.current(r.UniqueID().ObjectID(), vc.VersionAsOf)
		}
		if !ok || record.Type != r.Type() {
			return nil, false, nil
		}
		return &record, true, nil

	case domain.TargetRequirement:
		return m.match(r, vc)
	}
	return nil, false, nil
}

// match finds the single object whose current version carries one of the requirement's ids.
func (m *Memory) match(req domain.TargetRequirement, vc domain.VersionCorrection) (*domain.TargetRecord, bool, error) {
	wanted := req.ExternalIDs().IDs()

	var found []domain.TargetRecord
	for oid := range m.versions {
		record, ok := m.current(oid, vc.VersionAsOf)
		if !ok || record.Type != req.Type() {
			continue
		}
		if slices.ContainsFunc(wanted, record.ExternalIDs.Contains) {
			found = append(found, record)
		}
	}

	switch len(found) {
	case 0:
		return nil, false, nil
	case 1:
		return &found[0], true, nil
	}
	slices.SortFunc(found, func(a, b domain.TargetRecord) int { return a.ID.Compare(b.ID) })
	candidates := make([]string, len(found))
	for i, r := range found {
		candidates[i] = r.ID.String()
	}
	err := zerr.With(domain.ErrAmbiguousReference, "reference", req.String())
	return nil, false, zerr.With(err, "candidates", candidates)
}

// current returns the newest version valid at asOf. A zero asOf means latest.
func (m *Memory) current(oid domain.ObjectID, asOf time.Time) (domain.TargetRecord, bool) {
	versions := m.versions[oid]
	for i := len(versions) - 1; i >= 0; i-- {
		if asOf.IsZero() || !versions[i].ValidFrom.After(asOf) {
			return versions[i], true
		}
	}
	return domain.TargetRecord{}, false
}

func isNull(ref domain.TargetReference) bool {
	spec, ok := ref.(domain.TargetSpecification)
	return ok && spec.IsNull()
}

// object is a resolved catalogue entry.
type object struct {
	record domain.TargetRecord
}

func (o *object) UniqueID() domain.UniqueID { return o.record.ID }

func (o *object) Type() domain.TargetType { return o.record.Type }

func (o *object) Value() any { return o.record.Value }
