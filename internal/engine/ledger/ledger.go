// Package ledger records which identifiers target references resolved to, and which
// identifiers were superseded by a later resolution.
package ledger

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/core/ports"
)

const shardCount = 16

type shard struct {
	mu      sync.Mutex
	entries map[domain.TargetReference]domain.UniqueID
}

// Ledger wraps a TargetResolver at a fixed version-correction and logs successful
// resolutions. It is safe for concurrent use.
type Ledger struct {
	resolver ports.TargetResolver
	vc       domain.VersionCorrection

	shards [shardCount]shard

	expiredMu sync.Mutex
	expired   map[domain.UniqueID]struct{}
}

// New creates an empty ledger.
func New(resolver ports.TargetResolver, vc domain.VersionCorrection) *Ledger {
	l := &Ledger{
		resolver: resolver,
		vc:       vc,
		expired:  make(map[domain.UniqueID]struct{}),
	}
	for i := range l.shards {
		l.shards[i].entries = make(map[domain.TargetReference]domain.UniqueID)
	}
	return l
}

// VersionCorrection returns the as-of context every resolution runs at.
func (l *Ledger) VersionCorrection() domain.VersionCorrection {
	return l.vc
}

// ResolveSpecification binds ref through the wrapped resolver and logs the binding.
func (l *Ledger) ResolveSpecification(ctx context.Context, ref domain.TargetReference) (domain.TargetSpecification, error) {
	spec, err := l.resolver.ResolveSpecification(ctx, ref, l.vc)
	if err != nil {
		return spec, err
	}
	l.observe(ref, spec)
	return spec, nil
}

// ResolveSpecifications binds refs in one call. Only references present in the result
// are logged.
func (l *Ledger) ResolveSpecifications(
	ctx context.Context, refs []domain.TargetReference,
) (map[domain.TargetReference]domain.TargetSpecification, error) {
	specs, err := l.resolver.ResolveSpecifications(ctx, refs, l.vc)
	if err != nil {
		return specs, err
	}
	for ref, spec := range specs {
		l.observe(ref, spec)
	}
	return specs, nil
}

// Resolve materialises the object behind spec. Objects of deep types are logged on the
// first read of their content; other objects are returned unlogged.
func (l *Ledger) Resolve(ctx context.Context, spec domain.TargetSpecification) (ports.Target, error) {
	target, err := l.resolver.Resolve(ctx, spec, l.vc)
	if err != nil {
		return target, err
	}
	if l.resolver.Depth(spec.Type()) != ports.ResolveDeep {
		return target, nil
	}
	return &lazyTarget{Target: target, ledger: l, ref: spec}, nil
}

// observe applies the logging rule for specification resolutions: a null result, or a
// specification that resolved to itself, carries nothing worth recording.
func (l *Ledger) observe(ref domain.TargetReference, spec domain.TargetSpecification) {
	if spec.IsNull() {
		return
	}
	if self, ok := ref.(domain.TargetSpecification); ok && self == spec {
		return
	}
	l.record(ref, spec.UniqueID())
}

// record binds ref to id. A different previous binding is moved to the expired set.
func (l *Ledger) record(ref domain.TargetReference, id domain.UniqueID) {
	s := l.shardFor(ref)
	s.mu.Lock()
	previous, known := s.entries[ref]
	s.entries[ref] = id
	s.mu.Unlock()

	if known && previous != id {
		l.expiredMu.Lock()
		l.expired[previous] = struct{}{}
		l.expiredMu.Unlock()
	}
}

func (l *Ledger) shardFor(ref domain.TargetReference) *shard {
	return &l.shards[xxhash.Sum64String(ref.String())%shardCount]
}

// Resolution returns the identifier ref is currently bound to.
func (l *Ledger) Resolution(ref domain.TargetReference) (domain.UniqueID, bool) {
	s := l.shardFor(ref)
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.entries[ref]
	return id, ok
}

// Resolutions returns a copy of every current binding.
func (l *Ledger) Resolutions() map[domain.TargetReference]domain.UniqueID {
	out := make(map[domain.TargetReference]domain.UniqueID)
	for i := range l.shards {
		s := &l.shards[i]
		s.mu.Lock()
		maps.Copy(out, s.entries)
		s.mu.Unlock()
	}
	return out
}

// Len returns the number of bound references.
func (l *Ledger) Len() int {
	n := 0
	for i := range l.shards {
		s := &l.shards[i]
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}

// Expired returns the superseded identifiers in sorted order. The set is left intact.
//
// An identifier that was superseded and later bound again stays listed as expired while
// being the current binding. Bindings and the expired set are guarded separately, so when
// writers race on one reference the last binding wins and the expired set may hold either id.
func (l *Ledger) Expired() []domain.UniqueID {
	l.expiredMu.Lock()
	defer l.expiredMu.Unlock()
	return sortedIDs(l.expired)
}

// DrainExpired returns the superseded identifiers and clears the set.
func (l *Ledger) DrainExpired() []domain.UniqueID {
	l.expiredMu.Lock()
	defer l.expiredMu.Unlock()
	ids := sortedIDs(l.expired)
	clear(l.expired)
	return ids
}

// Snapshot captures the bindings and the expired set. Entries are sorted by reference.
func (l *Ledger) Snapshot() domain.LedgerSnapshot {
	entries := make([]domain.LedgerEntry, 0, l.Len())
	for ref, id := range l.Resolutions() {
		entries = append(entries, domain.LedgerEntry{Reference: ref, Resolved: id})
	}
	slices.SortFunc(entries, func(a, b domain.LedgerEntry) int {
		return strings.Compare(a.Reference.String(), b.Reference.String())
	})
	return domain.LedgerSnapshot{
		VersionCorrection: l.vc,
		Entries:           entries,
		Expired:           l.Expired(),
	}
}

// Restore merges a snapshot into the ledger. Restored bindings replace current ones
// without expiring anything.
func (l *Ledger) Restore(snapshot domain.LedgerSnapshot) {
	for _, e := range snapshot.Entries {
		s := l.shardFor(e.Reference)
		s.mu.Lock()
		s.entries[e.Reference] = e.Resolved
		s.mu.Unlock()
	}
	l.expiredMu.Lock()
	for _, id := range snapshot.Expired {
		l.expired[id] = struct{}{}
	}
	l.expiredMu.Unlock()
}

func sortedIDs(set map[domain.UniqueID]struct{}) []domain.UniqueID {
	ids := slices.Collect(maps.Keys(set))
	domain.SortUniqueIDs(ids)
	return ids
}

// lazyTarget logs its resolution the first time its content is read.
type lazyTarget struct {
	ports.Target
	ledger *Ledger
	ref    domain.TargetReference
	once   sync.Once
}

func (t *lazyTarget) Value() any {
	t.once.Do(func() {
		t.ledger.record(t.ref, t.Target.UniqueID())
	})
	return t.Target.Value()
}
