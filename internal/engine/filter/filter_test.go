package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/viewgraph/internal/core/domain"
	"go.trai.ch/viewgraph/internal/engine/filter"
)

func singleNode(target domain.TargetSpecification, fn domain.FunctionAssignment) *domain.Node {
	b := domain.NewGraphBuilder("default")
	return b.AddNode(target, fn)
}

func TestInvalidTargetFilter_ExactMatch(t *testing.T) {
	v1 := domain.NewVersionedUniqueID("Sec", "AAPL", "1")
	v2 := domain.NewVersionedUniqueID("Sec", "AAPL", "2")
	latest := domain.NewUniqueID("Sec", "AAPL")
	other := domain.NewVersionedUniqueID("Sec", "MSFT", "1")

	f := filter.NewInvalidTargetFilter(v1)

	tests := []struct {
		name string
		id   domain.UniqueID
		want bool
	}{
		{name: "Same object and version", id: v1, want: false},
		{name: "Different version", id: v2, want: true},
		{name: "Unversioned", id: latest, want: true},
		{name: "Different object", id: other, want: true},
		{name: "Same version different scheme", id: domain.NewVersionedUniqueID("Alt", "AAPL", "1"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := singleNode(domain.NewTargetSpecification(domain.TargetTypeSecurity, tt.id), domain.FunctionAssignment{})
			assert.Equal(t, tt.want, f.Accept(node))
		})
	}
}

func TestInvalidTargetFilter_UnversionedEntry(t *testing.T) {
	f := filter.NewInvalidTargetFilter(domain.NewUniqueID("Sec", "AAPL"))

	unversioned := singleNode(domain.NewTargetSpecification(domain.TargetTypeSecurity, domain.NewUniqueID("Sec", "AAPL")), domain.FunctionAssignment{})
	versioned := singleNode(domain.NewTargetSpecification(domain.TargetTypeSecurity, domain.NewVersionedUniqueID("Sec", "AAPL", "1")), domain.FunctionAssignment{})

	assert.False(t, f.Accept(unversioned))
	assert.True(t, f.Accept(versioned))
	assert.Equal(t, 1, f.Len())
}

func TestInvalidTargetFilter_NullTarget(t *testing.T) {
	f := filter.NewInvalidTargetFilter(domain.NewUniqueID("Sec", "AAPL"))
	assert.True(t, f.Accept(singleNode(domain.NullTarget, domain.FunctionAssignment{})))
}

func TestInvalidObjectFilter(t *testing.T) {
	f := filter.NewInvalidObjectFilter(domain.NewObjectID("Sec", "AAPL"))

	for _, id := range []domain.UniqueID{
		domain.NewUniqueID("Sec", "AAPL"),
		domain.NewVersionedUniqueID("Sec", "AAPL", "7"),
	} {
		assert.False(t, f.Accept(singleNode(domain.NewTargetSpecification(domain.TargetTypeSecurity, id), domain.FunctionAssignment{})))
	}
	assert.True(t, f.Accept(singleNode(domain.NewTargetSpecification(domain.TargetTypeSecurity, domain.NewUniqueID("Sec", "MSFT")), domain.FunctionAssignment{})))
	assert.True(t, f.Accept(singleNode(domain.NullTarget, domain.FunctionAssignment{})))
}

func TestCombinators(t *testing.T) {
	node := singleNode(domain.NewTargetSpecification(domain.TargetTypePrimitive, domain.NewUniqueID("Test", "1")), domain.FunctionAssignment{})

	assert.True(t, filter.AcceptAll.Accept(node))
	assert.False(t, filter.AcceptNone.Accept(node))

	assert.True(t, filter.All().Accept(node))
	assert.False(t, filter.All(filter.AcceptAll, filter.AcceptNone).Accept(node))
	assert.True(t, filter.All(filter.AcceptAll, filter.AcceptAll).Accept(node))

	assert.False(t, filter.Any().Accept(node))
	assert.True(t, filter.Any(filter.AcceptNone, filter.AcceptAll).Accept(node))
}

func TestValidAt(t *testing.T) {
	t0 := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	bounded := singleNode(domain.NullTarget, domain.FunctionAssignment{
		Earliest: domain.BoundAt(t0),
		Latest:   domain.BoundAt(t1),
	})
	inverted := singleNode(domain.NullTarget, domain.FunctionAssignment{
		Earliest: domain.BoundAt(t1),
		Latest:   domain.BoundAt(t0),
	})

	assert.True(t, filter.ValidAt(t0).Accept(bounded))
	assert.True(t, filter.ValidAt(t1).Accept(bounded))
	assert.False(t, filter.ValidAt(t1.Add(time.Second)).Accept(bounded))
	assert.False(t, filter.ValidAt(t0).Accept(inverted))
}
