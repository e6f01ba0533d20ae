package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/viewgraph/internal/core/domain"
)

func TestParseUniqueID(t *testing.T) {
	tests := []struct {
		in        string
		want      domain.UniqueID
		wantErr   bool
		versioned bool
	}{
		{in: "Test~1", want: domain.NewUniqueID("Test", "1")},
		{in: "Test~1~v2", want: domain.NewVersionedUniqueID("Test", "1", "v2"), versioned: true},
		{in: "Test", wantErr: true},
		{in: "~1", wantErr: true},
		{in: "Test~1~", wantErr: true},
		{in: "a~b~c~d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseUniqueID(tt.in)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrInvalidIdentifier.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.versioned, got.IsVersioned())
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestUniqueID_ObjectID(t *testing.T) {
	v1 := domain.NewVersionedUniqueID("Sec", "AAPL", "1")
	v2 := domain.NewVersionedUniqueID("Sec", "AAPL", "2")

	assert.NotEqual(t, v1, v2)
	assert.Equal(t, v1.ObjectID(), v2.ObjectID())
	assert.Equal(t, v2, v1.ObjectID().AtVersion("2"))
	assert.Equal(t, domain.NewUniqueID("Sec", "AAPL"), v1.ObjectID().AtVersion(""))
	assert.Negative(t, v1.Compare(v2))
}

func TestExternalIDBundle_Canonical(t *testing.T) {
	a := domain.NewExternalID("Ticker", "AAPL")
	b := domain.NewExternalID("ISIN", "US0378331005")

	b1 := domain.NewExternalIDBundle(a, b)
	b2 := domain.NewExternalIDBundle(b, a, a)

	assert.Equal(t, b1, b2)
	assert.Equal(t, "[ISIN~US0378331005, Ticker~AAPL]", b1.String())
	assert.Equal(t, []domain.ExternalID{b, a}, b1.IDs())
	assert.True(t, b1.Contains(a))
	assert.True(t, domain.NewExternalIDBundle().IsEmpty())
}

func TestParseTargetReference(t *testing.T) {
	refs := []domain.TargetReference{
		domain.NullTarget,
		domain.NewTargetSpecification(domain.TargetTypeSecurity, domain.NewVersionedUniqueID("Sec", "AAPL", "3")),
		domain.NewTargetSpecification(domain.TargetTypePosition, domain.NewUniqueID("Pos", "7")),
		domain.NewTargetRequirement(domain.TargetTypeSecurity,
			domain.NewExternalID("Ticker", "AAPL"), domain.NewExternalID("ISIN", "US0378331005")),
	}

	for _, ref := range refs {
		t.Run(ref.String(), func(t *testing.T) {
			got, err := domain.ParseTargetReference(ref.String())
			require.NoError(t, err)
			assert.Equal(t, ref, got)
		})
	}

	for _, bad := range []string{"", "SECURITY", "SECURITY:", ":Sec~1", "SECURITY:[]", "SECURITY:[nope]"} {
		_, err := domain.ParseTargetReference(bad)
		assert.Error(t, err, bad)
	}
}

func TestTargetSpecification_Null(t *testing.T) {
	assert.True(t, domain.NullTarget.IsNull())
	assert.Equal(t, domain.NullTarget, domain.NewTargetSpecification(domain.TargetTypeSecurity, domain.UniqueID{}))
	assert.Equal(t, "NULL", domain.NullTarget.String())
}

func TestValueProperties(t *testing.T) {
	p1 := domain.NewValueProperties(map[string][]string{
		"Currency": {"USD", "EUR", "USD"},
		"Curve":    {"Discounting"},
		"Any":      nil,
	})
	p2 := domain.NewValueProperties(map[string][]string{
		"Curve":    {"Discounting"},
		"Currency": {"EUR", "USD"},
		"Any":      {},
	})

	assert.Equal(t, p1, p2)
	assert.Equal(t, []string{"Any", "Currency", "Curve"}, p1.Names())

	values, ok := p1.Values("Currency")
	require.True(t, ok)
	assert.Equal(t, []string{"EUR", "USD"}, values)

	values, ok = p1.Values("Any")
	assert.True(t, ok)
	assert.Empty(t, values)

	_, ok = p1.Values("Missing")
	assert.False(t, ok)
	assert.True(t, domain.NewValueProperties(nil).IsEmpty())
}

func TestValueProperties_SeparatorsInValues(t *testing.T) {
	smuggled := domain.NewValueProperties(map[string][]string{"A": {"x;B=y"}})
	split := domain.NewValueProperties(map[string][]string{"A": {"x"}, "B": {"y"}})
	assert.NotEqual(t, smuggled, split)

	joined := domain.NewValueProperties(map[string][]string{"A": {"x,y"}})
	pair := domain.NewValueProperties(map[string][]string{"A": {"x", "y"}})
	assert.NotEqual(t, joined, pair)

	anyValue := domain.NewValueProperties(map[string][]string{"A": nil})
	emptyValue := domain.NewValueProperties(map[string][]string{"A": {""}})
	assert.NotEqual(t, anyValue, emptyValue)

	values, ok := smuggled.Values("A")
	require.True(t, ok)
	assert.Equal(t, []string{"x;B=y"}, values)
	assert.Equal(t, []string{"A"}, smuggled.Names())

	values, ok = joined.Values("A")
	require.True(t, ok)
	assert.Equal(t, []string{"x,y"}, values)

	values, ok = emptyValue.Values("A")
	require.True(t, ok)
	assert.Equal(t, []string{""}, values)

	odd := domain.NewValueProperties(map[string][]string{`a\=b`: {`c\`}})
	assert.Equal(t, []string{`a\=b`}, odd.Names())
	values, ok = odd.Values(`a\=b`)
	require.True(t, ok)
	assert.Equal(t, []string{`c\`}, values)

	target := domain.NewTargetSpecification(domain.TargetTypeSecurity, domain.NewUniqueID("Sec", "1"))
	set := domain.NewRequirementSet(
		domain.NewValueRequirement("PV", target, smuggled),
		domain.NewValueRequirement("PV", target, split),
	)
	assert.Len(t, set, 2)
}

func TestValueRequirement_Distinct(t *testing.T) {
	target := domain.NewTargetSpecification(domain.TargetTypeSecurity, domain.NewUniqueID("Sec", "1"))
	usd := domain.NewValueProperties(map[string][]string{"Currency": {"USD"}})

	r1 := domain.NewValueRequirement("PV", target, usd)
	r2 := domain.NewValueRequirement("PV", target, domain.EmptyProperties)
	r3 := domain.NewValueRequirement("PV", domain.NewTargetRequirement(domain.TargetTypeSecurity, domain.NewExternalID("T", "1")), usd)

	set := domain.NewRequirementSet(r1, r2, r3, r1)
	assert.Len(t, set, 3)
	assert.True(t, set.Contains(domain.NewValueRequirement("PV", target, usd)))
	assert.Len(t, set.Sorted(), 3)
}

func TestValidityWindow(t *testing.T) {
	t0 := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t0.Add(2 * time.Hour)

	w := domain.NewValidityWindow(domain.BoundAt(t0), domain.BoundAt(t1))
	assert.True(t, w.Contains(t0))
	assert.True(t, w.Contains(t1))
	assert.False(t, w.Contains(t2))
	assert.False(t, w.Contains(t0.Add(-time.Nanosecond)))

	assert.True(t, domain.UnboundedWindow().Contains(t2))
	assert.False(t, domain.EmptyWindow().Contains(t0))
	assert.True(t, domain.NewValidityWindow(domain.BoundAt(t1), domain.BoundAt(t0)).IsEmpty())

	tail := domain.NewValidityWindow(domain.BoundAt(t1), domain.Unbounded())
	overlap := w.Intersect(tail)
	assert.False(t, overlap.IsEmpty())
	assert.True(t, overlap.Contains(t1))
	assert.False(t, overlap.Contains(t0))

	disjoint := domain.NewValidityWindow(domain.Unbounded(), domain.BoundAt(t0)).
		Intersect(domain.NewValidityWindow(domain.BoundAt(t1), domain.Unbounded()))
	assert.True(t, disjoint.IsEmpty())
	assert.Equal(t, "empty", disjoint.String())
}

func TestFunctionAssignment_Window(t *testing.T) {
	t0 := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	ok := domain.FunctionAssignment{Earliest: domain.BoundAt(t0), Latest: domain.BoundAt(t1)}
	assert.True(t, ok.Consistent())
	assert.True(t, ok.Window().Contains(t0))

	inverted := domain.FunctionAssignment{Earliest: domain.BoundAt(t1), Latest: domain.BoundAt(t0)}
	assert.False(t, inverted.Consistent())
	assert.True(t, inverted.Window().IsEmpty())

	assert.True(t, domain.FunctionAssignment{}.Window().Contains(t1))
}
