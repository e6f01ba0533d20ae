package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// TargetType tags what kind of object a target reference points at.
type TargetType struct {
	name InternedString
}

// NewTargetType creates a target type from its name.
func NewTargetType(name string) TargetType {
	return TargetType{name: NewInternedString(name)}
}

// Well-known target types.
var (
	TargetTypeNull          = NewTargetType("NULL")
	TargetTypePrimitive     = NewTargetType("PRIMITIVE")
	TargetTypeSecurity      = NewTargetType("SECURITY")
	TargetTypePosition      = NewTargetType("POSITION")
	TargetTypeTrade         = NewTargetType("TRADE")
	TargetTypePortfolioNode = NewTargetType("PORTFOLIO_NODE")
)

// String returns the type name.
func (t TargetType) String() string {
	return t.name.String()
}

// TargetReference identifies what a node computes for. It is either a fully-qualified
// TargetSpecification or a TargetRequirement that still has to be bound to one.
// Both implementations are comparable, so references can be used as map keys.
type TargetReference interface {
	// Type returns the target type tag.
	Type() TargetType
	// String returns the canonical text form, see ParseTargetReference.
	String() string

	isTargetReference()
}

// TargetSpecification is a fully-qualified target: a type plus a unique identifier.
type TargetSpecification struct {
	targetType TargetType
	id         UniqueID
}

// NullTarget is the specification of "no particular target".
var NullTarget = TargetSpecification{targetType: TargetTypeNull}

// NewTargetSpecification creates a specification. A zero identifier yields NullTarget.
func NewTargetSpecification(t TargetType, id UniqueID) TargetSpecification {
	if id.IsZero() {
		return NullTarget
	}
	return TargetSpecification{targetType: t, id: id}
}

// Type returns the target type.
func (s TargetSpecification) Type() TargetType { return s.targetType }

// UniqueID returns the identifier of the target.
func (s TargetSpecification) UniqueID() UniqueID { return s.id }

// IsNull reports whether this is the null specification.
func (s TargetSpecification) IsNull() bool {
	return s.id.IsZero()
}

// String returns "TYPE:scheme~value[~version]".
func (s TargetSpecification) String() string {
	if s.IsNull() {
		return TargetTypeNull.String()
	}
	return s.targetType.String() + ":" + s.id.String()
}

func (TargetSpecification) isTargetReference() {}

// TargetRequirement is an unresolved target: a type plus business keys.
type TargetRequirement struct {
	targetType TargetType
	ids        ExternalIDBundle
}

// NewTargetRequirement creates a requirement for the object carrying the given external ids.
func NewTargetRequirement(t TargetType, ids ...ExternalID) TargetRequirement {
	return TargetRequirement{targetType: t, ids: NewExternalIDBundle(ids...)}
}

// Type returns the target type.
func (r TargetRequirement) Type() TargetType { return r.targetType }

// ExternalIDs returns the business keys of the requirement.
func (r TargetRequirement) ExternalIDs() ExternalIDBundle { return r.ids }

// String returns "TYPE:[scheme~value, ...]".
func (r TargetRequirement) String() string {
	return r.targetType.String() + ":" + r.ids.String()
}

func (TargetRequirement) isTargetReference() {}

// ParseTargetReference parses the canonical text form produced by TargetReference.String.
func ParseTargetReference(s string) (TargetReference, error) {
	if s == TargetTypeNull.String() {
		return NullTarget, nil
	}
	typeName, rest, ok := strings.Cut(s, ":")
	if !ok || typeName == "" || rest == "" {
		return nil, zerr.With(ErrInvalidReference, "reference", s)
	}
	targetType := NewTargetType(typeName)

	if strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]") {
		inner := strings.TrimSuffix(strings.TrimPrefix(rest, "["), "]")
		if inner == "" {
			return nil, zerr.With(ErrInvalidReference, "reference", s)
		}
		var ids []ExternalID
		for _, part := range strings.Split(inner, bundleSeparator) {
			id, err := ParseExternalID(part)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid external id"), "reference", s)
			}
			ids = append(ids, id)
		}
		return NewTargetRequirement(targetType, ids...), nil
	}

	id, err := ParseUniqueID(rest)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid unique id"), "reference", s)
	}
	return NewTargetSpecification(targetType, id), nil
}
