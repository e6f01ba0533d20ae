package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// idSeparator separates the scheme, value and version parts of an identifier.
const idSeparator = "~"

// ObjectID identifies an object independently of its version.
type ObjectID struct {
	Scheme InternedString
	Value  InternedString
}

// NewObjectID creates an ObjectID from a scheme and value.
func NewObjectID(scheme, value string) ObjectID {
	return ObjectID{Scheme: NewInternedString(scheme), Value: NewInternedString(value)}
}

// AtVersion returns the unique identifier of the given version of the object.
// An empty version yields the unversioned (latest) identifier.
func (o ObjectID) AtVersion(version string) UniqueID {
	return UniqueID{Scheme: o.Scheme, Value: o.Value, Version: NewInternedString(version)}
}

// String returns the "scheme~value" form.
func (o ObjectID) String() string {
	return o.Scheme.String() + idSeparator + o.Value.String()
}

// UniqueID is a fully-qualified identifier: an object id plus an optional version token.
type UniqueID struct {
	Scheme  InternedString
	Value   InternedString
	Version InternedString
}

// NewUniqueID creates an unversioned UniqueID.
func NewUniqueID(scheme, value string) UniqueID {
	return UniqueID{Scheme: NewInternedString(scheme), Value: NewInternedString(value)}
}

// NewVersionedUniqueID creates a UniqueID carrying a version token.
func NewVersionedUniqueID(scheme, value, version string) UniqueID {
	return NewObjectID(scheme, value).AtVersion(version)
}

// ParseUniqueID parses the "scheme~value[~version]" form.
func ParseUniqueID(s string) (UniqueID, error) {
	parts := strings.Split(s, idSeparator)
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return UniqueID{}, zerr.With(ErrInvalidIdentifier, "identifier", s)
	}
	if len(parts) == 3 {
		if parts[2] == "" {
			return UniqueID{}, zerr.With(ErrInvalidIdentifier, "identifier", s)
		}
		return NewVersionedUniqueID(parts[0], parts[1], parts[2]), nil
	}
	return NewUniqueID(parts[0], parts[1]), nil
}

// ObjectID strips the version.
func (u UniqueID) ObjectID() ObjectID {
	return ObjectID{Scheme: u.Scheme, Value: u.Value}
}

// IsVersioned reports whether the identifier carries a version token.
func (u UniqueID) IsVersioned() bool {
	return !u.Version.IsZero()
}

// IsZero reports whether the identifier is unset.
func (u UniqueID) IsZero() bool {
	return u.Scheme.IsZero() && u.Value.IsZero()
}

// Compare orders identifiers by scheme, value, then version.
func (u UniqueID) Compare(other UniqueID) int {
	if c := u.Scheme.Compare(other.Scheme); c != 0 {
		return c
	}
	if c := u.Value.Compare(other.Value); c != 0 {
		return c
	}
	return u.Version.Compare(other.Version)
}

// String returns the "scheme~value[~version]" form.
func (u UniqueID) String() string {
	if u.IsZero() {
		return ""
	}
	s := u.Scheme.String() + idSeparator + u.Value.String()
	if u.IsVersioned() {
		s += idSeparator + u.Version.String()
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (u UniqueID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UniqueID) UnmarshalText(text []byte) error {
	parsed, err := ParseUniqueID(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// SortUniqueIDs sorts identifiers in place in their canonical order.
func SortUniqueIDs(ids []UniqueID) {
	slices.SortFunc(ids, UniqueID.Compare)
}

// ExternalID is a business key, e.g. a ticker or an ISIN.
type ExternalID struct {
	Scheme InternedString
	Value  InternedString
}

// NewExternalID creates an ExternalID.
func NewExternalID(scheme, value string) ExternalID {
	return ExternalID{Scheme: NewInternedString(scheme), Value: NewInternedString(value)}
}

// ParseExternalID parses the "scheme~value" form.
func ParseExternalID(s string) (ExternalID, error) {
	scheme, value, ok := strings.Cut(s, idSeparator)
	if !ok || scheme == "" || value == "" || strings.Contains(value, idSeparator) {
		return ExternalID{}, zerr.With(ErrInvalidIdentifier, "external_id", s)
	}
	return NewExternalID(scheme, value), nil
}

// String returns the "scheme~value" form.
func (e ExternalID) String() string {
	return e.Scheme.String() + idSeparator + e.Value.String()
}

func (e ExternalID) compare(other ExternalID) int {
	if c := e.Scheme.Compare(other.Scheme); c != 0 {
		return c
	}
	return e.Value.Compare(other.Value)
}

// bundleSeparator joins external ids inside a bundle's canonical form.
const bundleSeparator = ", "

// ExternalIDBundle is an unordered set of external ids stored in canonical form,
// which keeps it comparable and usable inside map keys.
type ExternalIDBundle struct {
	canonical InternedString
}

// NewExternalIDBundle creates a bundle from the given ids, ignoring order and duplicates.
func NewExternalIDBundle(ids ...ExternalID) ExternalIDBundle {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, ExternalID.compare)
	sorted = slices.Compact(sorted)

	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, id.String())
	}
	return ExternalIDBundle{canonical: NewInternedString(strings.Join(parts, bundleSeparator))}
}

// IDs returns the ids of the bundle in canonical order.
func (b ExternalIDBundle) IDs() []ExternalID {
	s := b.canonical.String()
	if s == "" {
		return nil
	}
	parts := strings.Split(s, bundleSeparator)
	ids := make([]ExternalID, 0, len(parts))
	for _, p := range parts {
		scheme, value, _ := strings.Cut(p, idSeparator)
		ids = append(ids, NewExternalID(scheme, value))
	}
	return ids
}

// Contains reports whether the bundle holds the id.
func (b ExternalIDBundle) Contains(id ExternalID) bool {
	return slices.Contains(b.IDs(), id)
}

// IsEmpty reports whether the bundle has no ids.
func (b ExternalIDBundle) IsEmpty() bool {
	return b.canonical.IsZero()
}

// String returns the canonical "[scheme~value, ...]" form.
func (b ExternalIDBundle) String() string {
	return "[" + b.canonical.String() + "]"
}
