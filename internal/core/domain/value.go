package domain

import (
	"maps"
	"slices"
	"strings"
)

// ValueProperties is an immutable set of property constraints (name -> allowed values).
// It is stored in canonical form so that requirements and specifications stay comparable.
type ValueProperties struct {
	canonical InternedString
}

// EmptyProperties has no constraints.
var EmptyProperties = ValueProperties{}

// NewValueProperties creates a canonical property set. Values are sorted and de-duplicated;
// a property with no values is kept and means "any value".
//
// The canonical form is "name=v1,v2;name2" where a bare name stands for any value. Separators
// and backslashes inside names and values are escaped with a backslash.
func NewValueProperties(props map[string][]string) ValueProperties {
	if len(props) == 0 {
		return EmptyProperties
	}
	names := slices.Sorted(maps.Keys(props))

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(escapeProperty(name))
		values := props[name]
		if len(values) == 0 {
			continue
		}
		values = slices.Clone(values)
		slices.Sort(values)
		values = slices.Compact(values)
		b.WriteByte('=')
		for j, v := range values {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeProperty(v))
		}
	}
	return ValueProperties{canonical: NewInternedString(b.String())}
}

// Names returns the property names in sorted order.
func (p ValueProperties) Names() []string {
	var names []string
	for _, entry := range p.entries() {
		name, _, _ := cutProperty(entry, '=')
		names = append(names, unescapeProperty(name))
	}
	return names
}

// Values returns the values of a property and whether it is present. A property matching
// any value has no values.
func (p ValueProperties) Values(name string) ([]string, bool) {
	for _, entry := range p.entries() {
		n, values, hasValues := cutProperty(entry, '=')
		if unescapeProperty(n) != name {
			continue
		}
		if !hasValues {
			return nil, true
		}
		parts := splitProperty(values, ',')
		for i, v := range parts {
			parts[i] = unescapeProperty(v)
		}
		return parts, true
	}
	return nil, false
}

// IsEmpty reports whether there are no properties.
func (p ValueProperties) IsEmpty() bool {
	return p.canonical.IsZero()
}

// String returns the canonical "{name=v1,v2;name2=v3}" form.
func (p ValueProperties) String() string {
	return "{" + p.canonical.String() + "}"
}

func (p ValueProperties) entries() []string {
	s := p.canonical.String()
	if s == "" {
		return nil
	}
	return splitProperty(s, ';')
}

var propertyEscaper = strings.NewReplacer(`\`, `\\`, `,`, `\,`, `;`, `\;`, `=`, `\=`)

func escapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}

func unescapeProperty(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// cutProperty splits s around the first unescaped sep.
func cutProperty(s string, sep byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case sep:
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

// splitProperty splits s around every unescaped sep.
func splitProperty(s string, sep byte) []string {
	var parts []string
	for {
		before, after, found := cutProperty(s, sep)
		parts = append(parts, before)
		if !found {
			return parts
		}
		s = after
	}
}

// ValueRequirement names an output the caller wants: a value name for a target,
// under some property constraints.
type ValueRequirement struct {
	Name        InternedString
	Target      TargetReference
	Constraints ValueProperties
}

// NewValueRequirement creates a requirement.
func NewValueRequirement(name string, target TargetReference, constraints ValueProperties) ValueRequirement {
	return ValueRequirement{Name: NewInternedString(name), Target: target, Constraints: constraints}
}

// String returns a human readable form.
func (r ValueRequirement) String() string {
	target := TargetTypeNull.String()
	if r.Target != nil {
		target = r.Target.String()
	}
	s := r.Name.String() + "@" + target
	if !r.Constraints.IsEmpty() {
		s += r.Constraints.String()
	}
	return s
}

// ValueSpecification is the concrete output a node promises to produce.
type ValueSpecification struct {
	Name       InternedString
	Target     TargetSpecification
	Properties ValueProperties
}

// NewValueSpecification creates a specification.
func NewValueSpecification(name string, target TargetSpecification, props ValueProperties) ValueSpecification {
	return ValueSpecification{Name: NewInternedString(name), Target: target, Properties: props}
}

// String returns a human readable form.
func (s ValueSpecification) String() string {
	out := s.Name.String() + "@" + s.Target.String()
	if !s.Properties.IsEmpty() {
		out += s.Properties.String()
	}
	return out
}

// RequirementSet is a set of value requirements.
type RequirementSet map[ValueRequirement]struct{}

// NewRequirementSet creates a set holding the given requirements.
func NewRequirementSet(reqs ...ValueRequirement) RequirementSet {
	s := make(RequirementSet, len(reqs))
	for _, r := range reqs {
		s.Add(r)
	}
	return s
}

// Add inserts a requirement.
func (s RequirementSet) Add(r ValueRequirement) {
	s[r] = struct{}{}
}

// Contains reports membership.
func (s RequirementSet) Contains(r ValueRequirement) bool {
	_, ok := s[r]
	return ok
}

// Sorted returns the requirements ordered by their string form.
func (s RequirementSet) Sorted() []ValueRequirement {
	out := slices.Collect(maps.Keys(s))
	slices.SortFunc(out, func(a, b ValueRequirement) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}
