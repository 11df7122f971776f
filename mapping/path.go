package mapping

import (
	"errors"
	"hash/fnv"
	"strings"

	"property-mapper/internal/common"
)

// ErrNilProperties is returned when a path is constructed from a nil
// property sequence. An empty (non-nil) sequence is legal and yields the
// empty path.
var ErrNilProperties = errors.New("property sequence must not be nil")

// PropertyPath is an immutable ordered sequence of properties describing
// navigation through nested properties. It never owns or mutates the
// properties it references.
type PropertyPath struct {
	properties []Property
}

// emptyPath is the canonical zero-length path. Every operation that yields
// "no path" returns this same instance, so callers may rely on pointer
// identity when walking parent chains.
var emptyPath = &PropertyPath{}

// NewPropertyPath builds a path from an ordered property sequence. The
// sequence is copied; later changes to the caller's slice do not affect
// the path.
func NewPropertyPath(properties []Property) (*PropertyPath, error) {
	if properties == nil {
		return nil, ErrNilProperties
	}

	if len(properties) == 0 {
		return emptyPath, nil
	}

	cp := make([]Property, len(properties))
	copy(cp, properties)

	return &PropertyPath{properties: cp}, nil
}

// Length returns the number of properties in the path.
func (p *PropertyPath) Length() int {
	return len(p.properties)
}

// IsEmpty returns true if the path has no properties.
func (p *PropertyPath) IsEmpty() bool {
	return common.IsEmpty(p.properties)
}

// BaseProperty returns the first property of the path, or nil for the
// empty path.
func (p *PropertyPath) BaseProperty() Property {
	prop, _ := common.First(p.properties)
	return prop
}

// LeafProperty returns the last property of the path, or nil for the
// empty path.
func (p *PropertyPath) LeafProperty() Property {
	prop, _ := common.Last(p.properties)
	return prop
}

// ParentPath returns the path without its leaf property. Single-property
// paths yield the canonical empty path; the empty path is its own parent,
// identity included.
func (p *PropertyPath) ParentPath() *PropertyPath {
	switch len(p.properties) {
	case 0:
		return p
	case 1:
		return emptyPath
	default:
		return &PropertyPath{properties: p.properties[:len(p.properties)-1]}
	}
}

// Append returns a new path extended by one leaf property. The receiver
// is left untouched.
func (p *PropertyPath) Append(property Property) *PropertyPath {
	cp := make([]Property, len(p.properties)+1)
	copy(cp, p.properties)
	cp[len(cp)-1] = property

	return &PropertyPath{properties: cp}
}

// IsBasePathOf returns true if this path is a strict prefix of other:
// every property of this path matches the property at the same position
// in other, and other is strictly longer. Properties are compared by
// identity, not by name. A path is never a base path of itself.
func (p *PropertyPath) IsBasePathOf(other *PropertyPath) bool {
	if other == nil || len(p.properties) >= len(other.properties) {
		return false
	}

	for i, prop := range p.properties {
		if prop != other.properties[i] {
			return false
		}
	}

	return true
}

// ExtensionForBaseOf returns the suffix of this path remaining after
// removing base from the front. If base is not a strict prefix of this
// path (including base being this path itself, longer, or nil), the path
// is returned unchanged.
func (p *PropertyPath) ExtensionForBaseOf(base *PropertyPath) *PropertyPath {
	if base == nil || !base.IsBasePathOf(p) {
		return p
	}

	return &PropertyPath{properties: p.properties[len(base.properties):]}
}

// DotPath renders the path by joining the property names with dots.
// The second return is false when nothing was rendered: the empty path,
// or every property carrying an empty name.
func (p *PropertyPath) DotPath() (string, bool) {
	return p.DotPathBy(Property.Name)
}

// DotPathBy renders the path like DotPath but names each property through
// mapper. Properties mapped to the empty string contribute nothing to the
// output: the segment is skipped without leaving an empty segment or a
// stray dot. If every property is skipped the result is absent (ok false),
// not the empty string.
func (p *PropertyPath) DotPathBy(mapper NameMapper) (string, bool) {
	var sb strings.Builder

	rendered := false

	for _, prop := range p.properties {
		name := mapper(prop)
		if name == "" {
			continue
		}

		if rendered {
			sb.WriteByte('.')
		}

		sb.WriteString(name)

		rendered = true
	}

	if !rendered {
		return "", false
	}

	return sb.String(), true
}

// String implements fmt.Stringer over the intrinsic dot path. The empty
// path renders as "".
func (p *PropertyPath) String() string {
	s, _ := p.DotPath()
	return s
}

// Equals returns true if both paths hold identical properties in the same
// order.
func (p *PropertyPath) Equals(other *PropertyPath) bool {
	if p == other {
		return true
	}

	if other == nil || len(p.properties) != len(other.properties) {
		return false
	}

	for i, prop := range p.properties {
		if prop != other.properties[i] {
			return false
		}
	}

	return true
}

// Hash returns a hash consistent with Equals: equal paths hash equal.
func (p *PropertyPath) Hash() uint64 {
	h := fnv.New64a()

	for _, prop := range p.properties {
		h.Write([]byte(prop.Name()))
		h.Write([]byte{0})
	}

	return h.Sum64()
}

// Properties returns a copy of the path's property sequence, leaf last.
func (p *PropertyPath) Properties() []Property {
	if len(p.properties) == 0 {
		return nil
	}

	cp := make([]Property, len(p.properties))
	copy(cp, p.properties)

	return cp
}
