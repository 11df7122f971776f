package mapping

// Property is a single named step in a property path: a reference to one
// field or accessor in an object-mapping metadata model. Implementations
// are supplied by the metadata layer; paths hold them by reference and
// never mutate them.
type Property interface {
	// Name returns the property's identifier within its owning type.
	Name() string
}

// NameMapper produces the rendered name for a property when building a
// dot path. Returning the empty string drops the segment from the output
// entirely: no empty segment, no stray separator.
type NameMapper func(Property) string
