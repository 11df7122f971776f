// Package mapping provides the property path value object of the
// object-mapping toolkit: an immutable, ordered chain of property
// references with the algebra needed to navigate nested shapes
// (e.g. "address.street.name").
//
// # Key capabilities
//
//   - Base/leaf access and parent derivation with a canonical empty path
//   - Strict-prefix (base path) detection and extension computation
//   - Dot-notation rendering with optional per-property name mapping
//   - Dot-notation parsing against a caller-supplied property resolver
//
// Property metadata itself (reflective discovery, conversion, persistence)
// lives in the layers that consume these paths; this package only depends
// on the minimal Property contract.
//
// Paths are immutable after construction and safe for concurrent use.
package mapping
