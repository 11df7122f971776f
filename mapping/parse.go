package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPath is returned when parsing an empty dot path.
var ErrEmptyPath = errors.New("empty path")

// PropertyResolver looks up one path segment by name in the context of the
// path resolved so far. parent is the (possibly empty) path of the segments
// preceding this one. Returning false marks the segment as unresolvable.
type PropertyResolver func(parent *PropertyPath, name string) (Property, bool)

// ParseDotPath parses a dot-notation path like "address.street.name" into
// a PropertyPath, resolving each segment through resolve. Segment names
// must be plain identifiers; empty or unresolvable segments fail the parse.
func ParseDotPath(path string, resolve PropertyResolver) (*PropertyPath, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	current := emptyPath

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if !isValidIdent(part) {
			return nil, fmt.Errorf("invalid path %q: invalid identifier %q", path, part)
		}

		prop, ok := resolve(current, part)
		if !ok {
			return nil, fmt.Errorf("invalid path %q: unresolvable segment %q", path, part)
		}

		current = current.Append(prop)
	}

	return current, nil
}

// isValidIdent checks if a string is a valid identifier.
func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			// Subsequent characters can be letter, digit, or underscore
			if !isLetter(r) && !isDigit(r) && r != '_' {
				return false
			}
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
