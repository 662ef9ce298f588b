// Package fieldmask implements the partial-update merge shared by every
// update handler. Each resource declares its settable fields once as a map
// of named setters; the merge itself is resource-agnostic.
package fieldmask

import (
	"fmt"

	"github.com/bandroom/bandroom/internal/common"
)

// Setter copies a single named field from src onto dst.
type Setter[T any] func(dst *T, src *T)

// Apply computes the record to persist from the currently stored record,
// the caller-supplied record and an optional list of field names.
//
// With no paths the incoming record wins wholesale (full replace). With
// paths, the result starts from existing and only the named fields are
// taken from incoming. An unrecognized path fails the whole merge with
// common.ErrorUnknownMaskPath; nothing is partially applied.
//
// The merge is pure: neither input is modified, and applying the same
// mask twice yields the same result as applying it once.
func Apply[T any](existing, incoming T, paths []string, setters map[string]Setter[T]) (T, error) {
	if len(paths) == 0 {
		return incoming, nil
	}

	result := existing
	for _, path := range paths {
		set, ok := setters[path]
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: %q", common.ErrorUnknownMaskPath, path)
		}
		set(&result, &incoming)
	}

	return result, nil
}
