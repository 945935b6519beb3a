package vegalite

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/mitchellh/copystructure"
)

// Clone returns a deep copy of v that shares no memory with it. Mutating the
// clone (slices, maps, nested records) never affects v.
//
// Clone panics if v holds something copystructure cannot copy, such as a
// channel; model values never do.
func Clone[T any](v T) T {
	if any(v) == nil {
		return v
	}
	out, err := copystructure.Copy(v)
	if err != nil {
		panic(fmt.Sprintf("vegalite: clone %T: %v", v, err))
	}
	if out == nil {
		var zero T
		return zero
	}
	return out.(T)
}

// Equal reports whether a and b are structurally equal. A nil slice differs
// from an empty one, as they encode differently.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b)
}
