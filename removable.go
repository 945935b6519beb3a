package vegalite

import "reflect"

// State is the presence state of a Removable field.
type State uint8

const (
	StateUnset   State = iota // Key is omitted from the JSON object.
	StateNull                 // Key is emitted as null.
	StatePresent              // Key is emitted with V.
)

func (s State) String() string {
	switch s {
	case StateNull:
		return "null"
	case StatePresent:
		return "present"
	default:
		return "unset"
	}
}

// Removable holds a field where an explicit null means something different
// from an absent key. In Vega-Lite a null removes an inherited default (for
// example "axis": null hides the axis) while absence keeps the default.
//
// The zero value is unset.
type Removable[T any] struct {
	V     T
	State State
}

// Unset returns a Removable whose key is omitted on output.
func Unset[T any]() Removable[T] { return Removable[T]{} }

// Null returns a Removable that serializes as JSON null.
func Null[T any]() Removable[T] { return Removable[T]{State: StateNull} }

// Some returns a Removable holding v. A nil pointer or interface has no value
// to write, so Some of one is the same as Null.
func Some[T any](v T) Removable[T] {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null[T]()
		}
	}
	return Removable[T]{V: v, State: StatePresent}
}

func (r Removable[T]) IsUnset() bool   { return r.State == StateUnset }
func (r Removable[T]) IsNull() bool    { return r.State == StateNull }
func (r Removable[T]) IsPresent() bool { return r.State == StatePresent }

// IsZero reports whether the key would be omitted.
func (r Removable[T]) IsZero() bool { return r.State == StateUnset }

// Get returns the value and true when present. Null and unset both yield the
// zero value and false.
func (r Removable[T]) Get() (T, bool) {
	if r.State != StatePresent {
		var zero T
		return zero, false
	}
	return r.V, true
}

// OrElse returns the held value, or d when the field is null or unset.
func (r Removable[T]) OrElse(d T) T {
	if v, ok := r.Get(); ok {
		return v
	}
	return d
}

// TristateState exposes the state to the codec without an import cycle.
func (r Removable[T]) TristateState() uint8 { return uint8(r.State) }
