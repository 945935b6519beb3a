package vegalite

import (
	"reflect"

	"github.com/reoring/vegalite/i18n"
	"github.com/reoring/vegalite/internal/codec"
)

//go:generate go run ./cmd/vlgen -o zz_generated_builders.go

// builder is the state shared by every generated XBuilder: the value under
// construction, the keys assigned so far and whether Build succeeded.
type builder[T any] struct {
	v    T
	set  map[string]struct{}
	done bool
}

// newBuilder returns a builder with the record defaults (such as "$schema")
// already applied.
func newBuilder[T any]() builder[T] {
	b := builder[T]{set: map[string]struct{}{}}
	if err := model.ApplyDefaults(reflect.ValueOf(&b.v).Elem()); err != nil {
		panic("vegalite: invalid default on " + reflect.TypeOf(b.v).Name() + ": " + err.Error())
	}
	return b
}

func (b *builder[T]) touch(key string) { b.set[key] = struct{}{} }

// build returns the value once every required key is assigned. All missing
// keys are reported together. A failed Build leaves the builder usable; after
// a successful one every further Build fails with builder_finalized.
func (b *builder[T]) build() (T, error) {
	var zero T
	if b.done {
		return zero, singleIssue(CodeBuilderFinalized, "/", i18n.T(CodeBuilderFinalized, nil))
	}
	missing := model.MissingRequired(reflect.ValueOf(b.v), b.set)
	if len(missing) > 0 {
		iss := make(Issues, 0, len(missing))
		for _, k := range missing {
			iss = append(iss, Issue{
				Path:    codec.JoinPointer("", k),
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, map[string]string{"field": k}),
				Offset:  -1,
				Params:  map[string]any{"field": k},
			})
		}
		return zero, iss
	}
	b.done = true
	return b.v, nil
}
