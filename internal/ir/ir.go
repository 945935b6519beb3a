// Package ir is the intermediate representation shared by the JSON Schema
// projection and the builder generator. It is internal and not part of the
// public API.
package ir

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodePrimitive NodeKind = iota
	NodeArray
	NodeMap
	NodeObject
	NodeOneOf
	NodeEnum
	NodeNullable
	NodeRef
	NodeAny
)

// Schema is the root IR node interface.
type Schema interface {
	Kind() NodeKind
}

// Primitive represents string/boolean/number primitives.
type Primitive struct {
	Name string // "string"|"boolean"|"number" (JSON compatible names)
}

func (p *Primitive) Kind() NodeKind { return NodePrimitive }

// Array represents an array of items.
type Array struct {
	Item Schema
}

func (a *Array) Kind() NodeKind { return NodeArray }

// Map represents an object with arbitrary keys and uniform values.
type Map struct {
	Value Schema
}

func (m *Map) Kind() NodeKind { return NodeMap }

// Object represents a record with named fields in declared order.
type Object struct {
	Name     string
	Fields   []Field
	Required map[string]struct{}
}

func (o *Object) Kind() NodeKind { return NodeObject }

// RequiredKeys lists required field names in declared order.
func (o *Object) RequiredKeys() []string {
	var out []string
	for _, f := range o.Fields {
		if _, ok := o.Required[f.Name]; ok {
			out = append(out, f.Name)
		}
	}
	return out
}

// Field maps a JSON name to a Schema and the Go declaration it came from.
type Field struct {
	Name    string // JSON name
	GoName  string // Go field name
	GoType  string // Go type expression as written
	Schema  Schema
	Default any // optional materialized default (wire shape)
}

// OneOf represents an untagged union; Variants are in precedence order.
type OneOf struct {
	Name     string
	Variants []Schema
}

func (u *OneOf) Kind() NodeKind { return NodeOneOf }

// Enum represents a closed set of string literals.
type Enum struct {
	Values []string
}

func (e *Enum) Kind() NodeKind { return NodeEnum }

// Nullable accepts null in addition to Inner.
type Nullable struct {
	Inner Schema
}

func (n *Nullable) Kind() NodeKind { return NodeNullable }

// Ref points at a named definition.
type Ref struct {
	Name string
}

func (r *Ref) Kind() NodeKind { return NodeRef }

// Any accepts every JSON value.
type Any struct{}

func (Any) Kind() NodeKind { return NodeAny }
