package vegalite

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reoring/vegalite/internal/codec"
	"github.com/reoring/vegalite/internal/ir"
	js "github.com/reoring/vegalite/jsonschema"
)

// JSONSchema projects the Document type graph onto a draft-07 JSON Schema.
// Records and enums become named definitions, unions become anyOf lists in
// decoding precedence order and Removable fields accept null.
func JSONSchema() (*js.Schema, error) {
	p := &projector{defs: map[string]ir.Schema{}}
	root := p.node(typeOf[Document]())
	defs := make(map[string]*js.Schema, len(p.defs))
	for name, n := range p.defs {
		s, err := toJSONSchema(n)
		if err != nil {
			return nil, fmt.Errorf("vegalite: schema for %s: %w", name, err)
		}
		defs[name] = s
	}
	out, err := toJSONSchema(root)
	if err != nil {
		return nil, err
	}
	out.Schema = js.Draft07
	out.Definitions = defs
	return out, nil
}

// projector lowers reflect types into IR nodes. Named records, unions and
// enums are emitted once into defs and referenced elsewhere, which also
// terminates recursion through Spec and LayerSpec.
type projector struct {
	defs map[string]ir.Schema
}

func (p *projector) node(t reflect.Type) ir.Schema {
	if elem, ok := codec.RemovableElem(t); ok {
		return &ir.Nullable{Inner: p.node(elem)}
	}
	if vals := codec.EnumValues(t); vals != nil {
		return p.define(t, func() ir.Schema { return &ir.Enum{Values: vals} })
	}
	switch t.Kind() {
	case reflect.Pointer:
		return p.node(t.Elem())
	case reflect.Interface:
		variants, ok := model.Variants(t)
		if !ok {
			return ir.Any{}
		}
		return p.define(t, func() ir.Schema {
			u := &ir.OneOf{Name: t.Name()}
			for _, v := range variants {
				u.Variants = append(u.Variants, p.node(v))
			}
			return u
		})
	case reflect.Struct:
		return p.define(t, func() ir.Schema { return p.object(t) })
	case reflect.Slice, reflect.Array:
		return &ir.Array{Item: p.node(t.Elem())}
	case reflect.Map:
		return &ir.Map{Value: p.node(t.Elem())}
	case reflect.String:
		return &ir.Primitive{Name: "string"}
	case reflect.Bool:
		return &ir.Primitive{Name: "boolean"}
	case reflect.Float32, reflect.Float64:
		return &ir.Primitive{Name: "number"}
	}
	return ir.Any{}
}

func (p *projector) define(t reflect.Type, build func() ir.Schema) ir.Schema {
	name := t.Name()
	if _, ok := p.defs[name]; !ok {
		// placeholder first: the build may reach t again
		p.defs[name] = ir.Any{}
		p.defs[name] = build()
	}
	return &ir.Ref{Name: name}
}

func (p *projector) object(t reflect.Type) *ir.Object {
	obj := &ir.Object{Name: t.Name(), Required: map[string]struct{}{}}
	for _, f := range model.Fields(t) {
		field := ir.Field{
			Name:   f.Key,
			GoName: f.Name,
			GoType: f.Type.String(),
			Schema: p.node(f.Type),
		}
		if f.HasDefault {
			field.Default = defaultLiteral(field.Schema, f.Default)
		}
		if f.Required {
			obj.Required[f.Key] = struct{}{}
		}
		obj.Fields = append(obj.Fields, field)
	}
	return obj
}

// defaultLiteral converts a tag literal to its wire shape.
func defaultLiteral(s ir.Schema, lit string) any {
	prim, ok := s.(*ir.Primitive)
	if !ok {
		return lit
	}
	switch prim.Name {
	case "number", "integer":
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return f
		}
	case "boolean":
		if b, err := strconv.ParseBool(lit); err == nil {
			return b
		}
	}
	return lit
}

func toJSONSchema(n ir.Schema) (*js.Schema, error) {
	switch n := n.(type) {
	case *ir.Primitive:
		return &js.Schema{Type: n.Name}, nil
	case *ir.Array:
		items, err := toJSONSchema(n.Item)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: items}, nil
	case *ir.Map:
		val, err := toJSONSchema(n.Value)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "object", AdditionalProperties: val}, nil
	case *ir.Object:
		out := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(n.Fields))}
		for _, f := range n.Fields {
			ps, err := toJSONSchema(f.Schema)
			if err != nil {
				return nil, err
			}
			if f.Default != nil {
				ps.Default = f.Default
			}
			out.Properties[f.Name] = ps
		}
		out.Required = n.RequiredKeys()
		return out, nil
	case *ir.OneOf:
		out := &js.Schema{}
		for _, v := range n.Variants {
			vs, err := toJSONSchema(v)
			if err != nil {
				return nil, err
			}
			out.AnyOf = append(out.AnyOf, vs)
		}
		return out, nil
	case *ir.Enum:
		return &js.Schema{Type: "string", Enum: n.Values}, nil
	case *ir.Nullable:
		inner, err := toJSONSchema(n.Inner)
		if err != nil {
			return nil, err
		}
		return &js.Schema{AnyOf: []*js.Schema{inner, js.Null()}}, nil
	case *ir.Ref:
		return js.RefTo(n.Name), nil
	case ir.Any:
		return &js.Schema{}, nil
	}
	return nil, fmt.Errorf("unsupported IR node %T", n)
}
