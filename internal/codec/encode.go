package codec

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// EncodeOptions controls encoding.
type EncodeOptions struct {
	// Skip, when set, reports whether the record field at the given JSON
	// Pointer is left out of the output.
	Skip func(path string) bool
}

// Encode renders v as compact JSON. Record keys follow declared field order,
// unset optional fields are omitted and strings are not HTML-escaped.
func (m *Model) Encode(v reflect.Value, opt EncodeOptions) ([]byte, []Issue) {
	e := &encoder{m: m, opt: opt}
	e.encode("", v)
	if len(e.issues) > 0 {
		return nil, e.issues
	}
	return e.buf.Bytes(), nil
}

type encoder struct {
	m      *Model
	opt    EncodeOptions
	buf    bytes.Buffer
	issues []Issue
}

func (e *encoder) fail(path, code string, params map[string]any) {
	e.issues = append(e.issues, Issue{Path: rootPath(path), Code: code, Params: params})
}

func (e *encoder) encode(path string, v reflect.Value) {
	t := v.Type()
	if _, ok := RemovableElem(t); ok {
		if removableState(v) != statePresent {
			e.buf.WriteString("null")
			return
		}
		inner := v.FieldByName("V")
		if isNilRef(inner) {
			e.fail(path, CodeInvalidType, map[string]any{"expected": expectedKind(inner.Type()), "got": "null"})
			return
		}
		e.encode(path, inner)
		return
	}
	switch t.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			e.buf.WriteString("null")
			return
		}
		if IsPassthrough(t) {
			e.marshal(path, v.Elem().Interface())
			return
		}
		e.encode(path, v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			e.buf.WriteString("null")
			return
		}
		e.encode(path, v.Elem())
	case reflect.Struct:
		e.encodeRecord(path, v)
	case reflect.Slice, reflect.Array:
		e.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.encode(path+"/"+strconv.Itoa(i), v.Index(i))
		}
		e.buf.WriteByte(']')
	case reflect.Map:
		e.encodeMap(path, v)
	case reflect.String:
		e.marshal(path, v.String())
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			e.fail(path, CodeInvalidType, map[string]any{"expected": "number", "got": fmt.Sprint(f)})
			return
		}
		e.marshal(path, f)
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	default:
		e.fail(path, CodeInvalidType, map[string]any{"got": t.String()})
	}
}

func (e *encoder) encodeRecord(path string, v reflect.Value) {
	rec := e.m.record(v.Type())
	e.buf.WriteByte('{')
	first := true
	for _, f := range rec.fields {
		fv := v.Field(f.Index)
		fp := JoinPointer(path, f.Key)
		if e.opt.Skip != nil && e.opt.Skip(fp) {
			continue
		}
		if omitted(fv, f) {
			if f.Required {
				e.fail(fp, CodeRequired, map[string]any{"field": f.Key})
			}
			continue
		}
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		e.marshal(fp, f.Key)
		e.buf.WriteByte(':')
		if f.HasDefault && fv.IsZero() {
			tmp := reflect.New(f.Type).Elem()
			if err := setDefault(tmp, f.Default); err != nil {
				e.fail(fp, CodeInvalidType, map[string]any{"default": f.Default})
				continue
			}
			fv = tmp
		}
		e.encode(fp, fv)
	}
	if mk, ok := v.Interface().(missingKeyer); ok {
		for _, k := range mk.MissingKeys() {
			e.fail(JoinPointer(path, k), CodeRequired, map[string]any{"field": k})
		}
	}
	e.buf.WriteByte('}')
}

func (e *encoder) encodeMap(path string, v reflect.Value) {
	keys := make([]string, 0, v.Len())
	vals := make(map[string]reflect.Value, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		vals[k] = iter.Value()
	}
	sort.Strings(keys)
	e.buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.marshal(path, k)
		e.buf.WriteByte(':')
		e.encode(JoinPointer(path, k), vals[k])
	}
	e.buf.WriteByte('}')
}

func (e *encoder) marshal(path string, x any) {
	b, err := MarshalValue(x)
	if err != nil {
		e.fail(path, CodeInvalidType, map[string]any{"error": err.Error()})
		return
	}
	e.buf.Write(b)
}

// MarshalValue renders x as compact JSON with <, > and & left as they are.
func MarshalValue(x any) ([]byte, error) {
	var buf bytes.Buffer
	enc := gojson.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(x); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// isNilRef reports whether v is a nil pointer or interface.
func isNilRef(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func omitted(v reflect.Value, f Field) bool {
	if f.Nullable {
		return removableState(v) == stateUnset
	}
	if f.HasDefault {
		return false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
	return false
}

// setDefault parses a tag literal into v according to its kind.
func setDefault(v reflect.Value, lit string) error {
	switch v.Kind() {
	case reflect.Pointer:
		p := reflect.New(v.Type().Elem())
		if err := setDefault(p.Elem(), lit); err != nil {
			return err
		}
		v.Set(p)
	case reflect.String:
		v.SetString(lit)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(lit)
		if err != nil {
			return err
		}
		v.SetBool(b)
	default:
		return fmt.Errorf("codec: unsupported default for %s", v.Type())
	}
	return nil
}

// ApplyDefaults sets every zero-valued defaulted field of the record v.
func (m *Model) ApplyDefaults(v reflect.Value) error {
	for _, f := range m.record(v.Type()).fields {
		if !f.HasDefault {
			continue
		}
		fv := v.Field(f.Index)
		if !fv.IsZero() {
			continue
		}
		if err := setDefault(fv, f.Default); err != nil {
			return err
		}
	}
	return nil
}

// MissingRequired lists required keys of record v that were not assigned.
// A key counts as assigned when it is in touched and holds a value.
func (m *Model) MissingRequired(v reflect.Value, touched map[string]struct{}) []string {
	var missing []string
	seen := map[string]struct{}{}
	for _, f := range m.record(v.Type()).fields {
		if !f.Required {
			continue
		}
		_, ok := touched[f.Key]
		if !ok || omitted(v.Field(f.Index), f) {
			missing = append(missing, f.Key)
			seen[f.Key] = struct{}{}
		}
	}
	if mk, ok := v.Interface().(missingKeyer); ok {
		for _, k := range mk.MissingKeys() {
			if _, dup := seen[k]; !dup {
				missing = append(missing, k)
			}
		}
	}
	return missing
}
