package codec

import (
	"reflect"
	"slices"
	"sort"
	"strconv"
)

// DecodeOptions controls decoding.
type DecodeOptions struct {
	// Strict reports unknown object keys as unknown_key issues instead of
	// dropping them.
	Strict bool
	// FailFast stops at the first issue.
	FailFast bool
}

// Result is the outcome of Decode.
type Result struct {
	Issues   []Issue
	Presence map[string]uint8
}

// Decode fills out (a settable value) from a generic JSON tree. On failure
// out is left untouched and Result.Issues is non-empty.
func (m *Model) Decode(raw any, out reflect.Value, opt DecodeOptions) Result {
	d := &decoder{m: m, opt: opt, presence: map[string]uint8{"/": PresenceSeen}}
	v, ok := d.decode("", raw, out.Type())
	if opt.Strict {
		d.issues = append(d.issues, d.unknown...)
	}
	if !ok || len(d.issues) > 0 {
		return Result{Issues: d.issues, Presence: d.presence}
	}
	out.Set(v)
	return Result{Presence: d.presence}
}

type decoder struct {
	m        *Model
	opt      DecodeOptions
	issues   []Issue
	unknown  []Issue
	presence map[string]uint8
}

func (d *decoder) fail(path, code string, params map[string]any) {
	d.issues = append(d.issues, Issue{Path: rootPath(path), Code: code, Params: params})
}

func (d *decoder) mismatch(path string, raw any, t reflect.Type) {
	d.fail(path, CodeInvalidType, map[string]any{"expected": expectedKind(t), "got": jsonKind(raw)})
}

func (d *decoder) stop() bool { return d.opt.FailFast && len(d.issues) > 0 }

func (d *decoder) decode(path string, raw any, t reflect.Type) (reflect.Value, bool) {
	if inner, ok := RemovableElem(t); ok {
		out := reflect.New(t).Elem()
		if raw == nil {
			setRemovableState(out, stateNull)
			return out, true
		}
		v, ok := d.decode(path, raw, inner)
		if !ok {
			return out, false
		}
		out.FieldByName("V").Set(v)
		setRemovableState(out, statePresent)
		return out, true
	}
	if IsPassthrough(t) {
		out := reflect.New(t).Elem()
		if n := Normalize(raw); n != nil {
			out.Set(reflect.ValueOf(n))
		}
		return out, true
	}
	if t.Kind() == reflect.Interface {
		return d.decodeUnion(path, raw, t)
	}
	if raw == nil {
		d.mismatch(path, raw, t)
		return reflect.Zero(t), false
	}

	switch t.Kind() {
	case reflect.Pointer:
		v, ok := d.decode(path, raw, t.Elem())
		if !ok {
			return reflect.Zero(t), false
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(v)
		return p, true
	case reflect.Struct:
		return d.decodeRecord(path, raw, t)
	case reflect.Slice:
		return d.decodeSlice(path, raw, t)
	case reflect.Map:
		return d.decodeMap(path, raw, t)
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			d.mismatch(path, raw, t)
			return reflect.Zero(t), false
		}
		if allowed := EnumValues(t); allowed != nil && !slices.Contains(allowed, s) {
			d.fail(path, CodeInvalidType, map[string]any{"expected": allowed, "got": s})
			return reflect.Zero(t), false
		}
		return reflect.ValueOf(s).Convert(t), true
	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(raw)
		if !ok {
			d.mismatch(path, raw, t)
			return reflect.Zero(t), false
		}
		return reflect.ValueOf(f).Convert(t), true
	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			d.mismatch(path, raw, t)
			return reflect.Zero(t), false
		}
		return reflect.ValueOf(b).Convert(t), true
	}
	d.mismatch(path, raw, t)
	return reflect.Zero(t), false
}

func (d *decoder) decodeRecord(path string, raw any, t reflect.Type) (reflect.Value, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		d.mismatch(path, raw, t)
		return reflect.Zero(t), false
	}
	rec := d.m.record(t)
	out := reflect.New(t).Elem()
	good := true
	for _, f := range rec.fields {
		fp := JoinPointer(path, f.Key)
		val, present := obj[f.Key]
		if !present {
			switch {
			case f.HasDefault:
				if err := setDefault(out.Field(f.Index), f.Default); err != nil {
					d.fail(fp, CodeInvalidType, map[string]any{"default": f.Default})
					good = false
				} else {
					d.presence[fp] |= PresenceDefaultApplied
				}
			case f.Required:
				d.fail(fp, CodeRequired, map[string]any{"field": f.Key})
				good = false
			}
			if d.stop() {
				return out, false
			}
			continue
		}
		d.presence[fp] |= PresenceSeen
		if val == nil {
			d.presence[fp] |= PresenceWasNull
			switch {
			case f.Nullable:
				setRemovableState(out.Field(f.Index), stateNull)
			case f.Required:
				d.mismatch(fp, val, f.Type)
				good = false
			}
			if d.stop() {
				return out, false
			}
			continue
		}
		v, ok := d.decode(fp, val, f.Type)
		if !ok {
			good = false
			if d.stop() {
				return out, false
			}
			continue
		}
		out.Field(f.Index).Set(v)
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		if _, known := rec.byKey[k]; !known {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.unknown = append(d.unknown, Issue{Path: JoinPointer(path, k), Code: CodeUnknownKey, Params: map[string]any{"key": k}})
	}

	if good {
		if mk, ok := out.Interface().(missingKeyer); ok {
			for _, k := range mk.MissingKeys() {
				d.fail(JoinPointer(path, k), CodeRequired, map[string]any{"field": k})
				good = false
			}
		}
	}
	return out, good
}

func (d *decoder) decodeSlice(path string, raw any, t reflect.Type) (reflect.Value, bool) {
	arr, ok := raw.([]any)
	if !ok {
		d.mismatch(path, raw, t)
		return reflect.Zero(t), false
	}
	out := reflect.MakeSlice(t, 0, len(arr))
	good := true
	for i, el := range arr {
		v, ok := d.decode(path+"/"+strconv.Itoa(i), el, t.Elem())
		if !ok {
			good = false
			if d.stop() {
				break
			}
			continue
		}
		out = reflect.Append(out, v)
	}
	return out, good
}

func (d *decoder) decodeMap(path string, raw any, t reflect.Type) (reflect.Value, bool) {
	obj, ok := raw.(map[string]any)
	if !ok || t.Key().Kind() != reflect.String {
		d.mismatch(path, raw, t)
		return reflect.Zero(t), false
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := reflect.MakeMapWithSize(t, len(obj))
	good := true
	for _, k := range keys {
		v, ok := d.decode(JoinPointer(path, k), obj[k], t.Elem())
		if !ok {
			good = false
			if d.stop() {
				break
			}
			continue
		}
		out.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), v)
	}
	return out, good
}

// decodeUnion tries each variant in precedence order; the first one that
// decodes without issues wins. Unknown keys never disqualify a variant.
func (d *decoder) decodeUnion(path string, raw any, t reflect.Type) (reflect.Value, bool) {
	variants, ok := d.m.unions[t]
	if !ok {
		d.fail(path, CodeInvalidType, map[string]any{"expected": t.String()})
		return reflect.Zero(t), false
	}
	tried := make([]string, 0, len(variants))
	for _, vt := range variants {
		sub := &decoder{m: d.m, opt: DecodeOptions{FailFast: true}, presence: map[string]uint8{}}
		v, ok := sub.decode(path, raw, vt)
		if ok && len(sub.issues) == 0 {
			for k, p := range sub.presence {
				d.presence[k] |= p
			}
			d.unknown = append(d.unknown, sub.unknown...)
			out := reflect.New(t).Elem()
			out.Set(v)
			return out, true
		}
		tried = append(tried, vt.Name())
	}
	d.issues = append(d.issues, Issue{
		Path:          rootPath(path),
		Code:          CodeNoMatchingVariant,
		Params:        map[string]any{"union": t.Name(), "variants": tried},
		InputFragment: Fragment(Normalize(raw)),
	})
	return reflect.Zero(t), false
}
