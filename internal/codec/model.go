// Package codec maps the typed document model to and from the generic JSON
// tree produced by the token engine. It is driven by reflection over struct
// tags and a precedence table for sealed union interfaces supplied by the
// root package.
package codec

import (
	"reflect"
	"strings"
	"sync"
)

// Presence bits. The values match vegalite.Presence.
const (
	PresenceSeen uint8 = 1 << iota
	PresenceWasNull
	PresenceDefaultApplied
)

// Config configures a Model.
type Config struct {
	// Unions maps a sealed interface type to its variant types in
	// precedence order.
	Unions map[reflect.Type][]reflect.Type
}

// Model holds the union table and a cache of record layouts.
type Model struct {
	unions  map[reflect.Type][]reflect.Type
	records sync.Map // reflect.Type -> *record
}

// New returns a Model for the given configuration.
func New(cfg Config) *Model {
	u := make(map[reflect.Type][]reflect.Type, len(cfg.Unions))
	for k, v := range cfg.Unions {
		u[k] = append([]reflect.Type(nil), v...)
	}
	return &Model{unions: u}
}

// Field describes one record field.
type Field struct {
	Name       string // Go field name
	Key        string // JSON key
	Index      int
	Type       reflect.Type
	Required   bool
	Nullable   bool
	HasDefault bool
	Default    string
}

type record struct {
	fields []Field
	byKey  map[string]int
}

// Fields returns the record layout of struct type t in declared order.
func (m *Model) Fields(t reflect.Type) []Field {
	return m.record(t).fields
}

// Variants returns the variants of union interface t in precedence order.
func (m *Model) Variants(t reflect.Type) ([]reflect.Type, bool) {
	v, ok := m.unions[t]
	return v, ok
}

// Unions returns every registered union interface type.
func (m *Model) Unions() []reflect.Type {
	out := make([]reflect.Type, 0, len(m.unions))
	for t := range m.unions {
		out = append(out, t)
	}
	return out
}

// RequiredKeys lists the JSON keys of required fields of t in declared order.
func (m *Model) RequiredKeys(t reflect.Type) []string {
	var keys []string
	for _, f := range m.record(t).fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

func (m *Model) record(t reflect.Type) *record {
	if r, ok := m.records.Load(t); ok {
		return r.(*record)
	}
	r := buildRecord(t)
	actual, _ := m.records.LoadOrStore(t, r)
	return actual.(*record)
}

func buildRecord(t reflect.Type) *record {
	r := &record{byKey: map[string]int{}}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveKey(sf)
		if key == "-" || key == "" {
			continue
		}
		f := Field{Name: sf.Name, Key: key, Index: i, Type: sf.Type}
		_, f.Nullable = RemovableElem(sf.Type)
		for _, p := range strings.Split(sf.Tag.Get("vl"), ",") {
			p = strings.TrimSpace(p)
			switch {
			case p == "required":
				f.Required = true
			case strings.HasPrefix(p, "default="):
				f.HasDefault = true
				f.Default = strings.TrimPrefix(p, "default=")
			}
		}
		r.byKey[key] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r
}

// ResolveKey resolves a struct field's JSON key.
// Priority: vl:"name=..." > json tag name > field name; "-" disables the field.
func ResolveKey(sf reflect.StructField) string {
	if vt := sf.Tag.Get("vl"); vt != "" {
		for _, p := range strings.Split(vt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			jt = jt[:i]
		}
		if jt != "" {
			return jt
		}
	}
	return sf.Name
}

type tristate interface{ TristateState() uint8 }

type enumer interface{ EnumValues() []string }

type missingKeyer interface{ MissingKeys() []string }

var (
	tristateType = reflect.TypeOf((*tristate)(nil)).Elem()
	enumerType   = reflect.TypeOf((*enumer)(nil)).Elem()
)

const (
	stateUnset uint64 = iota
	stateNull
	statePresent
)

// RemovableElem reports whether t is a Removable wrapper and returns the
// wrapped type.
func RemovableElem(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct || !t.Implements(tristateType) {
		return nil, false
	}
	f, ok := t.FieldByName("V")
	if !ok {
		return nil, false
	}
	return f.Type, true
}

func removableState(v reflect.Value) uint64 { return v.FieldByName("State").Uint() }

func setRemovableState(v reflect.Value, s uint64) { v.FieldByName("State").SetUint(s) }

// EnumValues returns the literal set of an enumerated string type, or nil.
func EnumValues(t reflect.Type) []string {
	if t.Kind() != reflect.String || !t.Implements(enumerType) {
		return nil
	}
	return reflect.Zero(t).Interface().(enumer).EnumValues()
}

// IsPassthrough reports whether t is the empty interface.
func IsPassthrough(t reflect.Type) bool {
	return t.Kind() == reflect.Interface && t.NumMethod() == 0
}
