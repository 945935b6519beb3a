package vegalite

// Scalar and list variants shared by the unions. They are plain named types so
// that a literal converts directly: String("date"), Number(3), Bool(true).

// String is a JSON string.
type String string

// Number is a JSON number.
type Number float64

// Bool is a JSON boolean.
type Bool bool

// StringArray is an array of strings.
type StringArray []string

// NumberArray is an array of numbers.
type NumberArray []float64

// TextDefs is the multi-field form of the tooltip channel.
type TextDefs []TextDef

// FieldDefs is the multi-field form of the detail channel.
type FieldDefs []FieldDef

// OrderFieldDefs is the multi-field form of the order channel.
type OrderFieldDefs []OrderFieldDef

// ConditionalValueDefs lists conditions evaluated in order.
type ConditionalValueDefs []ConditionalValueDef

// InlineValues is an array of inline rows kept as plain JSON values
// (map[string]any rows, numbers as float64).
type InlineValues []any

// DomainValues is an explicit scale domain kept as plain JSON values.
type DomainValues []any

// InlineObject is a single inline object such as a TopoJSON topology.
type InlineObject map[string]any

// Ptr returns a pointer to v. Optional scalar fields are pointers:
//
//	vegalite.PositionDef{Field: vegalite.String("x"), Type: vegalite.Ptr(vegalite.TypeQuantitative)}
func Ptr[T any](v T) *T { return &v }
