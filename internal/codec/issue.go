package codec

import (
	"reflect"
	"strings"
	"unicode/utf8"
)

// Issue codes produced by the codec.
const (
	CodeRequired          = "required"
	CodeInvalidType       = "invalid_type"
	CodeNoMatchingVariant = "no_matching_variant"
	CodeUnknownKey        = "unknown_key"
)

// MaxFragment caps Issue.InputFragment in bytes.
const MaxFragment = 256

// Issue is a codec finding. The root package converts it to vegalite.Issue.
type Issue struct {
	Path          string
	Code          string
	Params        map[string]any
	InputFragment string
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// JoinPointer appends an escaped reference token to a JSON Pointer.
func JoinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}

func rootPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// Fragment renders raw compactly, truncated to MaxFragment bytes on a rune
// boundary.
func Fragment(raw any) string {
	b, err := MarshalValue(raw)
	if err != nil {
		return ""
	}
	if len(b) <= MaxFragment {
		return string(b)
	}
	n := MaxFragment
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return string(b[:n])
}

func jsonKind(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		if _, ok := toFloat(raw); ok {
			return "number"
		}
		return reflect.TypeOf(raw).String()
	}
}

func expectedKind(t reflect.Type) string {
	if inner, ok := RemovableElem(t); ok {
		return expectedKind(inner)
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Pointer:
		return expectedKind(t.Elem())
	default:
		return t.Name()
	}
}
