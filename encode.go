package vegalite

import (
	"bytes"
	"reflect"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/vegalite/internal/codec"
)

// Marshal renders v as compact JSON. Record keys follow declared field
// order, unset optional fields are omitted, defaulted fields (such as
// Document.Schema) are always written and strings are not HTML-escaped.
// A record with an unassigned required field fails with a required issue.
func Marshal(v any) ([]byte, error) {
	return marshal(v, codec.EncodeOptions{})
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, b, prefix, indent); err != nil {
		return nil, singleIssue(CodeInvalidType, "/", err.Error())
	}
	return buf.Bytes(), nil
}

func marshal(v any, opt codec.EncodeOptions) ([]byte, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []byte("null"), nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return []byte("null"), nil
	}
	b, iss := model.Encode(rv, opt)
	if len(iss) > 0 {
		return nil, fromCodecIssues(iss)
	}
	return b, nil
}
