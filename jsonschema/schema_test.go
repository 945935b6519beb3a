package jsonschema

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestSchema_MarshalOmitsEmpty(t *testing.T) {
	s := &Schema{
		Schema:      Draft07,
		Ref:         "#/definitions/Document",
		Definitions: map[string]*Schema{"Document": {Type: "object"}},
	}
	b, err := gojson.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"$ref": "#/definitions/Document",
		"definitions": {"Document": {"type": "object"}}
	}`, string(b))
}

func TestRefTo(t *testing.T) {
	require.Equal(t, "#/definitions/Scale", RefTo("Scale").Ref)
	require.Equal(t, "null", Null().Type)
}
