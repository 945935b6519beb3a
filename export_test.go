package vegalite_test

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
	js "github.com/reoring/vegalite/jsonschema"
)

func TestJSONSchema_Root(t *testing.T) {
	s, err := vegalite.JSONSchema()
	require.NoError(t, err)
	require.Equal(t, js.Draft07, s.Schema)
	require.Equal(t, "#/definitions/Document", s.Ref)

	doc := s.Definitions["Document"]
	require.NotNil(t, doc)
	require.Equal(t, "object", doc.Type)
	require.Empty(t, doc.Required, "mark is conditionally required")

	schema := doc.Properties["$schema"]
	require.Equal(t, "string", schema.Type)
	require.Equal(t, vegalite.SchemaURL, schema.Default)

	// Recursion through nested views is expressed with references.
	require.Equal(t, "#/definitions/Spec", doc.Properties["spec"].Ref)
	require.Equal(t, "#/definitions/Spec", doc.Properties["hconcat"].Items.Ref)
	require.Equal(t, "#/definitions/Spec", s.Definitions["Spec"].Properties["spec"].Ref)
}

func TestJSONSchema_UnionsAndNullables(t *testing.T) {
	s, err := vegalite.JSONSchema()
	require.NoError(t, err)

	anyMark := s.Definitions["AnyMark"]
	require.NotNil(t, anyMark)
	var refs []string
	for _, v := range anyMark.AnyOf {
		refs = append(refs, v.Ref)
	}
	require.Equal(t, []string{
		"#/definitions/CompositeMark", "#/definitions/CompositeMarkDef",
		"#/definitions/Mark", "#/definitions/MarkDef",
	}, refs)
	require.Contains(t, s.Definitions["Mark"].Enum, "bar")

	data := s.Definitions["Document"].Properties["data"]
	require.Len(t, data.AnyOf, 2)
	require.Equal(t, "#/definitions/Data", data.AnyOf[0].Ref)
	require.Equal(t, "null", data.AnyOf[1].Type)

	lookup := s.Definitions["LookupData"]
	require.Equal(t, []string{"data", "key"}, lookup.Required)
	require.Equal(t, "array", lookup.Properties["fields"].Type)
	require.Equal(t, "string", lookup.Properties["fields"].Items.Type)
}

func TestJSONSchema_Marshals(t *testing.T) {
	s, err := vegalite.JSONSchema()
	require.NoError(t, err)
	b, err := gojson.Marshal(s)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, gojson.Unmarshal(b, &generic))
	require.Equal(t, "#/definitions/Document", generic["$ref"])
	defs, ok := generic["definitions"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, defs, "Predicate")
	require.Contains(t, defs, "Transform")
}
