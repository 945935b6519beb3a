package vegalite_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
)

func quantitative(t *testing.T, field string) vegalite.PositionDef {
	t.Helper()
	def, err := vegalite.NewPositionDefBuilder().
		Field(vegalite.String(field)).
		Type(vegalite.TypeQuantitative).
		Build()
	require.NoError(t, err)
	return def
}

func TestScenario_PointScatter(t *testing.T) {
	enc, err := vegalite.NewEncodingBuilder().
		X(quantitative(t, "a")).
		Y(quantitative(t, "b")).
		Build()
	require.NoError(t, err)
	doc, err := vegalite.NewDocumentBuilder().
		Mark(vegalite.MarkPoint).
		Encoding(enc).
		Build()
	require.NoError(t, err)

	out, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	want := `{"$schema":"https://vega.github.io/schema/vega-lite/v3.4.0.json","mark":"point",` +
		`"encoding":{"x":{"field":"a","type":"quantitative"},"y":{"field":"b","type":"quantitative"}}}`
	require.Equal(t, want, string(out))
	require.NotContains(t, string(out), `"title"`)

	back, err := vegalite.FromJSON(out)
	require.NoError(t, err)
	again, err := vegalite.Marshal(back)
	require.NoError(t, err)
	require.Equal(t, string(out), string(again))
	if diff := cmp.Diff(doc, back); diff != "" {
		t.Fatalf("round trip mismatch (-built +decoded):\n%s", diff)
	}
}

func TestScenario_UnknownFieldDropped(t *testing.T) {
	doc, err := vegalite.FromJSON([]byte(`{"mark":"point","encoding":{},"unknownField":123}`))
	require.NoError(t, err)
	out, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, `{"$schema":"`+vegalite.SchemaURL+`","mark":"point","encoding":{}}`, string(out))
}

const layered = `{
  "$schema": "https://vega.github.io/schema/vega-lite/v3.4.0.json",
  "description": "bars & a mean rule",
  "data": {"values": [{"a": "A", "b": 28}, {"a": "B", "b": 55.5}]},
  "transform": [
    {"filter": {"field": "b", "gt": 10}},
    {"calculate": "datum.b < 50 ? 'low' : 'high'", "as": "band"}
  ],
  "layer": [
    {
      "mark": {"type": "bar", "tooltip": true},
      "encoding": {
        "x": {"field": "a", "sort": {"encoding": "y", "order": "descending"}, "type": "ordinal"},
        "y": {"field": "b", "stack": null, "type": "quantitative"}
      }
    },
    {
      "mark": "rule",
      "encoding": {
        "color": {"value": "firebrick"},
        "y": {"aggregate": "mean", "field": "b", "type": "quantitative"}
      }
    }
  ],
  "config": {"view": {"width": 300}}
}`

func TestRoundTrip_Layered(t *testing.T) {
	doc, err := vegalite.FromJSON([]byte(layered))
	require.NoError(t, err)

	out, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	require.JSONEq(t, layered, string(out))
	require.Contains(t, string(out), `datum.b < 50 ? 'low' : 'high'`, "no HTML escaping")
	require.Contains(t, string(out), `"stack":null`)

	back, err := vegalite.FromJSON(out)
	require.NoError(t, err)
	require.True(t, vegalite.Equal(doc, back))

	// typed access to the decoded union alternatives
	filter, ok := doc.Transform[0].(vegalite.FilterTransform)
	require.True(t, ok)
	gt, ok := filter.Filter.(vegalite.FieldGTPredicate)
	require.True(t, ok)
	require.Equal(t, vegalite.Number(10), gt.GT)

	bar, ok := doc.Layer[0].Mark.(vegalite.MarkDef)
	require.True(t, ok)
	require.Equal(t, vegalite.MarkBar, bar.Type)
	require.True(t, doc.Layer[0].Encoding.Y.Stack.IsNull())
	sort, _ := doc.Layer[0].Encoding.X.Sort.Get()
	require.IsType(t, vegalite.SortByEncoding{}, sort)
}

func TestDocument_JSONMethods(t *testing.T) {
	var doc vegalite.Document
	require.NoError(t, doc.UnmarshalJSON([]byte(`{"mark":"tick"}`)))
	b, err := doc.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"$schema":"`+vegalite.SchemaURL+`","mark":"tick"}`, string(b))
	require.Equal(t, string(b), doc.String())
	require.Equal(t, "", vegalite.Document{}.String())
}

func TestDocument_MarkRequiredForUnitViews(t *testing.T) {
	_, err := vegalite.FromJSON([]byte(`{}`))
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, []string{"/mark"}, iss.Paths())
	require.Equal(t, vegalite.CodeRequired, iss[0].Code)

	// composed views need no mark
	_, err = vegalite.FromJSON([]byte(`{"hconcat":[{"mark":"bar"},{"mark":"line"}]}`))
	require.NoError(t, err)
	_, err = vegalite.FromJSON([]byte(`{"layer":[{"encoding":{}}]}`))
	iss, _ = vegalite.AsIssues(err)
	require.Equal(t, []string{"/layer/0/mark"}, iss.Paths())
}

func TestDocument_RecursiveFacet(t *testing.T) {
	src := `{"facet":{"row":{"field":"site","type":"nominal"}},` +
		`"spec":{"layer":[{"mark":"point"},{"layer":[{"mark":"rule"}]}]}}`
	doc, err := vegalite.FromJSON([]byte(src))
	require.NoError(t, err)
	require.NotNil(t, doc.Spec)
	require.Len(t, doc.Spec.Layer[1].Layer, 1)
	require.IsType(t, vegalite.FacetMapping{}, doc.Facet)
	out, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	require.JSONEq(t, `{"$schema":"`+vegalite.SchemaURL+`",`+src[1:], string(out))
}
