package vegalite_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
)

const barYAML = `
mark: bar
data:
  values:
    - {a: A, b: 28}
    - {a: B, b: 55.5}
encoding:
  x: {field: a, type: ordinal}
  y: {field: b, type: quantitative, axis: null}
`

const barJSON = `{
  "mark": "bar",
  "data": {"values": [{"a": "A", "b": 28}, {"a": "B", "b": 55.5}]},
  "encoding": {
    "x": {"field": "a", "type": "ordinal"},
    "y": {"field": "b", "type": "quantitative", "axis": null}
  }
}`

func TestUnmarshalYAML_MatchesJSON(t *testing.T) {
	var fromYAML vegalite.Document
	require.NoError(t, vegalite.UnmarshalYAML([]byte(barYAML), &fromYAML))
	fromJSON, err := vegalite.FromJSON([]byte(barJSON))
	require.NoError(t, err)
	require.True(t, vegalite.Equal(fromJSON, fromYAML))
	require.True(t, fromYAML.Encoding.Y.Axis.IsNull())

	a, err := vegalite.Marshal(fromYAML)
	require.NoError(t, err)
	b, err := vegalite.Marshal(fromJSON)
	require.NoError(t, err)
	require.Equal(t, string(b), string(a))
}

func TestUnmarshalYAML_Errors(t *testing.T) {
	var doc vegalite.Document
	err := vegalite.UnmarshalYAML([]byte("mark: [bar\n"), &doc)
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeParseError, iss[0].Code)

	err = vegalite.UnmarshalYAML([]byte("mark: bar\ncolour: red\n"), &doc, vegalite.ParseOpt{Unknown: vegalite.UnknownStrict})
	iss, ok = vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, []string{"/colour"}, iss.Paths())

	require.Error(t, vegalite.UnmarshalYAML([]byte("mark: bar\n"), doc))
}

func TestReadYAMLDocuments(t *testing.T) {
	stream := "mark: point\n---\n---\nmark: line\nwidth: 200\n"
	docs, err := vegalite.ReadYAMLDocuments[vegalite.Document](strings.NewReader(stream))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, vegalite.AnyMark(vegalite.MarkPoint), docs[0].Mark)
	require.Equal(t, 200.0, *docs[1].Width)

	_, err = vegalite.ReadYAMLDocuments[vegalite.Document](strings.NewReader("mark: point\n---\nmark: pie\n"))
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeNoMatchingVariant, iss[0].Code)
}

func TestIsYAML(t *testing.T) {
	for in, want := range map[string]bool{
		`{"mark":"bar"}`: false,
		"  \n[1]":        false,
		"mark: bar":      true,
		"---\nmark: bar": true,
		"":               false,
	} {
		require.Equal(t, want, vegalite.IsYAML([]byte(in)), "%q", in)
	}
}
