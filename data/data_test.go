package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
)

type point struct {
	X     int    `json:"x"`
	Label string `json:"label"`
}

func TestFromValues_Structs(t *testing.T) {
	d, err := FromValues([]point{{1, "a"}, {2, "b"}})
	require.NoError(t, err)

	doc := vegalite.Document{Data: vegalite.Some(d), Mark: vegalite.MarkPoint}
	b, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(b), `"data":{"values":[{"label":"a","x":1},{"label":"b","x":2}]}`)
}

func TestFromValues_RoundTripEqual(t *testing.T) {
	d, err := FromValues([]point{{1, "a"}, {2, "b"}})
	require.NoError(t, err)
	rows := d.Values.(vegalite.InlineValues)
	require.Equal(t, map[string]any{"x": 1.0, "label": "a"}, rows[0])

	doc := vegalite.Document{Schema: vegalite.SchemaURL, Data: vegalite.Some(d), Mark: vegalite.MarkPoint}
	b, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	back, err := vegalite.FromJSON(b)
	require.NoError(t, err)
	require.True(t, vegalite.Equal(doc, back))
}

func TestFromValues_RejectsNonSlice(t *testing.T) {
	_, err := FromValues(map[string]int{"a": 1})
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeInvalidType, iss[0].Code)
	require.Equal(t, "/values", iss[0].Path)
}

func TestFromMatrix(t *testing.T) {
	d := FromMatrix([][]int{{1, 2}, {3, 4}})
	rows, ok := d.Values.(vegalite.InlineValues)
	require.True(t, ok)
	require.Equal(t, vegalite.InlineValues{[]any{1.0, 2.0}, []any{3.0, 4.0}}, rows)
}

func TestFromCSV(t *testing.T) {
	d, err := FromCSV(strings.NewReader("a,b\n1,x\n2,y\n"))
	require.NoError(t, err)
	require.Equal(t, vegalite.InlineValues{
		map[string]any{"a": "1", "b": "x"},
		map[string]any{"a": "2", "b": "y"},
	}, d.Values)
}

func TestFromCSV_Errors(t *testing.T) {
	_, err := FromCSV(strings.NewReader(""))
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeParseError, iss[0].Code)

	_, err = FromCSV(strings.NewReader("a,b\n1\n"))
	iss, ok = vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeParseError, iss[0].Code)
	require.Equal(t, "line 2", iss[0].Hint)
}

func TestFromURL(t *testing.T) {
	d := FromURL("data/cars.json", vegalite.DataFormatTypeJSON)
	b, err := vegalite.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `{"format":{"type":"json"},"url":"data/cars.json"}`, string(b))

	b, err = vegalite.Marshal(Named("table"))
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"table"}`, string(b))
}
