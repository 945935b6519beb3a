package vegalite_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
)

func TestMarshal_DefaultsAndOrder(t *testing.T) {
	out, err := vegalite.Marshal(vegalite.Document{Mark: vegalite.MarkBar, Width: vegalite.Ptr(300.0)})
	require.NoError(t, err)
	require.Equal(t, `{"$schema":"`+vegalite.SchemaURL+`","width":300,"mark":"bar"}`, string(out))

	// Pointers are followed and a nil pointer is null.
	out, err = vegalite.Marshal(&vegalite.Document{Mark: vegalite.MarkBar})
	require.NoError(t, err)
	require.Contains(t, string(out), `"mark":"bar"`)
	var nilDoc *vegalite.Document
	out, err = vegalite.Marshal(nilDoc)
	require.NoError(t, err)
	require.Equal(t, "null", string(out))
}

func TestMarshalIndent(t *testing.T) {
	out, err := vegalite.MarshalIndent(vegalite.Document{Mark: vegalite.MarkBar}, "", "  ")
	require.NoError(t, err)
	want := "{\n  \"$schema\": \"" + vegalite.SchemaURL + "\",\n  \"mark\": \"bar\"\n}"
	require.Equal(t, want, string(out))
}

func TestMarshal_NoHTMLEscape(t *testing.T) {
	doc := vegalite.Document{Mark: vegalite.MarkText, Description: vegalite.Ptr("<b>a & b</b>")}
	out, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), `"description":"<b>a & b</b>"`)

	out, err = vegalite.Marshal(vegalite.CalculateTransform{Calculate: "a < b & c > d", As: "x"})
	require.NoError(t, err)
	require.Equal(t, `{"as":"x","calculate":"a < b & c > d"}`, string(out))
}

func TestMarshal_RequiredIssues(t *testing.T) {
	_, err := vegalite.Marshal(vegalite.FieldRangePredicate{Field: "a"})
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, []string{"/range"}, iss.Paths())
	require.Equal(t, vegalite.CodeRequired, iss[0].Code)

	_, err = vegalite.Marshal(vegalite.Document{})
	iss, ok = vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, []string{"/mark"}, iss.Paths())
}

func TestMarshal_NonFiniteNumber(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := vegalite.Marshal(vegalite.Document{Mark: vegalite.MarkBar, Width: vegalite.Ptr(f)})
		iss, ok := vegalite.AsIssues(err)
		require.True(t, ok, "width=%v", f)
		require.Equal(t, "/width", iss[0].Path)
		require.Equal(t, vegalite.CodeInvalidType, iss[0].Code)
	}
}

func TestEncodePreserving_DropsMaterializedDefaults(t *testing.T) {
	ctx := context.Background()
	in := `{"mark":"bar","data":null}`
	dm, err := vegalite.ParseWithMeta[vegalite.Document](ctx, vegalite.JSONBytes([]byte(in)))
	require.NoError(t, err)
	require.Equal(t, vegalite.SchemaURL, dm.Value.Schema)

	out, err := vegalite.EncodePreserving(dm)
	require.NoError(t, err)
	require.Equal(t, `{"data":null,"mark":"bar"}`, string(out))

	// A $schema present in the input is kept.
	in = `{"$schema":"` + vegalite.SchemaURL + `","mark":"bar"}`
	dm, err = vegalite.ParseWithMeta[vegalite.Document](ctx, vegalite.JSONBytes([]byte(in)))
	require.NoError(t, err)
	out, err = vegalite.EncodePreserving(dm)
	require.NoError(t, err)
	require.Equal(t, in, string(out))
}

func TestEncodePreserving_WithoutPresenceIsMarshal(t *testing.T) {
	d := vegalite.Decoded[vegalite.Document]{Value: vegalite.Document{Mark: vegalite.MarkBar}}
	got, err := vegalite.EncodePreserving(d)
	require.NoError(t, err)
	want, err := vegalite.Marshal(d.Value)
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}
