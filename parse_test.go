package vegalite_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	vegalite "github.com/reoring/vegalite"
)

func TestParseWithMeta_Presence(t *testing.T) {
	in := `{"mark":"bar","data":null,"encoding":{"x":{"field":"a","scale":null,"type":"ordinal"}}}`
	dm, err := vegalite.ParseWithMeta[vegalite.Document](context.Background(), vegalite.JSONBytes([]byte(in)))
	require.NoError(t, err)

	pm := dm.Presence
	require.Equal(t, vegalite.PresenceSeen, pm["/"])
	require.Equal(t, vegalite.PresenceSeen, pm["/mark"])
	require.Equal(t, vegalite.PresenceSeen|vegalite.PresenceWasNull, pm["/data"])
	require.Equal(t, vegalite.PresenceSeen|vegalite.PresenceWasNull, pm["/encoding/x/scale"])
	require.Equal(t, vegalite.PresenceDefaultApplied, pm["/$schema"])
	require.True(t, pm.DefaultOnly("/$schema"))
	require.False(t, pm.DefaultOnly("/mark"))
	_, ok := pm["/width"]
	require.False(t, ok, "absent keys without defaults are not recorded")
}

func TestParseWithMeta_IncludeExclude(t *testing.T) {
	in := []byte(`{"mark":"bar","encoding":{"x":{"field":"a","type":"ordinal"},"y":{"field":"b","type":"quantitative"}}}`)
	ctx := context.Background()

	dm, err := vegalite.ParseWithMeta[vegalite.Document](ctx, vegalite.JSONBytes(in), vegalite.ParseOpt{
		Presence:   vegalite.PresenceOpt{Include: []string{"/encoding"}, Exclude: []string{"/encoding/y"}},
		PathRender: vegalite.PathRenderOpt{Intern: true},
	})
	require.NoError(t, err)
	for p := range dm.Presence {
		require.True(t, strings.HasPrefix(p, "/encoding"), p)
		require.False(t, strings.HasPrefix(p, "/encoding/y"), p)
	}
	require.Contains(t, dm.Presence, "/encoding/x/field")

	// Plain Parse never collects presence.
	doc, err := vegalite.Parse[vegalite.Document](ctx, vegalite.JSONBytes(in))
	require.NoError(t, err)
	require.Equal(t, "b", string(doc.Encoding.Y.Field.(vegalite.String)))
}

func TestParse_UnionAndEnumTargets(t *testing.T) {
	ctx := context.Background()
	p, err := vegalite.Parse[vegalite.Predicate](ctx, vegalite.JSONBytes([]byte(`{"field":"a","oneOf":[1,2]}`)))
	require.NoError(t, err)
	oneOf, ok := p.(vegalite.FieldOneOfPredicate)
	require.True(t, ok, "got %T", p)
	require.Equal(t, []any{1.0, 2.0}, oneOf.OneOf)

	m, err := vegalite.Parse[vegalite.Mark](ctx, vegalite.JSONBytes([]byte(`"tick"`)))
	require.NoError(t, err)
	require.Equal(t, vegalite.MarkTick, m)

	_, err = vegalite.Parse[vegalite.Mark](ctx, vegalite.JSONBytes([]byte(`"pie"`)))
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeInvalidType, iss[0].Code)
	require.Equal(t, "/", iss[0].Path)
}

func TestParse_SyntaxErrors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		in   string
		hint string
	}{
		{name: "empty", in: ``},
		{name: "truncated", in: `{"mark":"bar"`},
		{name: "malformed", in: `{"mark" "bar"}`},
		{name: "trailing", in: `{"mark":"bar"} {}`, hint: "input must hold exactly one JSON value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := vegalite.Parse[vegalite.Document](ctx, vegalite.JSONBytes([]byte(tc.in)))
			iss, ok := vegalite.AsIssues(err)
			require.True(t, ok, "err = %v", err)
			require.Len(t, iss, 1)
			require.Equal(t, vegalite.CodeParseError, iss[0].Code)
			require.Equal(t, "/", iss[0].Path)
			require.Equal(t, tc.hint, iss[0].Hint)
			require.Equal(t, vegalite.Document{}, doc, "decoding is all-or-nothing")
		})
	}
}

func TestParse_SyntaxErrorOffset(t *testing.T) {
	_, err := vegalite.Parse[vegalite.Document](context.Background(), vegalite.JSONBytes([]byte(`{"mark":"bar",}`)))
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Greater(t, iss[0].Offset, int64(0))
	require.NotNil(t, iss[0].Cause)
}

func TestParse_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := vegalite.Parse[vegalite.Document](ctx, vegalite.JSONBytes([]byte(`{"mark":"bar"}`)))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestParse_NilSource(t *testing.T) {
	_, err := vegalite.Parse[vegalite.Document](context.Background(), nil)
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeParseError, iss[0].Code)
}

func TestParse_NumberFloat64Mode(t *testing.T) {
	in := []byte(`{"mark":"bar","width":120.5,"data":{"values":[{"a":1}]}}`)
	src := vegalite.WithNumberMode(vegalite.JSONBytes(in), vegalite.NumberFloat64)
	require.Equal(t, vegalite.NumberFloat64, src.NumberMode())
	doc, err := vegalite.Parse[vegalite.Document](context.Background(), src)
	require.NoError(t, err)
	require.Equal(t, 120.5, *doc.Width)

	ref, err := vegalite.FromJSON(in)
	require.NoError(t, err)
	require.True(t, vegalite.Equal(ref, doc), "number mode must not change the decoded value")
}

func TestUnmarshal(t *testing.T) {
	var doc vegalite.Document
	require.NoError(t, vegalite.Unmarshal([]byte(`{"mark":"area","extra":1}`), &doc))
	require.Equal(t, vegalite.AnyMark(vegalite.MarkArea), doc.Mark)

	err := vegalite.Unmarshal([]byte(`{}`), doc)
	iss, ok := vegalite.AsIssues(err)
	require.True(t, ok)
	require.Equal(t, vegalite.CodeInvalidType, iss[0].Code)

	require.Error(t, vegalite.Unmarshal([]byte(`{"mark":`), &doc))
}

func TestParseReader_Streams(t *testing.T) {
	doc, err := vegalite.ParseReader[vegalite.Document](context.Background(), strings.NewReader(`{"mark":"line"}`))
	require.NoError(t, err)
	require.Equal(t, vegalite.AnyMark(vegalite.MarkLine), doc.Mark)
}

func TestParse_LargeIntegersKeepDigits(t *testing.T) {
	in := `{"mark":"bar","usermeta":{"id":9007199254740993,"n":12,"u":18446744073709551615}}`
	doc, err := vegalite.FromJSON([]byte(in))
	require.NoError(t, err)
	require.Equal(t, 12.0, doc.Usermeta["n"])

	out, err := vegalite.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), `"usermeta":{"id":9007199254740993,"n":12,"u":18446744073709551615}`)

	var fromYAML vegalite.Document
	require.NoError(t, vegalite.UnmarshalYAML([]byte("mark: bar\nusermeta:\n  id: 9007199254740993\n  n: 12\n  u: 18446744073709551615\n"), &fromYAML))
	require.True(t, vegalite.Equal(doc, fromYAML))
}
