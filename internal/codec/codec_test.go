package codec

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type opt[T any] struct {
	V     T
	State uint8
}

func (o opt[T]) TristateState() uint8 { return o.State }

type shape string

func (shape) EnumValues() []string { return []string{"circle", "square"} }

type figure interface{ isFigure() }

type box struct {
	W float64  `json:"w" vl:"required"`
	H *float64 `json:"h,omitempty"`
}

func (shape) isFigure() {}
func (box) isFigure()   {}

type canvas struct {
	Version string            `json:"$version" vl:"default=1.0"`
	Title   *string           `json:"title,omitempty"`
	Figure  figure            `json:"figure" vl:"required"`
	Border  opt[float64]      `json:"border,omitempty"`
	Tags    []string          `json:"tags,omitempty"`
	Meta    map[string]any    `json:"meta,omitempty"`
	Alias   string            `json:"ignored" vl:"name=alias"`
	Skip    string            `json:"-"`
	Labels  map[string]string `json:"labels,omitempty"`
	hidden  string
}

func testModel() *Model {
	return New(Config{Unions: map[reflect.Type][]reflect.Type{
		reflect.TypeOf((*figure)(nil)).Elem(): {reflect.TypeOf(shape("")), reflect.TypeOf(box{})},
	}})
}

func decodeCanvas(t *testing.T, m *Model, in string, o DecodeOptions) (canvas, Result) {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(in))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		t.Fatal(err)
	}
	var c canvas
	res := m.Decode(raw, reflect.ValueOf(&c).Elem(), o)
	return c, res
}

func TestFields_Layout(t *testing.T) {
	m := testModel()
	var keys []string
	for _, f := range m.Fields(reflect.TypeOf(canvas{})) {
		keys = append(keys, f.Key)
	}
	want := []string{"$version", "title", "figure", "border", "tags", "meta", "alias", "labels"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if got := m.RequiredKeys(reflect.TypeOf(canvas{})); !reflect.DeepEqual(got, []string{"figure"}) {
		t.Fatalf("required = %v", got)
	}
	f := m.Fields(reflect.TypeOf(canvas{}))[3]
	if !f.Nullable || f.Type != reflect.TypeOf(opt[float64]{}) {
		t.Fatalf("border field = %+v", f)
	}
}

func TestDecode_RecordAndUnion(t *testing.T) {
	m := testModel()
	c, res := decodeCanvas(t, m, `{"figure":{"w":2},"border":null,"tags":[],"meta":{"n":1},"alias":"a"}`, DecodeOptions{})
	if len(res.Issues) > 0 {
		t.Fatalf("issues: %+v", res.Issues)
	}
	if c.Version != "1.0" || res.Presence["/$version"] != PresenceDefaultApplied {
		t.Fatalf("default not applied: %q %v", c.Version, res.Presence["/$version"])
	}
	if b, ok := c.Figure.(box); !ok || b.W != 2 || b.H != nil {
		t.Fatalf("figure = %#v", c.Figure)
	}
	if c.Border.State != uint8(stateNull) {
		t.Fatalf("border state = %d", c.Border.State)
	}
	if res.Presence["/border"] != PresenceSeen|PresenceWasNull {
		t.Fatalf("border presence = %v", res.Presence["/border"])
	}
	if c.Tags == nil || len(c.Tags) != 0 {
		t.Fatalf("empty array must decode to an empty slice, got %#v", c.Tags)
	}
	if c.Meta["n"] != 1.0 {
		t.Fatalf("passthrough numbers are float64, got %#v", c.Meta["n"])
	}
	if c.Alias != "a" {
		t.Fatalf("alias = %q", c.Alias)
	}

	c, res = decodeCanvas(t, m, `{"figure":"circle"}`, DecodeOptions{})
	if len(res.Issues) > 0 || c.Figure != shape("circle") {
		t.Fatalf("figure = %#v, issues %+v", c.Figure, res.Issues)
	}
}

func TestDecode_NoMatchingVariant(t *testing.T) {
	m := testModel()
	c, res := decodeCanvas(t, m, `{"$version":"2","figure":"triangle"}`, DecodeOptions{})
	if len(res.Issues) != 1 {
		t.Fatalf("issues: %+v", res.Issues)
	}
	it := res.Issues[0]
	if it.Path != "/figure" || it.Code != CodeNoMatchingVariant || it.InputFragment != `"triangle"` {
		t.Fatalf("issue = %+v", it)
	}
	if got := it.Params["variants"]; !reflect.DeepEqual(got, []string{"shape", "box"}) {
		t.Fatalf("variants = %v", got)
	}
	if c.Version != "" {
		t.Fatal("a failed decode must leave the target untouched")
	}
}

func TestDecode_StrictUnknownFromVariant(t *testing.T) {
	m := testModel()
	in := `{"figure":{"w":1,"depth":3},"zeta":1,"a~b":2}`
	_, res := decodeCanvas(t, m, in, DecodeOptions{})
	if len(res.Issues) != 0 {
		t.Fatalf("lenient decode reported %+v", res.Issues)
	}
	_, res = decodeCanvas(t, m, in, DecodeOptions{Strict: true})
	var paths []string
	for _, it := range res.Issues {
		if it.Code != CodeUnknownKey {
			t.Fatalf("unexpected issue %+v", it)
		}
		paths = append(paths, it.Path)
	}
	if diff := cmp.Diff([]string{"/figure/depth", "/a~0b", "/zeta"}, paths); diff != "" {
		t.Fatalf("paths (-want +got):\n%s", diff)
	}
}

func TestDecode_CollectAndFailFast(t *testing.T) {
	m := testModel()
	in := `{"title":1,"tags":["a",2,false]}`
	_, res := decodeCanvas(t, m, in, DecodeOptions{})
	var paths []string
	for _, it := range res.Issues {
		paths = append(paths, it.Path)
	}
	if diff := cmp.Diff([]string{"/title", "/figure", "/tags/1", "/tags/2"}, paths); diff != "" {
		t.Fatalf("paths (-want +got):\n%s", diff)
	}
	_, res = decodeCanvas(t, m, in, DecodeOptions{FailFast: true})
	if len(res.Issues) != 1 || res.Issues[0].Path != "/title" {
		t.Fatalf("fail-fast issues: %+v", res.Issues)
	}
}

func TestEncode_OrderOmissionAndDefaults(t *testing.T) {
	m := testModel()
	h := 3.0
	c := canvas{
		Figure: box{W: 1, H: &h},
		Border: opt[float64]{V: 0.5, State: uint8(statePresent)},
		Labels: map[string]string{"z": "<last>", "a": "first"},
		Skip:   "never written",
	}
	b, iss := m.Encode(reflect.ValueOf(c), EncodeOptions{})
	if len(iss) > 0 {
		t.Fatalf("issues: %+v", iss)
	}
	want := `{"$version":"1.0","figure":{"w":1,"h":3},"border":0.5,"alias":"","labels":{"a":"first","z":"<last>"}}`
	if string(b) != want {
		t.Fatalf("got  %s\nwant %s", b, want)
	}

	b, iss = m.Encode(reflect.ValueOf(c), EncodeOptions{Skip: func(p string) bool { return p == "/$version" }})
	if len(iss) > 0 || strings.Contains(string(b), "$version") {
		t.Fatalf("skip ignored: %s %+v", b, iss)
	}

	c.Border = opt[float64]{State: uint8(stateNull)}
	b, _ = m.Encode(reflect.ValueOf(c), EncodeOptions{})
	if !strings.Contains(string(b), `"border":null`) {
		t.Fatalf("null border missing: %s", b)
	}
}

func TestEncode_MissingRequired(t *testing.T) {
	m := testModel()
	_, iss := m.Encode(reflect.ValueOf(canvas{}), EncodeOptions{})
	if len(iss) != 1 || iss[0].Path != "/figure" || iss[0].Code != CodeRequired {
		t.Fatalf("issues: %+v", iss)
	}
	missing := m.MissingRequired(reflect.ValueOf(canvas{Figure: shape("square")}), map[string]struct{}{})
	if !reflect.DeepEqual(missing, []string{"figure"}) {
		t.Fatalf("untouched required field not reported: %v", missing)
	}
	missing = m.MissingRequired(reflect.ValueOf(canvas{Figure: shape("square")}), map[string]struct{}{"figure": {}})
	if len(missing) != 0 {
		t.Fatalf("missing = %v", missing)
	}
}

func TestApplyDefaults(t *testing.T) {
	m := testModel()
	c := canvas{}
	if err := m.ApplyDefaults(reflect.ValueOf(&c).Elem()); err != nil {
		t.Fatal(err)
	}
	if c.Version != "1.0" {
		t.Fatalf("version = %q", c.Version)
	}
	c.Version = "2.0"
	if err := m.ApplyDefaults(reflect.ValueOf(&c).Elem()); err != nil || c.Version != "2.0" {
		t.Fatalf("explicit value overwritten: %q %v", c.Version, err)
	}
}

func TestFragment_Capped(t *testing.T) {
	long := strings.Repeat("é", 300)
	f := Fragment(long)
	if len(f) > MaxFragment {
		t.Fatalf("fragment is %d bytes", len(f))
	}
	if !strings.HasPrefix(f, `"éé`) {
		t.Fatalf("fragment = %q", f[:10])
	}
}

func TestJoinPointer(t *testing.T) {
	if got := JoinPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("JoinPointer = %q", got)
	}
}

func TestMarshalValue_NoHTMLEscape(t *testing.T) {
	b, err := MarshalValue(map[string]any{"q": "a < b & c > d"})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(b); got != `{"q":"a < b & c > d"}` {
		t.Fatalf("MarshalValue = %s", got)
	}
	if got := Fragment("<x>"); got != `"<x>"` {
		t.Fatalf("Fragment = %s", got)
	}
}

func TestNormalize_Numbers(t *testing.T) {
	in := map[string]any{
		"small":    json.Number("12"),
		"frac":     json.Number("1.5"),
		"exp":      json.Number("1e3"),
		"big":      json.Number("9007199254740993"),
		"exact":    json.Number("9007199254740992"),
		"negative": json.Number("-9223372036854775808"),
		"huge":     json.Number("18446744073709551615"),
		"yamlInt":  9007199254740993,
		"yamlU64":  uint64(18446744073709551615),
		"yamlI64":  int64(42),
	}
	want := map[string]any{
		"small":    12.0,
		"frac":     1.5,
		"exp":      1000.0,
		"big":      json.Number("9007199254740993"),
		"exact":    9007199254740992.0,
		"negative": -9223372036854775808.0,
		"huge":     json.Number("18446744073709551615"),
		"yamlInt":  json.Number("9007199254740993"),
		"yamlU64":  json.Number("18446744073709551615"),
		"yamlI64":  42.0,
	}
	if diff := cmp.Diff(want, Normalize(in)); diff != "" {
		t.Fatalf("Normalize mismatch (-want +got):\n%s", diff)
	}
}
