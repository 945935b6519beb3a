package vegalite_test

import (
	"testing"

	vegalite "github.com/reoring/vegalite"
)

func TestRemovable_States(t *testing.T) {
	unset := vegalite.Unset[int]()
	null := vegalite.Null[int]()
	some := vegalite.Some(7)

	if !unset.IsUnset() || unset.IsNull() || unset.IsPresent() || !unset.IsZero() {
		t.Fatalf("unset: unexpected state %v", unset.State)
	}
	if !null.IsNull() || null.IsZero() {
		t.Fatalf("null: unexpected state %v", null.State)
	}
	if v, ok := some.Get(); !ok || v != 7 {
		t.Fatalf("some: Get() = %d, %v", v, ok)
	}
	if _, ok := null.Get(); ok {
		t.Fatalf("null: Get() reported a value")
	}
	if got := null.OrElse(3); got != 3 {
		t.Fatalf("OrElse on null = %d", got)
	}
	if got := some.OrElse(3); got != 7 {
		t.Fatalf("OrElse on some = %d", got)
	}
	for s, want := range map[vegalite.State]string{
		vegalite.StateUnset:   "unset",
		vegalite.StateNull:    "null",
		vegalite.StatePresent: "present",
	} {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

// An explicit null must survive decode and encode, and must not collapse into
// an absent key.
func TestRemovable_NullRoundTrip(t *testing.T) {
	doc, err := vegalite.FromJSON([]byte(`{"mark":"bar","data":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Data.IsNull() {
		t.Fatalf("data state = %v, want null", doc.Data.State)
	}
	out, err := vegalite.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"$schema":"` + vegalite.SchemaURL + `","data":null,"mark":"bar"}`
	if string(out) != want {
		t.Fatalf("got %s\nwant %s", out, want)
	}

	doc, err = vegalite.FromJSON([]byte(`{"mark":"bar"}`))
	if err != nil {
		t.Fatal(err)
	}
	if !doc.Data.IsUnset() {
		t.Fatalf("absent data decoded as %v", doc.Data.State)
	}
}

func TestRemovable_NullOnNestedChannel(t *testing.T) {
	in := `{"mark":"bar","encoding":{"x":{"axis":null,"field":"a","scale":{"zero":false},"type":"ordinal"}}}`
	doc, err := vegalite.FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	x := doc.Encoding.X
	if !x.Axis.IsNull() || !x.Scale.IsPresent() || !x.Sort.IsUnset() {
		t.Fatalf("axis=%v scale=%v sort=%v", x.Axis.State, x.Scale.State, x.Sort.State)
	}
}

func TestRemovable_SomeNilIsNull(t *testing.T) {
	if got := vegalite.Some[*float64](nil); !got.IsNull() {
		t.Fatalf("Some(nil pointer) state = %s, want null", got.State)
	}
	if got := vegalite.Some[vegalite.Tooltip](nil); !got.IsNull() {
		t.Fatalf("Some(nil interface) state = %s, want null", got.State)
	}

	enc, err := vegalite.NewEncodingBuilder().Tooltip(nil).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := vegalite.Marshal(enc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"tooltip":null}` {
		t.Fatalf("json = %s", b)
	}
	var back vegalite.Encoding
	if err := vegalite.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Tooltip.State != enc.Tooltip.State {
		t.Fatalf("round trip state = %s, want %s", back.Tooltip.State, enc.Tooltip.State)
	}
}

func TestRemovable_PresentNilRejected(t *testing.T) {
	enc := vegalite.Encoding{Tooltip: vegalite.Removable[vegalite.Tooltip]{State: vegalite.StatePresent}}
	_, err := vegalite.Marshal(enc)
	iss, ok := vegalite.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("want one issue, got %v", err)
	}
	if iss[0].Code != vegalite.CodeInvalidType || iss[0].Path != "/tooltip" {
		t.Fatalf("issue = %s at %s", iss[0].Code, iss[0].Path)
	}
}
