package vegalite

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestUnionTable_VariantsImplementUnion(t *testing.T) {
	if len(unionVariants) == 0 {
		t.Fatalf("empty union table")
	}
	for iface, variants := range unionVariants {
		if iface.Kind() != reflect.Interface {
			t.Fatalf("%s is not an interface", iface)
		}
		if len(variants) == 0 {
			t.Fatalf("%s has no variants", iface.Name())
		}
		seen := map[reflect.Type]bool{}
		for _, v := range variants {
			if !v.Implements(iface) {
				t.Fatalf("%s does not implement %s", v.Name(), iface.Name())
			}
			if seen[v] {
				t.Fatalf("%s listed twice in %s", v.Name(), iface.Name())
			}
			seen[v] = true
		}
	}
}

func decodeAs[T any](t *testing.T, js string) T {
	t.Helper()
	v, err := Parse[T](context.Background(), JSONBytes([]byte(js)))
	if err != nil {
		t.Fatalf("decode %s: %v", js, err)
	}
	return v
}

func TestUnion_FirstMatchWins(t *testing.T) {
	// matches both SortByEncoding and EncodingSortField
	if s := decodeAs[Sort](t, `{"encoding":"x","order":"descending"}`); reflect.TypeOf(s) != typeOf[SortByEncoding]() {
		t.Fatalf("expected SortByEncoding, got %T", s)
	}
	if s := decodeAs[Sort](t, `{"field":"b","op":"sum"}`); reflect.TypeOf(s) != typeOf[EncodingSortField]() {
		t.Fatalf("expected EncodingSortField, got %T", s)
	}
	// matches both the equal and the lt predicate
	if p := decodeAs[Predicate](t, `{"field":"a","equal":1,"lt":3}`); reflect.TypeOf(p) != typeOf[FieldEqualPredicate]() {
		t.Fatalf("expected FieldEqualPredicate, got %T", p)
	}
	// a plain string is a predicate expression
	if p := decodeAs[Predicate](t, `"datum.a > 1"`); p != String("datum.a > 1") {
		t.Fatalf("expected expression string, got %#v", p)
	}
}

func TestUnion_ScalarsAndEnums(t *testing.T) {
	if b := decodeAs[Bin](t, `true`); b != Bool(true) {
		t.Fatalf("expected Bool, got %#v", b)
	}
	if b := decodeAs[Bin](t, `"binned"`); b != BinnedField {
		t.Fatalf("expected Binned, got %#v", b)
	}
	if b := decodeAs[Bin](t, `{"maxbins":20}`); reflect.TypeOf(b) != typeOf[BinParams]() {
		t.Fatalf("expected BinParams, got %T", b)
	}
	if m := decodeAs[AnyMark](t, `"boxplot"`); reflect.TypeOf(m) != typeOf[CompositeMark]() {
		t.Fatalf("expected CompositeMark, got %T", m)
	}
	if m := decodeAs[AnyMark](t, `"area"`); m != MarkArea {
		t.Fatalf("expected Mark, got %#v", m)
	}
	if v := decodeAs[Value](t, `12.5`); v != Number(12.5) {
		t.Fatalf("expected Number, got %#v", v)
	}
	if r := decodeAs[Range](t, `[0, 100]`); reflect.TypeOf(r) != typeOf[NumberArray]() {
		t.Fatalf("expected NumberArray, got %T", r)
	}
	if r := decodeAs[Range](t, `["red", "blue"]`); reflect.TypeOf(r) != typeOf[StringArray]() {
		t.Fatalf("expected StringArray, got %T", r)
	}
}

func TestUnion_NoMatchingVariant(t *testing.T) {
	_, err := Parse[Document](context.Background(), JSONBytes([]byte(`{"mark":"pie"}`)))
	iss, ok := AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	it := iss[0]
	if it.Code != CodeNoMatchingVariant || it.Path != "/mark" {
		t.Fatalf("unexpected issue %+v", it)
	}
	variants, _ := it.Params["variants"].([]string)
	want := []string{"CompositeMark", "CompositeMarkDef", "Mark", "MarkDef"}
	if !reflect.DeepEqual(variants, want) {
		t.Fatalf("variants = %v, want %v", variants, want)
	}
	if it.Params["union"] != "AnyMark" {
		t.Fatalf("union = %v", it.Params["union"])
	}
	if it.InputFragment != `"pie"` {
		t.Fatalf("fragment = %q", it.InputFragment)
	}
}

func TestUnion_FragmentIsCapped(t *testing.T) {
	long := `{"mark":{"description":"` + strings.Repeat("x", 1000) + `"}}`
	_, err := Parse[Document](context.Background(), JSONBytes([]byte(long)))
	iss, ok := AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if n := len(iss[0].InputFragment); n == 0 || n > 256 {
		t.Fatalf("fragment length %d not in (0, 256]", n)
	}
}

func TestUnion_EncodeDelegates(t *testing.T) {
	doc := Document{Mark: MarkDef{Type: MarkPoint, Filled: Ptr(true)}, Title: StringArray{"a", "b"}}
	b, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"$schema":"` + SchemaURL + `","title":["a","b"],"mark":{"filled":true,"type":"point"}}`
	if string(b) != want {
		t.Fatalf("got %s\nwant %s", b, want)
	}
}
