package vegalite_test

import (
	"testing"

	vegalite "github.com/reoring/vegalite"
)

func TestBuilder_ReportsEveryMissingRequiredKey(t *testing.T) {
	_, err := vegalite.NewLookupDataBuilder().Fields("a").Build()
	iss, ok := vegalite.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	paths := iss.Paths()
	if len(paths) != 2 || paths[0] != "/data" || paths[1] != "/key" {
		t.Fatalf("expected /data and /key, got %v", paths)
	}
	for _, it := range iss {
		if it.Code != vegalite.CodeRequired {
			t.Fatalf("expected required, got %s", it.Code)
		}
		if it.Params["field"] == "" {
			t.Fatalf("missing field param: %+v", it)
		}
	}
}

func TestBuilder_RequiredOnlySerialization(t *testing.T) {
	v, err := vegalite.NewLookupDataBuilder().
		Data(vegalite.Data{Name: vegalite.Ptr("lookup")}).
		Key("id").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := vegalite.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"data":{"name":"lookup"},"key":"id"}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestBuilder_Finalize(t *testing.T) {
	b := vegalite.NewCalculateTransformBuilder().Calculate("datum.a * 2")
	if _, err := b.Build(); err == nil {
		t.Fatalf("expected missing /as")
	}
	// a failed Build leaves the builder usable
	v, err := b.As("double").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.As != "double" || v.Calculate != "datum.a * 2" {
		t.Fatalf("unexpected value %+v", v)
	}
	_, err = b.Build()
	iss, ok := vegalite.AsIssues(err)
	if !ok || iss[0].Code != vegalite.CodeBuilderFinalized {
		t.Fatalf("expected builder_finalized, got %v", err)
	}
}

func TestBuilder_DocumentSchemaDefault(t *testing.T) {
	doc, err := vegalite.NewDocumentBuilder().Mark(vegalite.MarkBar).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Schema != vegalite.SchemaURL {
		t.Fatalf("schema default not applied: %q", doc.Schema)
	}
	b, _ := vegalite.Marshal(doc)
	if got, want := string(b), `{"$schema":"https://vega.github.io/schema/vega-lite/v3.4.0.json","mark":"bar"}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	doc, err = vegalite.NewDocumentBuilder().Schema("https://vega.github.io/schema/vega-lite/v3.json").Mark(vegalite.MarkBar).Build()
	if err != nil || doc.Schema != "https://vega.github.io/schema/vega-lite/v3.json" {
		t.Fatalf("explicit schema lost: %q, %v", doc.Schema, err)
	}
}

func TestBuilder_DocumentNeedsMarkOrComposition(t *testing.T) {
	_, err := vegalite.NewDocumentBuilder().Build()
	iss, ok := vegalite.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Path != "/mark" {
		t.Fatalf("expected /mark, got %v", err)
	}
	layer, err := vegalite.NewLayerSpecBuilder().Mark(vegalite.MarkLine).Build()
	if err != nil {
		t.Fatalf("layer: %v", err)
	}
	if _, err := vegalite.NewDocumentBuilder().Layer(layer).Build(); err != nil {
		t.Fatalf("layered document needs no mark: %v", err)
	}
}

func TestBuilder_NullSetter(t *testing.T) {
	enc, err := vegalite.NewEncodingBuilder().TooltipNull().Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := vegalite.Marshal(enc)
	if string(b) != `{"tooltip":null}` {
		t.Fatalf("got %s", b)
	}

	cond, err := vegalite.NewConditionalValueDefBuilder().Selection("brush").ValueNull().Build()
	if err != nil {
		t.Fatalf("a null value satisfies a required nullable key: %v", err)
	}
	b, _ = vegalite.Marshal(cond)
	if string(b) != `{"selection":"brush","value":null}` {
		t.Fatalf("got %s", b)
	}
}

func TestBuilder_VariadicSetterCopies(t *testing.T) {
	fields := []string{"a", "b"}
	v, err := vegalite.NewFoldTransformBuilder().Fold(fields...).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields[0] = "changed"
	if v.Fold[0] != "a" {
		t.Fatalf("builder must copy its slice argument, got %v", v.Fold)
	}
}
