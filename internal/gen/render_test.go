package gen

import (
	"strings"
	"testing"

	ir "github.com/reoring/vegalite/internal/ir"
)

func TestRenderFile_EmptyPackage(t *testing.T) {
	if _, err := RenderFile(File{}); err == nil {
		t.Fatalf("expected error for empty package")
	}
}

func TestRenderFile_BuilderSkeleton(t *testing.T) {
	obj := &ir.Object{
		Name: "Axis",
		Fields: []ir.Field{
			{Name: "title", GoName: "Title", GoType: "*string"},
			{Name: "values", GoName: "Values", GoType: "[]float64"},
			{Name: "data", GoName: "Data", GoType: "Removable[Data]"},
			{Name: "format", GoName: "Format", GoType: "map[string]any"},
		},
	}
	out, err := RenderFile(File{Package: "vegalite", Objects: []*ir.Object{obj}})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	code := string(out)
	for _, want := range []string{
		"// Code generated by vlgen. DO NOT EDIT.",
		"package vegalite",
		"// AxisBuilder builds an Axis.",
		"type AxisBuilder struct{ builder[Axis] }",
		"func NewAxisBuilder() *AxisBuilder { return &AxisBuilder{newBuilder[Axis]()} }",
		"func (b *AxisBuilder) Build() (Axis, error) { return b.build() }",
		"func (b *AxisBuilder) Title(v string) *AxisBuilder {",
		"b.v.Title = &v",
		`b.touch("title")`,
		"func (b *AxisBuilder) Values(v ...float64) *AxisBuilder {",
		"b.v.Values = append([]float64{}, v...)",
		"func (b *AxisBuilder) Data(v Data) *AxisBuilder {",
		"b.v.Data = Some(v)",
		"func (b *AxisBuilder) DataNull() *AxisBuilder {",
		"b.v.Data = Null[Data]()",
		"func (b *AxisBuilder) Format(v map[string]any) *AxisBuilder {",
	} {
		if !strings.Contains(code, want) {
			t.Fatalf("output missing %q:\n%s", want, code)
		}
	}
	if strings.Contains(code, "TitleNull") {
		t.Fatalf("pointer fields must not get a Null setter")
	}
}

func TestRenderFile_Article(t *testing.T) {
	out, err := RenderFile(File{Package: "p", Objects: []*ir.Object{{Name: "Scale"}}})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), "// ScaleBuilder builds a Scale.") {
		t.Fatalf("unexpected article:\n%s", out)
	}
}

func TestRenderFile_ObjectOrderKept(t *testing.T) {
	objs := []*ir.Object{{Name: "Zeta"}, {Name: "Alpha"}}
	out, err := RenderFile(File{Package: "p", Objects: objs})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	code := string(out)
	if strings.Index(code, "ZetaBuilder") > strings.Index(code, "AlphaBuilder") {
		t.Fatalf("objects must render in input order")
	}
}
