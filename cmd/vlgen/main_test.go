package main

import (
	"os"
	"path/filepath"
	"testing"
)

const fixture = `package fix

type Point struct {
	X     float64  ` + "`json:\"x\" vl:\"required\"`" + `
	Label *string  ` + "`json:\"label,omitempty\"`" + `
	Kind  string   ` + "`json:\"kind\" vl:\"default=dot\"`" + `
	Alias *string  ` + "`json:\"alias,omitempty\" vl:\"name=aka\"`" + `
	Skip  string   ` + "`json:\"-\"`" + `
	inner int
}

type hidden struct{ A int }
`

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "schema_fix.go"), []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}
	pkg, objs, err := collect(dir, "schema_*.go")
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if pkg != "fix" {
		t.Fatalf("package = %q", pkg)
	}
	if len(objs) != 1 || objs[0].Name != "Point" {
		t.Fatalf("unexpected objects: %+v", objs)
	}
	o := objs[0]
	var keys []string
	for _, f := range o.Fields {
		keys = append(keys, f.Name)
	}
	want := []string{"x", "label", "kind", "aka"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if req := o.RequiredKeys(); len(req) != 1 || req[0] != "x" {
		t.Fatalf("required = %v", req)
	}
	if o.Fields[1].GoType != "*string" {
		t.Fatalf("GoType = %q", o.Fields[1].GoType)
	}
	if o.Fields[2].Default != "dot" {
		t.Fatalf("default = %v", o.Fields[2].Default)
	}
}

func TestCollect_NoFiles(t *testing.T) {
	if _, _, err := collect(t.TempDir(), "schema_*.go"); err == nil {
		t.Fatalf("expected error when nothing matches")
	}
}
