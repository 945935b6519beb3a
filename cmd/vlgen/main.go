// Command vlgen generates the record builders of package vegalite from the
// struct declarations in schema_*.go. It runs through go:generate:
//
//	go run ./cmd/vlgen -o zz_generated_builders.go
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	gen "github.com/reoring/vegalite/internal/gen"
	ir "github.com/reoring/vegalite/internal/ir"
)

func main() {
	var dir, pattern, out string
	flag.StringVar(&dir, "dir", ".", "package directory")
	flag.StringVar(&pattern, "pattern", "schema_*.go", "files holding the record declarations")
	flag.StringVar(&out, "o", "", "output filename (stdout when empty)")
	flag.Parse()

	pkg, objs, err := collect(dir, pattern)
	if err != nil {
		fatalf("vlgen: %v", err)
	}
	code, err := gen.RenderFile(gen.File{Package: pkg, Objects: objs})
	if err != nil {
		fatalf("vlgen: %v", err)
	}
	if out == "" {
		_, _ = os.Stdout.Write(code)
		return
	}
	if err := os.WriteFile(filepath.Join(dir, out), code, 0o644); err != nil {
		fatalf("vlgen: writing output: %v", err)
	}
}

// collect parses the matching files in name order and returns every struct
// type as an IR object, in declaration order.
func collect(dir, pattern string) (string, []*ir.Object, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", nil, err
	}
	sort.Strings(files)
	if len(files) == 0 {
		return "", nil, fmt.Errorf("no files match %s in %s", pattern, dir)
	}
	fset := token.NewFileSet()
	var pkg string
	var objs []*ir.Object
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.SkipObjectResolution)
		if err != nil {
			return "", nil, err
		}
		pkg = f.Name.Name
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Name.IsExported() {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}
				objs = append(objs, objectOf(ts.Name.Name, st))
			}
		}
	}
	return pkg, objs, nil
}

func objectOf(name string, st *ast.StructType) *ir.Object {
	obj := &ir.Object{Name: name, Required: map[string]struct{}{}}
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		var tag reflect.StructTag
		if field.Tag != nil {
			tag = reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		}
		goType := types.ExprString(field.Type)
		for _, id := range field.Names {
			if !id.IsExported() {
				continue
			}
			key, required, def := parseTags(id.Name, tag)
			if key == "-" {
				continue
			}
			f := ir.Field{Name: key, GoName: id.Name, GoType: goType}
			if def != "" {
				f.Default = def
			}
			if required {
				obj.Required[key] = struct{}{}
			}
			obj.Fields = append(obj.Fields, f)
		}
	}
	return obj
}

// parseTags mirrors the key resolution of the codec: vl:"name=..." wins over
// the json tag, which wins over the field name.
func parseTags(goName string, tag reflect.StructTag) (key string, required bool, def string) {
	key = goName
	if j := tag.Get("json"); j != "" {
		if i := strings.IndexByte(j, ','); i >= 0 {
			j = j[:i]
		}
		if j != "" {
			key = j
		}
	}
	for _, p := range strings.Split(tag.Get("vl"), ",") {
		p = strings.TrimSpace(p)
		switch {
		case p == "required":
			required = true
		case strings.HasPrefix(p, "default="):
			def = strings.TrimPrefix(p, "default=")
		case strings.HasPrefix(p, "name="):
			key = strings.TrimPrefix(p, "name=")
		}
	}
	return key, required, def
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
