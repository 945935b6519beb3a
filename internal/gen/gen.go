// Package gen renders builder source code from IR objects.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	ir "github.com/reoring/vegalite/internal/ir"
)

// File is the input of RenderFile.
type File struct {
	Package string
	Objects []*ir.Object
}

type setterView struct {
	Name     string // method name
	GoName   string // field name
	Key      string
	Param    string
	Assign   string
	NullType string // element type for the XNull setter, "" when not nullable
}

type objectView struct {
	Name    string
	Article string
	Setters []setterView
}

var fileTmpl = template.Must(template.New("builders").Parse(`// Code generated by vlgen. DO NOT EDIT.

package {{.Package}}
{{range $o := .Objects}}
// {{$o.Name}}Builder builds {{$o.Article}} {{$o.Name}}.
type {{$o.Name}}Builder struct{ builder[{{$o.Name}}] }

// New{{$o.Name}}Builder returns a {{$o.Name}}Builder with defaults applied.
func New{{$o.Name}}Builder() *{{$o.Name}}Builder { return &{{$o.Name}}Builder{newBuilder[{{$o.Name}}]()} }

// Build returns the {{$o.Name}}, or Issues listing every missing required key.
func (b *{{$o.Name}}Builder) Build() ({{$o.Name}}, error) { return b.build() }
{{range $o.Setters}}
func (b *{{$o.Name}}Builder) {{.Name}}({{.Param}}) *{{$o.Name}}Builder {
	b.v.{{.GoName}} = {{.Assign}}
	b.touch({{printf "%q" .Key}})
	return b
}
{{if .NullType}}
func (b *{{$o.Name}}Builder) {{.Name}}Null() *{{$o.Name}}Builder {
	b.v.{{.GoName}} = Null[{{.NullType}}]()
	b.touch({{printf "%q" .Key}})
	return b
}
{{end}}{{end}}{{end}}`))

// RenderFile renders one builder type per object and gofmts the result.
func RenderFile(f File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("gen: empty package name")
	}
	views := make([]objectView, 0, len(f.Objects))
	for _, o := range f.Objects {
		views = append(views, viewOf(o))
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, struct {
		Package string
		Objects []objectView
	}{f.Package, views}); err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return out, nil
}

func viewOf(o *ir.Object) objectView {
	v := objectView{Name: o.Name, Article: article(o.Name)}
	for _, f := range o.Fields {
		v.Setters = append(v.Setters, setterOf(f))
	}
	return v
}

// setterOf picks the setter signature from the Go type: pointers and
// Removable take the bare value, slices are variadic and copied.
func setterOf(f ir.Field) setterView {
	s := setterView{Name: f.GoName, GoName: f.GoName, Key: f.Name}
	t := f.GoType
	switch {
	case strings.HasPrefix(t, "*"):
		s.Param = "v " + t[1:]
		s.Assign = "&v"
	case strings.HasPrefix(t, "Removable[") && strings.HasSuffix(t, "]"):
		inner := t[len("Removable[") : len(t)-1]
		s.Param = "v " + inner
		s.Assign = "Some(v)"
		s.NullType = inner
	case strings.HasPrefix(t, "[]"):
		s.Param = "v ..." + t[2:]
		s.Assign = "append(" + t + "{}, v...)"
	default:
		s.Param = "v " + t
		s.Assign = "v"
	}
	return s
}

func article(name string) string {
	if name != "" && strings.ContainsRune("AEIOU", rune(name[0])) {
		return "an"
	}
	return "a"
}
