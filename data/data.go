// Package data converts Go values and tabular inputs into Vega-Lite data
// sources.
package data

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"reflect"

	gojson "github.com/goccy/go-json"

	vegalite "github.com/reoring/vegalite"
	"github.com/reoring/vegalite/internal/codec"
)

// FromValues turns a slice or array of JSON-serializable values into inline
// data. Each element goes through its JSON encoding, so struct tags apply,
// and numbers end up in the form a decoded document holds.
func FromValues(values any) (vegalite.Data, error) {
	rv := reflect.ValueOf(values)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return vegalite.Data{}, invalid(fmt.Sprintf("expected a slice, got %T", values))
	}
	b, err := gojson.Marshal(values)
	if err != nil {
		return vegalite.Data{}, invalid(err.Error())
	}
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	rows := vegalite.InlineValues{}
	if err := dec.Decode(&rows); err != nil {
		return vegalite.Data{}, invalid(err.Error())
	}
	for i := range rows {
		rows[i] = codec.Normalize(rows[i])
	}
	return vegalite.Data{Values: rows}, nil
}

// FromMatrix emits one JSON array per row.
func FromMatrix[T ~int | ~int64 | ~float32 | ~float64](rows [][]T) vegalite.Data {
	out := make(vegalite.InlineValues, 0, len(rows))
	for _, r := range rows {
		row := make([]any, len(r))
		for i, x := range r {
			row[i] = float64(x)
		}
		out = append(out, row)
	}
	return vegalite.Data{Values: out}
}

// FromCSV reads a header row and keys every following record by it. Values
// stay strings; Vega-Lite infers types unless DataFormat.Parse says
// otherwise.
func FromCSV(r io.Reader) (vegalite.Data, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return vegalite.Data{}, vegalite.Issues{{Code: vegalite.CodeParseError, Path: "/values", Message: "empty CSV input", Offset: -1}}
	}
	if err != nil {
		return vegalite.Data{}, csvError(err)
	}
	rows := vegalite.InlineValues{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return vegalite.Data{}, csvError(err)
		}
		row := make(map[string]any, len(header))
		for i, name := range header {
			row[name] = rec[i]
		}
		rows = append(rows, row)
	}
	return vegalite.Data{Values: rows}, nil
}

// FromURL references remote data. An empty format lets Vega-Lite infer the
// type from the file extension.
func FromURL(url string, format vegalite.DataFormatType) vegalite.Data {
	d := vegalite.Data{URL: vegalite.Ptr(url)}
	if format != "" {
		d.Format = &vegalite.DataFormat{Type: vegalite.Ptr(format)}
	}
	return d
}

// Named references a dataset registered at runtime or in Document.Datasets.
func Named(name string) vegalite.Data {
	return vegalite.Data{Name: vegalite.Ptr(name)}
}

func invalid(msg string) error {
	return vegalite.Issues{{Code: vegalite.CodeInvalidType, Path: "/values", Message: msg, Offset: -1}}
}

func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		iss := vegalite.Issues{{Code: vegalite.CodeParseError, Path: "/values", Message: pe.Error(), Cause: err, Offset: -1}}
		iss[0].Hint = fmt.Sprintf("line %d", pe.Line)
		return iss
	}
	return vegalite.Issues{{Code: vegalite.CodeParseError, Path: "/values", Message: err.Error(), Cause: err, Offset: -1}}
}
