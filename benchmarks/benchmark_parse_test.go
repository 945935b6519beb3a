package vegalite_test

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	vegalite "github.com/reoring/vegalite"
)

// Micro: a unit view with a handful of channels.
var smallDoc = []byte(`{
  "$schema": "https://vega.github.io/schema/vega-lite/v3.4.0.json",
  "mark": {"type": "bar", "tooltip": true},
  "encoding": {
    "x": {"field": "a", "type": "ordinal", "sort": {"encoding": "y", "order": "descending"}},
    "y": {"aggregate": "mean", "field": "b", "type": "quantitative", "axis": null},
    "color": {"condition": {"selection": "brush", "value": "red"}, "value": "grey"}
  }
}`)

// Macro: inline data with n rows plus a layer of filters.
func bigDoc(n int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"data":{"values":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"a":`)
		buf.WriteString(strconv.Itoa(i))
		buf.WriteString(`,"b":`)
		buf.WriteString(strconv.FormatFloat(float64(i)*1.5, 'f', -1, 64))
		buf.WriteString(`,"c":"k`)
		buf.WriteString(strconv.Itoa(i % 7))
		buf.WriteString(`"}`)
	}
	buf.WriteString(`]},"transform":[{"filter":{"field":"a","gt":10}},{"filter":{"and":[{"field":"c","oneOf":["k1","k2"]},"datum.b > 3"]}}],`)
	buf.WriteString(`"layer":[{"mark":"point","encoding":{"x":{"field":"a","type":"quantitative"},"y":{"field":"b","type":"quantitative"}}},`)
	buf.WriteString(`{"mark":"rule","encoding":{"y":{"aggregate":"mean","field":"b","type":"quantitative"}}}]}`)
	return buf.Bytes()
}

func benchParse(b *testing.B, data []byte, wrap func(vegalite.Source) vegalite.Source) {
	ctx := context.Background()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := vegalite.JSONBytes(data)
		if wrap != nil {
			src = wrap(src)
		}
		if _, err := vegalite.Parse[vegalite.Document](ctx, src); err != nil {
			b.Fatal(err)
		}
	}
}

func asFloat(s vegalite.Source) vegalite.Source { return vegalite.WithNumberMode(s, vegalite.NumberFloat64) }

func Benchmark_Parse_Small_JSONNumber(b *testing.B) { benchParse(b, smallDoc, nil) }
func Benchmark_Parse_Small_Float64(b *testing.B)    { benchParse(b, smallDoc, asFloat) }

func Benchmark_Parse_Big_JSONNumber(b *testing.B) { benchParse(b, bigDoc(10000), nil) }
func Benchmark_Parse_Big_Float64(b *testing.B)    { benchParse(b, bigDoc(10000), asFloat) }

func Benchmark_Parse_Big_DuplicateCheck(b *testing.B) {
	data := bigDoc(10000)
	ctx := context.Background()
	opt := vegalite.ParseOpt{Strictness: vegalite.Strictness{OnDuplicateKey: vegalite.Error}}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vegalite.Parse[vegalite.Document](ctx, vegalite.JSONBytes(data), opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Marshal_Big(b *testing.B) {
	doc, err := vegalite.FromJSON(bigDoc(10000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vegalite.Marshal(doc); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Clone_Big(b *testing.B) {
	doc, err := vegalite.FromJSON(bigDoc(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vegalite.Clone(doc)
	}
}
