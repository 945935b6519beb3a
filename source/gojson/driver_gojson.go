//go:build gojson

package gojson

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	"github.com/reoring/vegalite"
	eng "github.com/reoring/vegalite/internal/engine"
)

// Driver returns a vegalite.JSONDriver backed by goccy/go-json.
func Driver() vegalite.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) vegalite.Source {
	return vegalite.SourceFromEngine(NewReader(r), vegalite.NumberJSONNumber)
}
func (driverGoJSON) NewBytes(b []byte) vegalite.Source {
	return vegalite.SourceFromEngine(NewBytes(b), vegalite.NumberJSONNumber)
}
func (driverGoJSON) Name() string { return "go-json" }

type frame struct {
	object       bool
	expectingKey bool
}

type source struct {
	dec   *j.Decoder
	stack []frame
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
// Offsets are not tracked, so Location reports -1.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) valueDone() {
	if n := len(s.stack); n > 0 && s.stack[n-1].object {
		s.stack[n-1].expectingKey = true
	}
}

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	at := eng.Token{Offset: -1}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{object: true, expectingKey: true})
			at.Kind = eng.KindBeginObject
		case '[':
			s.stack = append(s.stack, frame{})
			at.Kind = eng.KindBeginArray
		default:
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueDone()
			at.Kind = eng.KindEndArray
			if v == '}' {
				at.Kind = eng.KindEndObject
			}
		}
		return at, nil
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].object && s.stack[n-1].expectingKey {
			s.stack[n-1].expectingKey = false
			at.Kind, at.String = eng.KindKey, v
			return at, nil
		}
		at.Kind, at.String = eng.KindString, v
	case bool:
		at.Kind, at.Bool = eng.KindBool, v
	case j.Number:
		at.Kind, at.Number = eng.KindNumber, string(v)
	case float64:
		at.Kind, at.Number = eng.KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	default:
		at.Kind = eng.KindNull
	}
	s.valueDone()
	return at, nil
}

func (s *source) Location() int64 { return -1 }
