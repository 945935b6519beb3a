// Package json is the encoding/json token reader behind the default driver.
package json

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	eng "github.com/reoring/vegalite/internal/engine"
)

type frame struct {
	object       bool
	expectingKey bool
}

type jsonSource struct {
	dec        *json.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

// valueDone flips the enclosing object back to expecting a key once a value
// (scalar or container) has been consumed.
func (s *jsonSource) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()
	at := eng.Token{Offset: s.lastOffset}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{object: true, expectingKey: true})
			at.Kind = eng.KindBeginObject
		case '[':
			s.stack = append(s.stack, frame{})
			at.Kind = eng.KindBeginArray
		case '}', ']':
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
	case json.Number:
		at.Kind, at.Number = eng.KindNumber, string(v)
	case float64:
		at.Kind, at.Number = eng.KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	default:
		at.Kind = eng.KindNull
	}
	s.valueDone()
	return at, nil
}

func (s *jsonSource) Location() int64 { return s.lastOffset }
