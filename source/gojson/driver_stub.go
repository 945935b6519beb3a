//go:build !gojson

package gojson

import (
	"io"

	"github.com/reoring/vegalite"
	jsonsrc "github.com/reoring/vegalite/source/json"
)

// Driver returns an encoding/json-backed stand-in when the gojson tag is not
// enabled.
func Driver() vegalite.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) vegalite.Source {
	return vegalite.SourceFromEngine(jsonsrc.NewReader(r), vegalite.NumberJSONNumber)
}
func (stub) NewBytes(b []byte) vegalite.Source {
	return vegalite.SourceFromEngine(jsonsrc.NewBytes(b), vegalite.NumberJSONNumber)
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
