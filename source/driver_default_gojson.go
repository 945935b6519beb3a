// Package source switches the process-wide JSON driver to go-json when
// imported for side effects:
//
//	import _ "github.com/reoring/vegalite/source"
package source

import (
	"github.com/reoring/vegalite"
	drvgojson "github.com/reoring/vegalite/source/gojson"
)

func init() { vegalite.SetJSONDriver(drvgojson.Driver()) }
