//go:build gojson

package vegalite_test

import (
	vegalite "github.com/reoring/vegalite"
	drv "github.com/reoring/vegalite/source/gojson"
)

func init() {
	vegalite.SetJSONDriver(drv.Driver())
}
