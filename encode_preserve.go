package vegalite

import "github.com/reoring/vegalite/internal/codec"

// EncodePreserving renders a decoded value while respecting its presence
// metadata:
//   - fields materialized only by defaults during decoding (for example a
//     "$schema" the input never had) are left out,
//   - fields that were explicitly null stay null,
//   - everything else is written as Marshal would.
//
// Without presence metadata it behaves like Marshal.
func EncodePreserving[T any](d Decoded[T]) ([]byte, error) {
	if len(d.Presence) == 0 {
		return Marshal(d.Value)
	}
	return marshal(d.Value, codec.EncodeOptions{Skip: d.Presence.DefaultOnly})
}
