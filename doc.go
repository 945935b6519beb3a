// Package vegalite is a typed object model for Vega-Lite v3 documents.
//
// Records are Go structs, "one of" unions are sealed interfaces whose
// alternatives are tried in a fixed precedence order, and Removable[T]
// keeps the three states a Vega-Lite field can be in: absent, explicit null
// (which removes an inherited default) and present.
//
// Documents are assembled with generated builders, which apply defaults and
// reject missing required fields:
//
//	enc, err := vegalite.NewEncodingBuilder().
//		X(x).Y(y).
//		Build()
//	doc, err := vegalite.NewDocumentBuilder().
//		Mark(vegalite.MarkPoint).
//		Encoding(enc).
//		Build()
//	out, err := vegalite.Marshal(doc)
//
// and read back with Unmarshal, Parse or UnmarshalYAML:
//
//	doc, err := vegalite.FromJSON(data)
//	dm, err := vegalite.ParseWithMeta[vegalite.Document](ctx, vegalite.JSONBytes(data))
//
// Every failure is reported as Issues, each carrying a JSON Pointer to the
// offending value. Decoding is all-or-nothing.
//
// Layout:
//   - internal/codec maps model types to and from the generic JSON tree.
//   - internal/engine reads tokens with duplicate-key, depth and size limits.
//   - data and render are collaborators that build inline data and HTML pages.
//   - cmd/vegalite is the command line tool; cmd/vlgen regenerates builders.
package vegalite
