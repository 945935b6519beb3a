package vegalite

// Data is an inline, named or URL data source.
type Data struct {
	Format *DataFormat   `json:"format,omitempty"`
	Name   *string       `json:"name,omitempty"`
	URL    *string       `json:"url,omitempty"`
	Values InlineDataset `json:"values,omitempty"`
}

// DataFormat describes how to parse loaded data.
type DataFormat struct {
	Delimiter *string `json:"delimiter,omitempty"`
	Feature   *string `json:"feature,omitempty"`
	Mesh      *string `json:"mesh,omitempty"`
	// Parse is null to disable type inference.
	Parse    Removable[map[string]string] `json:"parse,omitempty"`
	Property *string                      `json:"property,omitempty"`
	Type     *DataFormatType              `json:"type,omitempty"`
}

// LookupData is the secondary source of a lookup transform.
type LookupData struct {
	Data   Data     `json:"data" vl:"required"`
	Fields []string `json:"fields,omitempty"`
	Key    string   `json:"key" vl:"required"`
}
