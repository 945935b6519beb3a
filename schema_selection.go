package vegalite

// SingleSelection selects one data value. Bind, Init and the event streams
// are plain JSON values.
type SingleSelection struct {
	Bind      any                  `json:"bind,omitempty"`
	Clear     any                  `json:"clear,omitempty"`
	Empty     *SelectionEmpty      `json:"empty,omitempty"`
	Encodings []string             `json:"encodings,omitempty"`
	Fields    []string             `json:"fields,omitempty"`
	Init      any                  `json:"init,omitempty"`
	Nearest   *bool                `json:"nearest,omitempty"`
	On        any                  `json:"on,omitempty"`
	Resolve   *SelectionResolution `json:"resolve,omitempty"`
	Type      SingleSelectionType  `json:"type" vl:"required"`
}

// MultiSelection selects several data values.
type MultiSelection struct {
	Clear     any                  `json:"clear,omitempty"`
	Empty     *SelectionEmpty      `json:"empty,omitempty"`
	Encodings []string             `json:"encodings,omitempty"`
	Fields    []string             `json:"fields,omitempty"`
	Init      any                  `json:"init,omitempty"`
	Nearest   *bool                `json:"nearest,omitempty"`
	On        any                  `json:"on,omitempty"`
	Resolve   *SelectionResolution `json:"resolve,omitempty"`
	Toggle    any                  `json:"toggle,omitempty"`
	Type      MultiSelectionType   `json:"type" vl:"required"`
}

// IntervalSelection selects a continuous range. Bind only accepts "scales".
type IntervalSelection struct {
	Bind      *Scales               `json:"bind,omitempty"`
	Clear     any                   `json:"clear,omitempty"`
	Empty     *SelectionEmpty       `json:"empty,omitempty"`
	Encodings []string              `json:"encodings,omitempty"`
	Fields    []string              `json:"fields,omitempty"`
	Init      any                   `json:"init,omitempty"`
	Mark      any                   `json:"mark,omitempty"`
	On        any                   `json:"on,omitempty"`
	Resolve   *SelectionResolution  `json:"resolve,omitempty"`
	Translate Translate             `json:"translate,omitempty"`
	Type      IntervalSelectionType `json:"type" vl:"required"`
	Zoom      Translate             `json:"zoom,omitempty"`
}
