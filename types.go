package vegalite

// UnknownPolicy controls how unknown object keys are handled while decoding.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys (forward compatible default).
	UnknownStrict                      // Report unknown keys as unknown_key issues.
)

// NumberMode dictates how a Source hands numbers to the decoder.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve the literal as json.Number.
	NumberFloat64                      // Convert to float64 while reading.
)

// Strictness configures enforcement of duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// PresenceOpt configures presence collection for ParseWithMeta.
type PresenceOpt struct {
	Collect bool
	Include []string
	Exclude []string
}

// PathRenderOpt controls how presence paths are stored.
type PathRenderOpt struct {
	Intern bool
}

// ParseOpt bundles parsing options. The zero value decodes leniently:
// duplicate keys keep the last value, unknown keys are dropped and there are
// no size limits.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	Unknown    UnknownPolicy
	Presence   PresenceOpt
	PathRender PathRenderOpt
	FailFast   bool
}
