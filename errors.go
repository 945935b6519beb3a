package vegalite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/vegalite/i18n"
	"github.com/reoring/vegalite/internal/codec"
)

// Issue codes.
const (
	CodeRequired          = "required"            // Missing required field (builder or decoder).
	CodeInvalidType       = "invalid_type"        // JSON shape does not match the field type.
	CodeNoMatchingVariant = "no_matching_variant" // No union alternative matched.
	CodeParseError        = "parse_error"         // Input is not valid JSON or YAML.
	CodeBuilderFinalized  = "builder_finalized"   // Build called twice on one builder.
	CodeUnknownKey        = "unknown_key"         // Unknown key under UnknownStrict.
	CodeDuplicateKey      = "duplicate_key"
	CodeTruncated         = "truncated"
	CodeIncompatible      = "incompatible_schema" // $schema names another major version.
)

// Issue represents a single problem found while building, decoding or
// encoding a document.
type Issue struct {
	Path    string // JSON Pointer (for example: /encoding/x/scale).
	Code    string // One of the codes listed above.
	Message string
	Hint    string
	Cause   error
	Offset  int64 // Byte offset in the input (-1 when unknown).
	// InputFragment is a compact rendering of the offending input, capped at
	// 256 bytes.
	InputFragment string
	// Params carries structured parameters such as {"variants": [...]}.
	Params map[string]any
}

// Issues is a collection of problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Paths lists the JSON Pointers of all issues in order.
func (iss Issues) Paths() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Path
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, path, msg string) Issues {
	return AppendIssues(nil, Issue{Code: code, Path: path, Message: msg, Offset: -1})
}

func fromCodecIssues(src []codec.Issue) Issues {
	iss := make(Issues, 0, len(src))
	for _, ci := range src {
		iss = append(iss, Issue{
			Path:          ci.Path,
			Code:          ci.Code,
			Message:       i18n.T(ci.Code, messageData(ci.Params)),
			Hint:          hintFor(ci),
			Offset:        -1,
			InputFragment: ci.InputFragment,
			Params:        ci.Params,
		})
	}
	return iss
}

func hintFor(ci codec.Issue) string {
	switch ci.Code {
	case codec.CodeNoMatchingVariant:
		if vs, ok := ci.Params["variants"].([]string); ok {
			return "tried " + strings.Join(vs, ", ")
		}
	case codec.CodeInvalidType:
		if vs, ok := ci.Params["expected"].([]string); ok {
			return "one of " + strings.Join(vs, ", ")
		}
	}
	return ""
}

func messageData(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprint(v)
	}
	return out
}
