package vegalite

import (
	"io"

	eng "github.com/reoring/vegalite/internal/engine"
)

// DetectDuplicateKeys reports every duplicated object key in src with its
// JSON Pointer. maxIssues < 0 means unlimited; 0 disables detection; >0 caps
// the result and appends a "truncated" issue. Malformed input ends the scan
// with a parse_error issue.
func DetectDuplicateKeys(src Source, maxIssues int) Issues {
	si, _ := eng.DetectDuplicateKeys(engineTokenSource(src), maxIssues)
	return fromEngineIssues(si)
}

// DetectJSONDuplicateKeysBytes runs DetectDuplicateKeys over a byte slice.
func DetectJSONDuplicateKeysBytes(data []byte, maxIssues int) Issues {
	return DetectDuplicateKeys(JSONBytes(data), maxIssues)
}

// DetectJSONDuplicateKeysReader runs DetectDuplicateKeys over an io.Reader.
func DetectJSONDuplicateKeysReader(r io.Reader, maxIssues int) Issues {
	return DetectDuplicateKeys(JSONReader(r), maxIssues)
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		iss = AppendIssues(iss, Issue{Code: s.Code, Path: s.Path, Message: s.Message, Offset: -1})
	}
	return iss
}
