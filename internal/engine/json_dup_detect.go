package engine

import (
	"errors"
	"io"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// DetectDuplicateKeys drains src and reports every duplicated object key with
// its JSON Pointer. maxIssues < 0 means unlimited; 0 disables detection; >0
// caps the result and appends a "truncated" marker. Syntax errors are
// reported as a trailing parse_error issue rather than an error.
func DetectDuplicateKeys(src TokenSource, maxIssues int) ([]SimpleIssue, error) {
	if maxIssues == 0 {
		return nil, nil
	}
	var issues []SimpleIssue
	limited := false
	wrapped := WrapWithEnforcement(src, EnforceOptions{
		OnDuplicate: DupWarn,
		IssueSink: func(si SimpleIssue) {
			if limited {
				return
			}
			issues = append(issues, si)
			if maxIssues > 0 && len(issues) >= maxIssues {
				limited = true
			}
		},
	})
	depth := 0
	for {
		if limited {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
			return issues, nil
		}
		tok, err := wrapped.NextToken()
		if errors.Is(err, io.EOF) && depth > 0 {
			err = io.ErrUnexpectedEOF
		}
		if errors.Is(err, io.EOF) {
			return issues, nil
		}
		if err != nil {
			issues = append(issues, SimpleIssue{Code: "parse_error", Path: "/", Message: err.Error()})
			return issues, nil
		}
		switch tok.Kind {
		case KindBeginObject, KindBeginArray:
			depth++
		case KindEndObject, KindEndArray:
			depth--
		}
	}
}
