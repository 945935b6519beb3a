package vegalite

import (
	"strings"
	"testing"
)

func TestDetectJSONDuplicateKeysBytes_NoDup(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"mark":"bar","data":{"url":"a.csv"}}`), -1)
	if len(iss) != 0 {
		t.Fatalf("expected 0 issues, got %d: %v", len(iss), iss)
	}
}

func TestDetectJSONDuplicateKeysBytes_WithDup(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"mark":"bar","encoding":{"x":{"field":"a","field":"b"}}}`), -1)
	if len(iss) != 1 {
		t.Fatalf("expected 1 issue, got %v", iss)
	}
	if iss[0].Code != CodeDuplicateKey {
		t.Fatalf("expected duplicate_key, got %s", iss[0].Code)
	}
	if iss[0].Path != "/encoding/x/field" {
		t.Fatalf("expected path /encoding/x/field, got %s", iss[0].Path)
	}
}

func TestDetectJSONDuplicateKeysBytes_SameKeyInSiblings(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"layer":[{"mark":"bar"},{"mark":"line"}]}`), -1)
	if len(iss) != 0 {
		t.Fatalf("keys in sibling objects are not duplicates: %v", iss)
	}
}

func TestDetectJSONDuplicateKeysBytes_Cap(t *testing.T) {
	iss := DetectJSONDuplicateKeysBytes([]byte(`{"a":1,"a":2,"a":3,"a":4}`), 2)
	if len(iss) != 3 {
		t.Fatalf("expected 2 issues plus truncated marker, got %v", iss)
	}
	if iss[2].Code != CodeTruncated {
		t.Fatalf("expected truncated marker, got %s", iss[2].Code)
	}
	if got := DetectJSONDuplicateKeysBytes([]byte(`{"a":1,"a":2}`), 0); len(got) != 0 {
		t.Fatalf("maxIssues=0 disables detection, got %v", got)
	}
}

func TestDetectJSONDuplicateKeysReader_Malformed(t *testing.T) {
	iss := DetectJSONDuplicateKeysReader(strings.NewReader(`{"a":1,"a":`), -1)
	if len(iss) != 2 {
		t.Fatalf("expected duplicate then parse_error, got %v", iss)
	}
	if iss[1].Code != CodeParseError {
		t.Fatalf("expected parse_error, got %s", iss[1].Code)
	}
}
