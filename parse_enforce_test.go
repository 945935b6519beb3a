package vegalite_test

import (
	"bytes"
	"context"
	"testing"

	vegalite "github.com/reoring/vegalite"
)

func TestParse_DuplicateKey_Error(t *testing.T) {
	opt := vegalite.ParseOpt{Strictness: vegalite.Strictness{OnDuplicateKey: vegalite.Error}}
	_, err := vegalite.Parse[vegalite.Document](context.Background(), vegalite.JSONBytes([]byte(`{"mark":"bar","mark":"line"}`)), opt)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	iss, ok := vegalite.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues error, got: %v", err)
	}
	if len(iss) == 0 || iss[0].Code != vegalite.CodeDuplicateKey {
		t.Fatalf("expected duplicate_key issue, got: %v", iss)
	}
	if iss[0].Path != "/mark" {
		t.Fatalf("expected path=/mark, got: %s", iss[0].Path)
	}
}

func TestParse_DuplicateKey_NestedPath(t *testing.T) {
	opt := vegalite.ParseOpt{Strictness: vegalite.Strictness{OnDuplicateKey: vegalite.Error}}
	src := vegalite.JSONBytes([]byte(`{"layer":[{"mark":"bar","mark":"bar"}]}`))
	_, err := vegalite.Parse[vegalite.Document](context.Background(), src, opt)
	iss, ok := vegalite.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Path != "/layer/0/mark" {
		t.Fatalf("expected path=/layer/0/mark, got: %s", iss[0].Path)
	}
}

func TestParse_DuplicateKey_WarnKeepsLast(t *testing.T) {
	opt := vegalite.ParseOpt{Strictness: vegalite.Strictness{OnDuplicateKey: vegalite.Warn}}
	doc, err := vegalite.Parse[vegalite.Document](context.Background(), vegalite.JSONBytes([]byte(`{"mark":"bar","mark":"line"}`)), opt)
	if err != nil {
		t.Fatalf("warn must not fail: %v", err)
	}
	if doc.Mark != vegalite.MarkLine {
		t.Fatalf("expected last value to win, got %v", doc.Mark)
	}
}

func TestParse_MaxDepth_Exceeded(t *testing.T) {
	// depth 3 at /layer/0
	src := vegalite.JSONBytes([]byte(`{"layer":[{"mark":"bar"}]}`))
	_, err := vegalite.Parse[vegalite.Document](context.Background(), src, vegalite.ParseOpt{MaxDepth: 2})
	if err == nil {
		t.Fatalf("expected error for max depth exceeded")
	}
	iss, ok := vegalite.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Path != "/layer/0" {
		t.Fatalf("expected path=/layer/0 for max depth, got: %v", err)
	}
	if iss[0].Code != vegalite.CodeParseError {
		t.Fatalf("expected parse_error, got %s", iss[0].Code)
	}
}

func TestParse_MaxDepth_RecursiveSpecs(t *testing.T) {
	deep := []byte(`{"spec":{"spec":{"spec":{"spec":{"mark":"bar"}}}},"facet":{"row":{"field":"a","type":"nominal"}}}`)
	_, err := vegalite.Parse[vegalite.Document](context.Background(), vegalite.JSONBytes(deep), vegalite.ParseOpt{MaxDepth: 4})
	iss, ok := vegalite.AsIssues(err)
	if !ok || iss[0].Path != "/spec/spec/spec/spec" {
		t.Fatalf("expected depth error at /spec/spec/spec/spec, got: %v", err)
	}
}

func TestParseReader_MaxBytes_Exceeded(t *testing.T) {
	data := append([]byte(`{"mark":"bar"}`), bytes.Repeat([]byte(" "), 1024)...)
	_, err := vegalite.ParseReader[vegalite.Document](context.Background(), bytes.NewReader(data), vegalite.ParseOpt{MaxBytes: 16})
	if err == nil {
		t.Fatalf("expected error for max bytes exceeded")
	}
	iss, ok := vegalite.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != vegalite.CodeTruncated {
		t.Fatalf("expected truncated issue, got: %v", err)
	}
	if iss[0].Path != "/" {
		t.Fatalf("expected truncated path at root, got: %s", iss[0].Path)
	}
}

func TestParseReader_WithinMaxBytes(t *testing.T) {
	data := []byte(`{"mark":"bar"}`)
	doc, err := vegalite.ParseReader[vegalite.Document](context.Background(), bytes.NewReader(data), vegalite.ParseOpt{MaxBytes: int64(len(data))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Mark != vegalite.MarkBar {
		t.Fatalf("mark = %v", doc.Mark)
	}
}
