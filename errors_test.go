package vegalite_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	vegalite "github.com/reoring/vegalite"
)

// TestErrorModel_CollectVsFailFast compares collecting every issue with
// stopping at the first one.
func TestErrorModel_CollectVsFailFast(t *testing.T) {
	ctx := context.Background()
	js := []byte(`{"fields":[1],"zzz":true}`)

	_, err := vegalite.Parse[vegalite.LookupData](ctx, vegalite.JSONBytes(js), vegalite.ParseOpt{Unknown: vegalite.UnknownStrict})
	var iss vegalite.Issues
	if !errors.As(err, &iss) {
		t.Fatalf("expected errors.As to extract Issues, got: %v", err)
	}
	if len(iss) != 4 {
		t.Fatalf("expected 4 issues, got: %v", iss)
	}

	_, err = vegalite.Parse[vegalite.LookupData](ctx, vegalite.JSONBytes(js), vegalite.ParseOpt{Unknown: vegalite.UnknownStrict, FailFast: true})
	iss2, ok := vegalite.AsIssues(err)
	if !ok || len(iss2) != 1 {
		t.Fatalf("expected a single fail-fast issue, got: %v", err)
	}
	if iss2[0].Code != vegalite.CodeRequired || iss2[0].Path != "/data" {
		t.Fatalf("unexpected first issue: %+v", iss2[0])
	}
}

// TestErrorModel_DeterministicOrder checks that record issues follow field
// order and unknown keys come last, sorted.
func TestErrorModel_DeterministicOrder(t *testing.T) {
	ctx := context.Background()
	js := []byte(`{"zzz":1,"fields":[1],"yyy":2}`)
	for i := 0; i < 5; i++ {
		_, err := vegalite.Parse[vegalite.LookupData](ctx, vegalite.JSONBytes(js), vegalite.ParseOpt{Unknown: vegalite.UnknownStrict})
		iss, ok := vegalite.AsIssues(err)
		if !ok {
			t.Fatalf("expected issues, got %v", err)
		}
		want := []string{"/data", "/fields/0", "/key", "/yyy", "/zzz"}
		if got := iss.Paths(); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: paths = %v, want %v", i, got, want)
		}
		codes := []string{iss[0].Code, iss[1].Code, iss[2].Code, iss[3].Code}
		wantCodes := []string{vegalite.CodeRequired, vegalite.CodeInvalidType, vegalite.CodeRequired, vegalite.CodeUnknownKey}
		if !reflect.DeepEqual(codes, wantCodes) {
			t.Fatalf("codes = %v, want %v", codes, wantCodes)
		}
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := vegalite.Issues{
		{Code: vegalite.CodeRequired, Path: "/mark"},
		{Code: vegalite.CodeInvalidType, Path: "/width"},
		{Code: vegalite.CodeUnknownKey, Path: "/colour"},
		{Code: vegalite.CodeUnknownKey, Path: "/size"},
	}
	got := iss.Error()
	want := "required at /mark; invalid_type at /width; unknown_key at /colour; ... (total 4)"
	if got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if vegalite.Issues(nil).Error() != "" {
		t.Fatal("empty Issues should render as an empty string")
	}
}

func TestIssues_MessagesAndHints(t *testing.T) {
	_, err := vegalite.FromJSON([]byte(`{"mark":"pie"}`))
	iss, ok := vegalite.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	it := iss[0]
	if it.Message != "value matches no alternative of AnyMark" {
		t.Errorf("message = %q", it.Message)
	}
	if !strings.HasPrefix(it.Hint, "tried CompositeMark") {
		t.Errorf("hint = %q", it.Hint)
	}
	if it.Offset != -1 {
		t.Errorf("offset = %d, want -1", it.Offset)
	}

	_, err = vegalite.FromJSON([]byte(`{"mark":"bar","encoding":{"x":{"field":"a","type":"nominalish"}}}`))
	iss, _ = vegalite.AsIssues(err)
	if len(iss) != 1 || iss[0].Path != "/encoding/x/type" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if !strings.Contains(iss[0].Hint, "quantitative") {
		t.Errorf("enum hint should list allowed values, got %q", iss[0].Hint)
	}
}

func TestAsIssues_WrappedAndForeign(t *testing.T) {
	base := vegalite.AppendIssues(nil, vegalite.Issue{Code: vegalite.CodeTruncated, Path: "/"})
	wrapped := fmt.Errorf("loading chart: %w", base)
	iss, ok := vegalite.AsIssues(wrapped)
	if !ok || len(iss) != 1 || iss[0].Code != vegalite.CodeTruncated {
		t.Fatalf("AsIssues through %%w failed: %v %v", iss, ok)
	}
	if _, ok := vegalite.AsIssues(errors.New("plain")); ok {
		t.Fatal("plain errors are not Issues")
	}
	if _, ok := vegalite.AsIssues(nil); ok {
		t.Fatal("nil is not Issues")
	}
}
