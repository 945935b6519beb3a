package vegalite_test

import (
	"testing"

	vegalite "github.com/reoring/vegalite"
)

func TestIsCompatible(t *testing.T) {
	cases := []struct {
		url     string
		want    bool
		wantErr bool
	}{
		{url: vegalite.SchemaURL, want: true},
		{url: "https://vega.github.io/schema/vega-lite/v3.json", want: true},
		{url: "https://vega.github.io/schema/vega-lite/v3.0.json", want: true},
		{url: "https://vega.github.io/schema/vega-lite/v3.9.1.json", want: true},
		{url: "https://vega.github.io/schema/vega-lite/v2.6.0.json", want: false},
		{url: "https://vega.github.io/schema/vega-lite/v4.json", want: false},
		{url: "https://vega.github.io/schema/vega/v5.json", wantErr: true},
		{url: "not a url", wantErr: true},
	}
	for _, tc := range cases {
		got, err := vegalite.IsCompatible(tc.url)
		if (err != nil) != tc.wantErr {
			t.Errorf("IsCompatible(%q) error = %v, wantErr %v", tc.url, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("IsCompatible(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestSchemaVersionOf(t *testing.T) {
	v, err := vegalite.SchemaVersionOf(vegalite.SchemaURL)
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != vegalite.SchemaVersion {
		t.Fatalf("version = %s, want %s", v, vegalite.SchemaVersion)
	}
}

func TestCheckSchema(t *testing.T) {
	if err := vegalite.CheckSchema(vegalite.Document{}); err != nil {
		t.Fatalf("empty schema: %v", err)
	}
	if err := vegalite.CheckSchema(vegalite.Document{Schema: vegalite.SchemaURL}); err != nil {
		t.Fatalf("current schema: %v", err)
	}

	err := vegalite.CheckSchema(vegalite.Document{Schema: "https://vega.github.io/schema/vega-lite/v4.json"})
	iss, ok := vegalite.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue, got %v", err)
	}
	if iss[0].Code != vegalite.CodeIncompatible || iss[0].Path != "/$schema" {
		t.Fatalf("unexpected issue %+v", iss[0])
	}
	if iss[0].Message != "schema https://vega.github.io/schema/vega-lite/v4.json is not compatible with ^3" {
		t.Fatalf("message = %q", iss[0].Message)
	}

	err = vegalite.CheckSchema(vegalite.Document{Schema: "schema.json"})
	iss, ok = vegalite.AsIssues(err)
	if !ok || iss[0].Cause == nil {
		t.Fatalf("unparseable schema should carry a cause, got %v", err)
	}
}
