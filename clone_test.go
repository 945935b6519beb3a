package vegalite_test

import (
	"testing"

	vegalite "github.com/reoring/vegalite"
)

func TestClone_Independent(t *testing.T) {
	orig, err := vegalite.FromJSON([]byte(layered))
	if err != nil {
		t.Fatal(err)
	}
	snapshot, err := vegalite.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	c := vegalite.Clone(orig)
	if !vegalite.Equal(orig, c) {
		t.Fatal("clone differs from its source")
	}
	c.Layer[0].Mark = vegalite.MarkLine
	c.Transform = append(c.Transform[:0], vegalite.CalculateTransform{Calculate: "1", As: "one"})
	c.Layer[1].Encoding.Y.Field = vegalite.String("c")
	if vegalite.Equal(orig, c) {
		t.Fatal("mutated clone still equals its source")
	}

	after, err := vegalite.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(snapshot) {
		t.Fatalf("source changed through its clone:\n%s\n%s", snapshot, after)
	}
}

func TestClone_ZeroValues(t *testing.T) {
	var nilPred vegalite.Predicate
	if got := vegalite.Clone(nilPred); got != nil {
		t.Fatalf("Clone(nil) = %v", got)
	}
	if got := vegalite.Clone(vegalite.Document{}); !vegalite.Equal(got, vegalite.Document{}) {
		t.Fatalf("Clone(zero) = %+v", got)
	}
}

func TestEqual_NilVersusEmpty(t *testing.T) {
	a := vegalite.Document{Mark: vegalite.MarkBar}
	b := vegalite.Document{Mark: vegalite.MarkBar, Transform: []vegalite.Transform{}}
	if vegalite.Equal(a, b) {
		t.Fatal("nil and empty transform lists encode differently and must not be equal")
	}
	if !vegalite.Equal(a, vegalite.Clone(a)) {
		t.Fatal("a value equals its clone")
	}
}
