package cart

import (
	"testing"

	"vitrin/models"
)

func TestCanonicalVariantIDOrderInsensitive(t *testing.T) {
	a := models.SelectedAttributes{"a": {"1"}, "b": {"2"}}
	b := models.SelectedAttributes{"b": {"2"}, "a": {"1"}}
	if CanonicalVariantID("", a) != CanonicalVariantID("", b) {
		t.Fatalf("ids differ: %s vs %s", CanonicalVariantID("", a), CanonicalVariantID("", b))
	}
	if got := CanonicalVariantID("", a); got != "combination-a:1-b:2" {
		t.Fatalf("got %s", got)
	}
}

func TestCanonicalVariantIDValueOrderInsensitive(t *testing.T) {
	a := models.SelectedAttributes{"size": {"L", "M"}}
	b := models.SelectedAttributes{"size": {"M", "L"}}
	if CanonicalVariantID("", a) != CanonicalVariantID("", b) {
		t.Fatal("multi-value order must not matter")
	}
	if got := CanonicalVariantID("", a); got != "combination-size:L,M" {
		t.Fatalf("got %s", got)
	}
}

func TestCanonicalVariantIDWithoutAttributes(t *testing.T) {
	if got := CanonicalVariantID("v42", nil); got != "v42" {
		t.Fatalf("got %s", got)
	}
	if got := CanonicalVariantID("", nil); got != "default" {
		t.Fatalf("got %s", got)
	}
}

func TestAttributesEqual(t *testing.T) {
	a := models.SelectedAttributes{"size": {"L", "M"}, "color": {"red"}}
	b := models.SelectedAttributes{"color": {"red"}, "size": {"M", "L"}}
	if !AttributesEqual(a, b) {
		t.Fatal("expected equal")
	}
	c := models.SelectedAttributes{"color": {"red"}}
	if AttributesEqual(a, c) {
		t.Fatal("different key sets must not be equal")
	}
	d := models.SelectedAttributes{"size": {"L"}, "color": {"red"}}
	if AttributesEqual(a, d) {
		t.Fatal("different values must not be equal")
	}
}
