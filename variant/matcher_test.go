package variant

import (
	"testing"

	"vitrin/models"
)

func TestMatchVariantPrimaryDependentIgnoresRecordOwnership(t *testing.T) {
	p := phoneProduct()
	sel := models.SelectedAttributes{"storage": {"128GB"}}
	v := MatchVariant(p, sel)
	if v == nil {
		t.Fatal("expected a match for 128GB")
	}
	// secondary attribute narrows the candidates
	sel["color"] = models.AttrValue{"black"}
	v = MatchVariant(p, sel)
	if v == nil || v.VariantID != "v1" {
		t.Fatalf("expected v1, got %+v", v)
	}
	// no variant holds 128GB together with silver
	sel["color"] = models.AttrValue{"silver"}
	if v := MatchVariant(p, sel); v != nil {
		t.Fatalf("expected nil, got %+v", v)
	}
}

func TestMatchVariantNoMatchReturnsNil(t *testing.T) {
	p := phoneProduct()
	sel := models.SelectedAttributes{"storage": {"1TB"}, "color": {"green"}}
	if v := MatchVariant(p, sel); v != nil {
		t.Fatalf("expected nil, got %+v", v)
	}
}

func TestMatchVariantMultiDependentRequiresStock(t *testing.T) {
	p := sofaProduct()
	sel := models.SelectedAttributes{"size": {"2-seat"}}
	if MatchVariant(p, sel) == nil {
		t.Fatal("expected in-stock variant to match")
	}
	zero := models.FlexInt(0)
	p.Variants[0].StockQuantity = &zero
	if MatchVariant(p, sel) != nil {
		t.Fatal("out-of-stock variant must not match under multi-dependent")
	}
}

func TestMatchVariantArraySelectionSomeValueMatches(t *testing.T) {
	p := sofaProduct()
	sel := models.SelectedAttributes{"size": {"3-seat", "2-seat"}}
	if MatchVariant(p, sel) == nil {
		t.Fatal("array selection should match when any value equals the variant's")
	}
}

func TestAvailableVariantsNarrowing(t *testing.T) {
	p := phoneProduct()
	all := AvailableVariants(p, models.SelectedAttributes{})
	if len(all) != 2 {
		t.Fatalf("empty selection should keep all variants, got %d", len(all))
	}
	narrowed := AvailableVariants(p, models.SelectedAttributes{"color": {"black"}})
	if len(narrowed) != 1 || narrowed[0].VariantID != "v1" {
		t.Fatalf("got %+v", narrowed)
	}
}

func TestCombinationsCartesianProduct(t *testing.T) {
	p := sofaProduct()
	sel := models.SelectedAttributes{
		"size":   {"2-seat", "3-seat"},
		"fabric": {"linen"},
	}
	combos := Combinations(p, sel)
	if len(combos) != 2 {
		t.Fatalf("expected 2 combinations, got %d: %v", len(combos), combos)
	}
	seen := map[string]bool{}
	for _, c := range combos {
		seen[c["size"]+"/"+c["fabric"]] = true
	}
	if !seen["2-seat/linen"] || !seen["3-seat/linen"] {
		t.Fatalf("missing combinations: %v", combos)
	}
}
