package variant

import (
	"testing"

	"vitrin/models"
)

func TestUnitPricePrimaryValueWins(t *testing.T) {
	p := phoneProduct()
	sel := models.SelectedAttributes{"storage": {"128GB"}}
	if got := UnitPrice(p, sel); got != 1200000 {
		t.Fatalf("got %v want 1200000", got)
	}
	// the tier price applies no matter which variant record holds it, so a
	// selection that also names the other variant's color still prices the
	// same
	if got := UnitPrice(p, models.SelectedAttributes{"storage": {"64GB"}, "color": {"black"}}); got != 900000 {
		t.Fatalf("got %v want 900000", got)
	}
}

func TestUnitPriceFallsBackToProductPrice(t *testing.T) {
	p := phoneProduct()
	if got := UnitPrice(p, models.SelectedAttributes{}); got != p.Price {
		t.Fatalf("got %v want %v", got, p.Price)
	}
	if got := UnitPrice(p, models.SelectedAttributes{"storage": {"no-such-tier"}}); got != p.Price {
		t.Fatalf("got %v want %v", got, p.Price)
	}
}

func TestPriceForCombinationSumsTiers(t *testing.T) {
	p := sofaProduct()
	combo := Combination{"size": "3-seat", "fabric": "velvet"}
	if got := PriceForCombination(p, combo); got != 520 {
		t.Fatalf("got %v want 520", got)
	}
}

func TestTotalsMultiDependentCartesian(t *testing.T) {
	p := sofaProduct()
	// two sizes (250, 400) by one fabric (50): (250+50) + (400+50) = 750
	sel := models.SelectedAttributes{
		"size":   {"2-seat", "3-seat"},
		"fabric": {"linen"},
	}
	items, total := Totals(p, sel, 1, nil)
	if items != 2 {
		t.Fatalf("items %d want 2", items)
	}
	if total != 750 {
		t.Fatalf("total %v want 750", total)
	}
}

func TestTotalsHonorsIndividualOverrides(t *testing.T) {
	p := sofaProduct()
	sel := models.SelectedAttributes{
		"size":   {"2-seat", "3-seat"},
		"fabric": {"linen"},
	}
	overrides := map[string]int{
		"size:3-seat|fabric:linen": 2,
	}
	items, total := Totals(p, sel, 1, overrides)
	if items != 3 {
		t.Fatalf("items %d want 3", items)
	}
	// (250+50)*1 + (400+50)*2 = 1200
	if total != 1200 {
		t.Fatalf("total %v want 1200", total)
	}
}

func TestTotalsSinglePrimary(t *testing.T) {
	p := phoneProduct()
	sel := models.SelectedAttributes{"storage": {"128GB"}}
	items, total := Totals(p, sel, 2, nil)
	if items != 2 || total != 2400000 {
		t.Fatalf("items %d total %v", items, total)
	}
}

func TestPriceForSelectionMultiDependentLine(t *testing.T) {
	p := sofaProduct()
	sel := models.SelectedAttributes{"size": {"2-seat"}, "fabric": {"velvet"}}
	if got := PriceForSelection(p, sel); got != 370 {
		t.Fatalf("got %v want 370", got)
	}
}
