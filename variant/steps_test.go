package variant

import (
	"testing"

	"vitrin/models"
)

func TestSelectAdvancesStepInOrder(t *testing.T) {
	p := sofaProduct()
	s := NewSelection()

	s.Select(p, "size", "2-seat")
	if s.Step != 1 {
		t.Fatalf("step %d want 1", s.Step)
	}
	s.Select(p, "fabric", "linen")
	if s.Step != 2 {
		t.Fatalf("step %d want 2", s.Step)
	}
	// last ordered attribute: the pointer stays put
	s.Select(p, "legs", "oak")
	if s.Step != 2 {
		t.Fatalf("step %d want 2", s.Step)
	}
}

func TestSelectEarlierStepDoesNotRegress(t *testing.T) {
	p := sofaProduct()
	s := NewSelection()
	s.Select(p, "size", "2-seat")
	s.Select(p, "fabric", "linen")

	// re-picking the first attribute neither rewinds the step nor clears
	// the later selection
	s.Select(p, "size", "3-seat")
	if s.Step != 2 {
		t.Fatalf("step regressed to %d", s.Step)
	}
	if len(s.Attributes["fabric"]) == 0 {
		t.Fatal("later selection was cleared")
	}
}

func TestSelectOutOfOrderDoesNotAdvance(t *testing.T) {
	p := sofaProduct()
	s := NewSelection()
	// fabric sits at step 1; picking it while the pointer is at 0 records
	// the value but does not move the pointer
	s.Select(p, "fabric", "linen")
	if s.Step != 0 {
		t.Fatalf("step %d want 0", s.Step)
	}
	if len(s.Attributes["fabric"]) != 1 {
		t.Fatal("selection not recorded")
	}
}

func TestSelectToggleMultiSelect(t *testing.T) {
	p := sofaProduct()
	s := NewSelection()
	s.Select(p, "size", "2-seat")
	s.Select(p, "size", "3-seat")
	if len(s.Attributes["size"]) != 2 {
		t.Fatalf("got %v", s.Attributes["size"])
	}
	s.Select(p, "size", "2-seat")
	if got := s.Attributes["size"]; len(got) != 1 || got[0] != "3-seat" {
		t.Fatalf("toggle off failed: %v", got)
	}
}

func TestSelectSingleSelectPrimaryReplaces(t *testing.T) {
	p := phoneProduct()
	s := NewSelection()
	s.Select(p, "storage", "64GB")
	s.Select(p, "storage", "128GB")
	if got := s.Attributes["storage"]; len(got) != 1 || got[0] != "128GB" {
		t.Fatalf("single-select primary must replace, got %v", got)
	}
}

func TestIsComplete(t *testing.T) {
	sofa := sofaProduct()
	sel := models.SelectedAttributes{"size": {"2-seat"}, "fabric": {"linen"}}
	if IsComplete(sofa, sel) {
		t.Fatal("legs missing, selection must be incomplete")
	}
	sel["legs"] = models.AttrValue{"oak"}
	if !IsComplete(sofa, sel) {
		t.Fatal("all ordered attributes picked, selection must be complete")
	}

	phone := phoneProduct()
	if IsComplete(phone, models.SelectedAttributes{"color": {"black"}}) {
		t.Fatal("primary-dependent needs the primary attribute")
	}
	if !IsComplete(phone, models.SelectedAttributes{"storage": {"64GB"}}) {
		t.Fatal("primary picked, selection must be complete")
	}

	simple := &models.Product{
		VariantConfig: &models.VariantConfig{Type: models.SchemeSimple},
		Variants:      []models.Variant{{Attributes: map[string]string{"color": "red"}}},
	}
	if IsComplete(simple, models.SelectedAttributes{}) {
		t.Fatal("empty selection is never complete")
	}
	if !IsComplete(simple, models.SelectedAttributes{"color": {"red"}}) {
		t.Fatal("any pick satisfies the simple scheme")
	}
}
