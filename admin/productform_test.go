package admin

import (
	"testing"

	"vitrin/models"
)

func TestValidateProductRequiredFields(t *testing.T) {
	good := models.Product{Name: "Shirt", Price: 100, Category: "apparel", Brand: "acme"}
	if err := ValidateProduct(&good); err != nil {
		t.Fatalf("valid product rejected: %v", err)
	}

	cases := []models.Product{
		{Price: 100, Category: "apparel", Brand: "acme"},
		{Name: "Shirt", Category: "apparel", Brand: "acme"},
		{Name: "Shirt", Price: 100, Brand: "acme"},
		{Name: "Shirt", Price: 100, Category: "apparel"},
	}
	for i, p := range cases {
		if err := ValidateProduct(&p); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestPrepareProductCoercesVariantPrices(t *testing.T) {
	p := models.Product{
		Name: "Shirt", Price: 150, Category: "apparel", Brand: "acme",
		VariantConfig: &models.VariantConfig{Type: "weird", PrimaryAttribute: "size"},
		Variants: []models.Variant{
			{Price: 0, Attributes: map[string]string{"size": "L"}},
			{VariantID: "v2", Price: 200},
		},
	}
	PrepareProduct(&p)

	if p.VariantConfig.Type != models.SchemePrimaryDependent {
		t.Fatalf("config type not normalized: %s", p.VariantConfig.Type)
	}
	if float64(p.Variants[0].Price) != 150 {
		t.Fatalf("missing price not coerced to product price: %v", p.Variants[0].Price)
	}
	if float64(p.Variants[1].Price) != 200 {
		t.Fatalf("explicit price overwritten: %v", p.Variants[1].Price)
	}
	if p.Variants[0].VariantID == "" {
		t.Fatal("variant id not filled in")
	}
	// attributeOrder grew to cover every referenced attribute
	found := false
	for _, name := range p.VariantConfig.AttributeOrder {
		if name == "size" {
			found = true
		}
	}
	if !found {
		t.Fatalf("attributeOrder missing size: %v", p.VariantConfig.AttributeOrder)
	}
}
