package variant

import (
	"testing"

	"vitrin/models"
)

func TestSchemeInference(t *testing.T) {
	p := &models.Product{
		Variants:      []models.Variant{{VariantID: "v1"}},
		VariantConfig: &models.VariantConfig{Type: "legacy-nonsense", PrimaryAttributes: []string{"size", "color"}},
	}
	if got := Scheme(p); got != models.SchemeMultiDependent {
		t.Fatalf("expected multi-dependent, got %s", got)
	}

	p.VariantConfig = &models.VariantConfig{Type: "", PrimaryAttribute: "storage"}
	if got := Scheme(p); got != models.SchemePrimaryDependent {
		t.Fatalf("expected primary-dependent, got %s", got)
	}

	p.VariantConfig = &models.VariantConfig{}
	if got := Scheme(p); got != models.SchemeSimple {
		t.Fatalf("expected simple, got %s", got)
	}
}

func TestNormalizeConfigRewritesLegacyType(t *testing.T) {
	p := &models.Product{
		Variants:      []models.Variant{{VariantID: "v1"}},
		VariantConfig: &models.VariantConfig{Type: "old", PrimaryAttribute: "storage"},
	}
	NormalizeConfig(p)
	if p.VariantConfig.Type != models.SchemePrimaryDependent {
		t.Fatalf("type not normalized: %s", p.VariantConfig.Type)
	}
}

func TestNormalizeAttributeOrderSuperset(t *testing.T) {
	p := &models.Product{
		VariantConfig: &models.VariantConfig{
			Type:           models.SchemeMultiDependent,
			AttributeOrder: []string{"color", "123", "fabric_raw"},
		},
		Variants: []models.Variant{
			{
				Attributes:    map[string]string{"color": "red", "weave": "plain"},
				PrimaryValues: []models.PrimaryValue{{Attribute: "size", Value: "L"}},
				MultiValues:   map[string][]string{"finish": {"matte"}, "finish_raw": {"matte"}},
			},
		},
	}
	NormalizeAttributeOrder(p)

	got := p.VariantConfig.AttributeOrder
	want := map[string]bool{"color": true, "weave": true, "size": true, "finish": true}
	if len(got) != len(want) {
		t.Fatalf("unexpected order %v", got)
	}
	for _, name := range got {
		if !want[name] {
			t.Fatalf("unexpected attribute %q in %v", name, got)
		}
	}
	if got[0] != "color" {
		t.Fatalf("existing order not preserved: %v", got)
	}
}

func TestIsAttributeNameFiltersJunkKeys(t *testing.T) {
	for _, bad := range []string{"", "0", "123", "color_raw", "_raw"} {
		if IsAttributeName(bad) {
			t.Errorf("%q should not be an attribute name", bad)
		}
	}
	for _, good := range []string{"color", "size2", "ram_gb"} {
		if !IsAttributeName(good) {
			t.Errorf("%q should be an attribute name", good)
		}
	}
}
