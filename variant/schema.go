// Package variant implements the configurable-product rules the storefront
// depends on: schema normalization, attribute value resolution, matching a
// selection to a variant record, and combination pricing.
package variant

import (
	"regexp"
	"strings"

	"vitrin/models"
)

var numericKey = regexp.MustCompile(`^\d+$`)

// IsAttributeName reports whether key names a real attribute. Purely numeric
// keys and "_raw" display keys leak into stored documents from older admin
// clients and must never surface as attributes.
func IsAttributeName(key string) bool {
	if key == "" {
		return false
	}
	if strings.HasSuffix(key, "_raw") {
		return false
	}
	return !numericKey.MatchString(key)
}

// Scheme returns the normalized config type without mutating the product.
func Scheme(p *models.Product) string {
	cfg := p.VariantConfig
	if cfg == nil {
		return models.SchemeSimple
	}
	switch cfg.Type {
	case models.SchemeSimple, models.SchemePrimaryDependent, models.SchemeMultiDependent:
		return cfg.Type
	}
	// legacy documents: infer from which primary fields are set
	if len(cfg.PrimaryAttributes) > 0 {
		return models.SchemeMultiDependent
	}
	if cfg.PrimaryAttribute != "" {
		return models.SchemePrimaryDependent
	}
	return models.SchemeSimple
}

// NormalizeConfig rewrites a legacy config type in place and makes
// attributeOrder a superset of every attribute name the variants reference.
// Runs at load time and before every admin save.
func NormalizeConfig(p *models.Product) {
	if len(p.Variants) == 0 && p.VariantConfig == nil {
		return
	}
	if p.VariantConfig == nil {
		p.VariantConfig = &models.VariantConfig{}
	}
	p.VariantConfig.Type = Scheme(p)
	NormalizeAttributeOrder(p)
}

// NormalizeAttributeOrder keeps the existing order, drops non-attribute
// keys, and appends any attribute name found in the variants that the order
// was missing.
func NormalizeAttributeOrder(p *models.Product) {
	cfg := p.VariantConfig
	if cfg == nil {
		return
	}

	seen := make(map[string]bool)
	order := make([]string, 0, len(cfg.AttributeOrder))
	for _, name := range cfg.AttributeOrder {
		if !IsAttributeName(name) || seen[name] {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	for _, name := range discoveredNames(p) {
		if seen[name] {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	cfg.AttributeOrder = order
}

// OrderedAttributes is the full attribute name list for the product:
// attributeOrder first, then anything the variants reference that the order
// is missing.
func OrderedAttributes(p *models.Product) []string {
	seen := make(map[string]bool)
	var names []string
	if p.VariantConfig != nil {
		for _, name := range p.VariantConfig.AttributeOrder {
			if !IsAttributeName(name) || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range discoveredNames(p) {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// discoveredNames walks every place a variant can mention an attribute:
// plain attributes, primaryValues tags, multiValues keys. Map keys are
// sorted so discovery order is stable across runs.
func discoveredNames(p *models.Product) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !IsAttributeName(name) || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}

	for _, v := range p.Variants {
		for _, key := range sortedKeys(v.Attributes) {
			add(key)
		}
		for _, pv := range v.PrimaryValues {
			if pv.Attribute != "" {
				add(pv.Attribute)
			}
		}
		for _, key := range sortedMultiKeys(v.MultiValues) {
			add(key)
		}
	}

	if cfg := p.VariantConfig; cfg != nil {
		if cfg.PrimaryAttribute != "" {
			add(cfg.PrimaryAttribute)
		}
		for _, name := range cfg.PrimaryAttributes {
			add(name)
		}
	}
	return names
}

// isPrimary reports whether name is a pricing attribute under the active
// scheme.
func isPrimary(p *models.Product, name string) bool {
	cfg := p.VariantConfig
	if cfg == nil {
		return false
	}
	switch Scheme(p) {
	case models.SchemePrimaryDependent, models.SchemeSimple:
		return cfg.PrimaryAttribute != "" && name == cfg.PrimaryAttribute
	case models.SchemeMultiDependent:
		for _, a := range cfg.PrimaryAttributes {
			if a == name {
				return true
			}
		}
	}
	return false
}

// primaryValueMatches applies the attribute-tag rule: under multi-dependent
// an entry counts only when tagged with the attribute; under a single
// primary attribute every entry counts, tagged or not.
func primaryValueMatches(scheme, name string, pv models.PrimaryValue) bool {
	if scheme == models.SchemeMultiDependent {
		return pv.Attribute == name
	}
	return true
}
