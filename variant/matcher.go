package variant

import "vitrin/models"

// MatchVariant finds the variant record matching the current selection, or
// nil when nothing matches. Callers must fall back to product-level
// price/sku on nil; a price can exist without a matching record because
// primary values carry their own prices.
func MatchVariant(p *models.Product, sel models.SelectedAttributes) *models.Variant {
	for i := range p.Variants {
		if variantMatches(p, &p.Variants[i], sel) {
			return &p.Variants[i]
		}
	}
	return nil
}

// AvailableVariants returns every variant consistent with the selection,
// used to narrow the remaining choices.
func AvailableVariants(p *models.Product, sel models.SelectedAttributes) []models.Variant {
	var out []models.Variant
	for i := range p.Variants {
		if variantMatches(p, &p.Variants[i], sel) {
			out = append(out, p.Variants[i])
		}
	}
	return out
}

func variantMatches(p *models.Product, v *models.Variant, sel models.SelectedAttributes) bool {
	scheme := Scheme(p)
	cfg := p.VariantConfig

	switch scheme {
	case models.SchemeMultiDependent:
		if v.StockQuantity != nil && int(*v.StockQuantity) <= 0 {
			return false
		}
		for name, picked := range sel {
			if !IsAttributeName(name) || len(picked) == 0 {
				continue
			}
			if !picked.Contains(v.Attributes[name]) {
				return false
			}
		}
		return true

	case models.SchemePrimaryDependent:
		return matchWithPrimary(p, v, sel, cfg.PrimaryAttribute)

	default: // simple
		if cfg != nil && cfg.PrimaryAttribute != "" {
			return matchWithPrimary(p, v, sel, cfg.PrimaryAttribute)
		}
		for name, picked := range sel {
			if !IsAttributeName(name) || len(picked) == 0 {
				continue
			}
			if !attributeSatisfied(v, name, picked) {
				return false
			}
		}
		return true
	}
}

// matchWithPrimary: the primary value carries the price, not the variant, so
// any variant whose primaryValues holds the picked value matches; secondary
// selections only filter further.
func matchWithPrimary(p *models.Product, v *models.Variant, sel models.SelectedAttributes, primary string) bool {
	picked := sel[primary]
	if len(picked) > 0 {
		found := false
		for _, pv := range v.PrimaryValues {
			if picked.Contains(pv.Value) {
				found = true
				break
			}
		}
		if !found && !attributeSatisfied(v, primary, picked) {
			return false
		}
	}
	for name, vals := range sel {
		if name == primary || !IsAttributeName(name) || len(vals) == 0 {
			continue
		}
		if !attributeSatisfied(v, name, vals) {
			return false
		}
	}
	return true
}

// attributeSatisfied: some selected value equals attributes[name] or is
// contained in multiValues[name].
func attributeSatisfied(v *models.Variant, name string, picked models.AttrValue) bool {
	if val := v.Attributes[name]; val != "" && picked.Contains(val) {
		return true
	}
	for _, val := range v.MultiValues[name] {
		if picked.Contains(val) {
			return true
		}
	}
	return false
}

// Combination is one concrete attribute-value assignment produced by
// fanning a multi-valued selection out into its cartesian product.
type Combination map[string]string

// Combinations expands the selected primary-attribute values of a
// multi-dependent product into the cartesian product of single-value
// assignments. Each combination becomes its own cart line. For other
// schemes it returns at most one combination holding the primary pick.
func Combinations(p *models.Product, sel models.SelectedAttributes) []Combination {
	cfg := p.VariantConfig
	if cfg == nil {
		return nil
	}

	if Scheme(p) != models.SchemeMultiDependent {
		if cfg.PrimaryAttribute == "" {
			return nil
		}
		picked := sel[cfg.PrimaryAttribute]
		if len(picked) == 0 {
			return nil
		}
		return []Combination{{cfg.PrimaryAttribute: picked[0]}}
	}

	combos := []Combination{{}}
	for _, name := range cfg.PrimaryAttributes {
		picked := sel[name]
		if len(picked) == 0 {
			continue
		}
		next := make([]Combination, 0, len(combos)*len(picked))
		for _, combo := range combos {
			for _, val := range picked {
				grown := make(Combination, len(combo)+1)
				for k, v := range combo {
					grown[k] = v
				}
				grown[name] = val
				next = append(next, grown)
			}
		}
		combos = next
	}
	if len(combos) == 1 && len(combos[0]) == 0 {
		return nil
	}
	return combos
}
