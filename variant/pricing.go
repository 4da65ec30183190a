package variant

import (
	"sort"
	"strings"

	"vitrin/models"
)

// UnitPrice derives the unit price for the current selection. Under a
// single primary attribute, the picked primary value's own price wins no
// matter which variant record holds it; the matched variant's price and
// finally the product base price are the fallbacks.
func UnitPrice(p *models.Product, sel models.SelectedAttributes) float64 {
	scheme := Scheme(p)
	cfg := p.VariantConfig

	if cfg != nil && cfg.PrimaryAttribute != "" &&
		(scheme == models.SchemePrimaryDependent || scheme == models.SchemeSimple) {
		if picked := sel[cfg.PrimaryAttribute]; len(picked) > 0 {
			if price, ok := primaryValuePrice(p, cfg.PrimaryAttribute, picked[0]); ok {
				return price
			}
			if v := MatchVariant(p, sel); v != nil && float64(v.Price) > 0 {
				return float64(v.Price)
			}
		}
	}
	return p.Price
}

// primaryValuePrice scans every variant's primaryValues for the attribute
// value and returns its price tier.
func primaryValuePrice(p *models.Product, name, value string) (float64, bool) {
	scheme := Scheme(p)
	for _, v := range p.Variants {
		for _, pv := range v.PrimaryValues {
			if !primaryValueMatches(scheme, name, pv) || pv.Value != value {
				continue
			}
			if float64(pv.Price) > 0 {
				return float64(pv.Price), true
			}
		}
	}
	return 0, false
}

// PriceForCombination prices one concrete combination: the sum of the
// matched price tier per attribute-value pair. Pairs without a tier
// contribute nothing; a combination with no priced pair at all falls back
// to the product base price.
func PriceForCombination(p *models.Product, combo Combination) float64 {
	total := 0.0
	matched := false
	for name, value := range combo {
		if price, ok := primaryValuePrice(p, name, value); ok {
			total += price
			matched = true
		}
	}
	if !matched {
		return p.Price
	}
	return total
}

// CombinationKey renders a combination for quantity-override lookup. Pairs
// follow the configured primary attribute order, not canonical cart
// identity order; cart dedup uses its own key.
func CombinationKey(p *models.Product, combo Combination) string {
	var names []string
	if cfg := p.VariantConfig; cfg != nil && len(cfg.PrimaryAttributes) > 0 {
		names = cfg.PrimaryAttributes
	} else {
		names = make([]string, 0, len(combo))
		for name := range combo {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	parts := make([]string, 0, len(combo))
	for _, name := range names {
		if value, ok := combo[name]; ok {
			parts = append(parts, name+":"+value)
		}
	}
	return strings.Join(parts, "|")
}

// PriceForSelection prices a single cart line. A multi-dependent line holds
// exactly one value per primary attribute, so its combination price applies;
// every other scheme goes through UnitPrice.
func PriceForSelection(p *models.Product, sel models.SelectedAttributes) float64 {
	if Scheme(p) == models.SchemeMultiDependent && p.VariantConfig != nil {
		combo := Combination{}
		for _, name := range p.VariantConfig.PrimaryAttributes {
			if picked := sel[name]; len(picked) > 0 {
				combo[name] = picked[0]
			}
		}
		if len(combo) > 0 {
			return PriceForCombination(p, combo)
		}
		return p.Price
	}
	return UnitPrice(p, sel)
}

// Totals aggregates item count and price across every selected combination.
// Each combination bills independently at its own quantity: the individual
// override when one was set for its key, the global quantity otherwise.
func Totals(p *models.Product, sel models.SelectedAttributes, quantity int, overrides map[string]int) (totalItems int, totalPrice float64) {
	if quantity < 1 {
		quantity = 1
	}

	combos := Combinations(p, sel)
	if Scheme(p) != models.SchemeMultiDependent || len(combos) == 0 {
		return quantity, UnitPrice(p, sel) * float64(quantity)
	}

	for _, combo := range combos {
		qty := quantity
		if q, ok := overrides[CombinationKey(p, combo)]; ok && q > 0 {
			qty = q
		}
		totalItems += qty
		totalPrice += PriceForCombination(p, combo) * float64(qty)
	}
	return totalItems, totalPrice
}
