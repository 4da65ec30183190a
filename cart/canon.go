// Package cart owns cart identity, line merging, and the REST surface for
// guest and authenticated carts.
package cart

import (
	"sort"
	"strings"

	"vitrin/models"
)

// CanonicalVariantID builds the stable identity of an attribute
// combination. Attribute names are sorted, multi-values are sorted and
// comma-joined, pairs render as name:value joined with "-" under a
// "combination-" prefix. Two selections of the same attribute set made in a
// different order collapse to the same id and therefore the same cart line.
// Without attributes the identity is the supplied variant id, or "default".
func CanonicalVariantID(variantID string, attrs models.SelectedAttributes) string {
	if len(attrs) == 0 {
		if variantID != "" {
			return variantID
		}
		return "default"
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+":"+canonicalValue(attrs[name]))
	}
	return "combination-" + strings.Join(parts, "-")
}

func canonicalValue(v models.AttrValue) string {
	if len(v) == 1 {
		return v[0]
	}
	sorted := append([]string(nil), v...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// AttributesEqual compares two attribute maps treating multi-values as
// sorted sets. It backs up the canonical id when merging lines written by
// older clients whose ids were computed differently.
func AttributesEqual(a, b models.SelectedAttributes) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok {
			return false
		}
		if canonicalValue(av) != canonicalValue(bv) {
			return false
		}
	}
	return true
}
