package variant

import "vitrin/models"

// AttributeValues returns the deduplicated values available for one
// attribute, in discovery order across the product's variants.
func AttributeValues(p *models.Product, name string) []string {
	if !IsAttributeName(name) {
		return nil
	}
	scheme := Scheme(p)

	if isPrimary(p, name) {
		seen := make(map[string]bool)
		var values []string
		for _, v := range p.Variants {
			for _, pv := range v.PrimaryValues {
				if !primaryValueMatches(scheme, name, pv) {
					continue
				}
				if pv.Value == "" || seen[pv.Value] {
					continue
				}
				seen[pv.Value] = true
				values = append(values, pv.Value)
			}
		}
		if len(values) > 0 {
			return values
		}
		// no price tiers anywhere: degrade to the plain attribute values
		return plainValues(p, name)
	}

	// non-primary: multiValues union wins when any variant carries one
	seen := make(map[string]bool)
	var values []string
	for _, v := range p.Variants {
		for _, val := range v.MultiValues[name] {
			if val == "" || seen[val] {
				continue
			}
			seen[val] = true
			values = append(values, val)
		}
	}
	if len(values) > 0 {
		return values
	}
	return plainValues(p, name)
}

func plainValues(p *models.Product, name string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, v := range p.Variants {
		val := v.Attributes[name]
		if val == "" || seen[val] {
			continue
		}
		seen[val] = true
		values = append(values, val)
	}
	return values
}

// IsValueAvailable reports whether value is currently selectable for the
// attribute. step is the current multi-dependent selection step index; it is
// ignored for other schemes.
//
// A primary value is available when at least one variant exposes it with a
// positive quantity or no quantity at all; an explicit zero means sold out.
// Under multi-dependent, non-primary attributes past the current step are
// not selectable yet.
func IsValueAvailable(p *models.Product, name, value string, step int) bool {
	if !IsAttributeName(name) || value == "" {
		return false
	}
	scheme := Scheme(p)

	if isPrimary(p, name) {
		exposed := false
		for _, v := range p.Variants {
			for _, pv := range v.PrimaryValues {
				if !primaryValueMatches(scheme, name, pv) || pv.Value != value {
					continue
				}
				exposed = true
				if pv.Quantity == nil || int(*pv.Quantity) > 0 {
					return true
				}
			}
		}
		if exposed {
			return false
		}
		// no tier entries for this value; fall back to plain exposure
		for _, v := range p.Variants {
			if v.Attributes[name] == value {
				return true
			}
		}
		return false
	}

	if scheme == models.SchemeMultiDependent {
		for i, ordered := range OrderedAttributes(p) {
			if ordered == name {
				if i > step {
					return false
				}
				break
			}
		}
	}

	for _, v := range p.Variants {
		if v.Attributes[name] == value {
			return true
		}
		for _, val := range v.MultiValues[name] {
			if val == value {
				return true
			}
		}
	}
	return false
}
