package variant

import "vitrin/models"

// Selection tracks step-by-step attribute picking. Step only matters for
// multi-dependent products, where the ordered attributes unlock one at a
// time.
type Selection struct {
	Attributes models.SelectedAttributes
	Step       int
}

func NewSelection() *Selection {
	return &Selection{Attributes: models.SelectedAttributes{}}
}

// Select records a value for an attribute. Single-primary attributes are
// single-select and replace; everything else toggles membership in a
// multi-select set. Picking a value for the attribute at the current step
// advances the step pointer unless it is already the last one. Edits to
// earlier attributes never move the pointer back and never clear later
// picks.
func (s *Selection) Select(p *models.Product, name, value string) {
	if s.Attributes == nil {
		s.Attributes = models.SelectedAttributes{}
	}
	scheme := Scheme(p)

	singleSelect := scheme != models.SchemeMultiDependent && isPrimary(p, name)
	if singleSelect {
		s.Attributes[name] = models.AttrValue{value}
	} else {
		current := s.Attributes[name]
		if current.Contains(value) {
			next := make(models.AttrValue, 0, len(current)-1)
			for _, v := range current {
				if v != value {
					next = append(next, v)
				}
			}
			if len(next) == 0 {
				delete(s.Attributes, name)
			} else {
				s.Attributes[name] = next
			}
		} else {
			s.Attributes[name] = append(append(models.AttrValue{}, current...), value)
		}
	}

	if scheme == models.SchemeMultiDependent {
		order := OrderedAttributes(p)
		if s.Step < len(order)-1 && order[s.Step] == name {
			s.Step++
		}
	}
}

// IsComplete reports whether the selection is sufficient to add to cart:
// every ordered attribute for multi-dependent, the primary attribute for
// primary-dependent, any attribute at all for simple.
func IsComplete(p *models.Product, sel models.SelectedAttributes) bool {
	switch Scheme(p) {
	case models.SchemeMultiDependent:
		order := OrderedAttributes(p)
		if len(order) == 0 {
			return false
		}
		for _, name := range order {
			if len(sel[name]) == 0 {
				return false
			}
		}
		return true
	case models.SchemePrimaryDependent:
		if p.VariantConfig == nil {
			return false
		}
		return len(sel[p.VariantConfig.PrimaryAttribute]) > 0
	default:
		for name, picked := range sel {
			if IsAttributeName(name) && len(picked) > 0 {
				return true
			}
		}
		return false
	}
}
