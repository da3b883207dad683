package reaction

import "github.com/cx-luo/reaction-balancer/material"

// ExpandSubstitutions enumerates one MaterialInfo substitution map per
// combination of elementsVars values, restricted to placeholders that
// actually occur as an element key somewhere in composition. A target
// with no applicable placeholders yields exactly one variant: the empty
// substitution. SPEC_FULL.md §4.E.
func ExpandSubstitutions(elementsVars map[string][]string, composition []material.RawComponent) []map[string]string {
	present := map[string][]string{}
	for placeholder, values := range elementsVars {
		if occursInComposition(placeholder, composition) {
			present[placeholder] = values
		}
	}
	if len(present) == 0 {
		return []map[string]string{{}}
	}

	placeholders := make([]string, 0, len(present))
	for p := range present {
		placeholders = append(placeholders, p)
	}

	variants := []map[string]string{{}}
	for _, placeholder := range placeholders {
		values := present[placeholder]
		next := make([]map[string]string, 0, len(variants)*len(values))
		for _, base := range variants {
			for _, val := range values {
				variant := make(map[string]string, len(base)+1)
				for k, v := range base {
					variant[k] = v
				}
				variant[placeholder] = val
				next = append(next, variant)
			}
		}
		variants = next
	}
	return variants
}

func occursInComposition(placeholder string, composition []material.RawComponent) bool {
	for _, comp := range composition {
		if _, ok := comp.Elements[placeholder]; ok {
			return true
		}
	}
	return false
}
