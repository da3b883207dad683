package reaction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/cx-luo/reaction-balancer/internal/config"
	"github.com/cx-luo/reaction-balancer/material"
)

// DropOrganics returns precursors with the HCO-only ("organic solvent")
// materials removed -- the selector's second-stage fallback, tried after
// the full candidate list raises TooFewPrecursors (SPEC_FULL.md §4.F).
func DropOrganics(precursors []*material.MaterialInfo) []*material.MaterialInfo {
	out := make([]*material.MaterialInfo, 0, len(precursors))
	for _, p := range precursors {
		if p.IsHCO() {
			continue
		}
		out = append(out, p)
	}
	return out
}

var plainWord = regexp.MustCompile(`^[\w\s()]+$`)

// CandidateSubsets builds the sentence co-location candidate subsets tried
// when the full screened list raises TooManyPrecursors. For each
// sentence, in order, it emits (when non-empty and not already emitted):
// the formula-match subset, its edit-distance-filtered variant, the
// string-match subset, its edit-distance-filtered variant, and the
// word-material-deduplicated variant of their union -- matching the
// Python original's emission order (see DESIGN.md).
func CandidateSubsets(precursors []*material.MaterialInfo, sentences []string, cfg *config.Tuning) [][]*material.MaterialInfo {
	if cfg == nil {
		cfg = config.Defaults()
	}

	var out [][]*material.MaterialInfo
	seen := map[string]struct{}{}

	emit := func(subset []*material.MaterialInfo) {
		if len(subset) == 0 {
			return
		}
		key := subsetKey(subset)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, subset)
	}

	for _, sentence := range sentences {
		formulaMatches := filterPrecursors(precursors, func(p *material.MaterialInfo) bool {
			return p.MaterialFormula != "" && strings.Contains(sentence, p.MaterialFormula)
		})
		emit(formulaMatches)

		edFormula := filterByEditDistance(formulaMatches, cfg.EditDistanceRatio)
		emit(edFormula)

		stringMatches := filterPrecursors(precursors, func(p *material.MaterialInfo) bool {
			return p.MaterialString != "" && strings.Contains(sentence, p.MaterialString)
		})
		emit(stringMatches)

		edString := filterByEditDistance(stringMatches, cfg.EditDistanceRatio)
		emit(edString)

		emit(wordMaterialDedup(unionPrecursors(formulaMatches, stringMatches)))
	}

	return out
}

func filterPrecursors(precursors []*material.MaterialInfo, keep func(*material.MaterialInfo) bool) []*material.MaterialInfo {
	out := make([]*material.MaterialInfo, 0)
	for _, p := range precursors {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// filterByEditDistance keeps p iff the Levenshtein distance between its
// formula and its descriptive string is small relative to the string's
// length -- a loose check that the formula and description actually refer
// to the same material.
func filterByEditDistance(precursors []*material.MaterialInfo, ratio float64) []*material.MaterialInfo {
	return filterPrecursors(precursors, func(p *material.MaterialInfo) bool {
		if p.MaterialString == "" {
			return false
		}
		d := levenshtein.ComputeDistance(p.MaterialFormula, p.MaterialString)
		return float64(d) < ratio*float64(len([]rune(p.MaterialString)))
	})
}

func unionPrecursors(a, b []*material.MaterialInfo) []*material.MaterialInfo {
	seen := map[string]struct{}{}
	out := make([]*material.MaterialInfo, 0, len(a)+len(b))
	for _, p := range append(append([]*material.MaterialInfo{}, a...), b...) {
		if _, ok := seen[p.MaterialFormula]; ok {
			continue
		}
		seen[p.MaterialFormula] = struct{}{}
		out = append(out, p)
	}
	return out
}

// wordMaterialDedup groups precursors sharing the same set-of-elements
// signature and, within each group, prefers materials whose descriptive
// string is not a plain word (letters/digits/spaces/parens only); if no
// group member qualifies, the whole group is kept.
func wordMaterialDedup(precursors []*material.MaterialInfo) []*material.MaterialInfo {
	groups := map[string][]*material.MaterialInfo{}
	order := make([]string, 0)
	for _, p := range precursors {
		sig := elementSignature(p)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], p)
	}

	out := make([]*material.MaterialInfo, 0, len(precursors))
	for _, sig := range order {
		group := groups[sig]
		nonWord := filterPrecursors(group, func(p *material.MaterialInfo) bool {
			return !plainWord.MatchString(p.MaterialString)
		})
		if len(nonWord) > 0 {
			out = append(out, nonWord...)
		} else {
			out = append(out, group...)
		}
	}
	return out
}

func elementSignature(p *material.MaterialInfo) string {
	elements := make([]string, 0, len(p.AllElements()))
	for el := range p.AllElements() {
		elements = append(elements, el)
	}
	sort.Strings(elements)
	return strings.Join(elements, ",")
}

func subsetKey(subset []*material.MaterialInfo) string {
	formulas := make([]string, len(subset))
	for i, p := range subset {
		formulas[i] = p.MaterialFormula
	}
	sort.Strings(formulas)
	return strings.Join(formulas, "|")
}
