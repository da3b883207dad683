// Package render turns a solved reaction into its printed chemical
// equation text, including the substitution footnote and the additive-ion
// annotation.
// coding=utf-8
// @Project : reaction-balancer
// @File    : render.go
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cx-luo/reaction-balancer/material"
	"github.com/cx-luo/reaction-balancer/periodictable"
)

// Reaction is the solved equation as two formula -> printed-amount maps,
// the same shape reaction.Result produces.
type Reaction struct {
	LHS map[string]string
	RHS map[string]string
}

// OmitIons is the set of elements {O, H, N} that an additive-ion scan may
// exclude. No function in this package applies it: findIons matches every
// element symbol, O, H and N included (see DESIGN.md).
var OmitIons = map[string]struct{}{"O": {}, "H": {}, "N": {}}

var ionRegex = buildIonRegex()

func buildIonRegex() *regexp.Regexp {
	symbols := periodictable.SymbolsByMatchPriority()
	escaped := make([]string, len(symbols))
	for i, s := range symbols {
		escaped[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(strings.Join(escaped, "|"))
}

// Render formats r as "lhs == rhs", with the target formula pinned first
// on the RHS, an optional substitution footnote, and an optional additive
// annotation. SPEC_FULL.md §4.G.
func Render(targetFormula string, r Reaction, substitution map[string]string, additives []string, precursors []*material.MaterialInfo) string {
	lhs := formatSide(r.LHS, nil)
	rhs := formatSide(r.RHS, &targetFormula)

	var b strings.Builder
	b.WriteString(strings.Join(lhs, " + "))
	b.WriteString(" == ")
	b.WriteString(strings.Join(rhs, " + "))

	if len(substitution) > 0 {
		keys := make([]string, 0, len(substitution))
		for k := range substitution {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s = %s", k, substitution[k])
		}
		b.WriteString("; ")
		b.WriteString(strings.Join(parts, ", "))
	}

	if len(additives) > 0 {
		if annotation, ok := additiveAnnotation(targetFormula, additives, precursors); ok {
			b.WriteString(annotation)
		}
	}

	return b.String()
}

func formatSide(side map[string]string, pinFirst *string) []string {
	formulas := make([]string, 0, len(side))
	for f := range side {
		formulas = append(formulas, f)
	}
	sort.Strings(formulas)

	if pinFirst != nil {
		for i, f := range formulas {
			if f == *pinFirst {
				formulas = append(formulas[:i], formulas[i+1:]...)
				formulas = append([]string{f}, formulas...)
				break
			}
		}
	}

	out := make([]string, len(formulas))
	for i, f := range formulas {
		out[i] = fmt.Sprintf("%s %s", side[f], f)
	}
	return out
}

// findIons returns the set of element symbols appearing anywhere in
// additives, matched greedily by symbol length so e.g. "Cl" is tried
// before "C".
func findIons(additives []string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, a := range additives {
		for _, m := range ionRegex.FindAllString(a, -1) {
			out[m] = struct{}{}
		}
	}
	return out
}

func additiveAnnotation(targetFormula string, additives []string, precursors []*material.MaterialInfo) (string, bool) {
	ions := findIons(additives)
	if len(ions) == 0 {
		return "", false
	}

	var sharing []string
	for _, p := range precursors {
		for el := range p.AllElements() {
			if _, ok := ions[el]; ok {
				sharing = append(sharing, p.MaterialFormula)
				break
			}
		}
	}
	if len(sharing) == 0 {
		return "", false
	}
	sort.Strings(sharing)

	additiveList := append([]string{}, additives...)
	sort.Strings(additiveList)

	return fmt.Sprintf(" ; target %s with additives %s via %s",
		targetFormula, strings.Join(additiveList, ", "), strings.Join(sharing, ", ")), true
}
