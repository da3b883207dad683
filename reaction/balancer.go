// Package reaction implements the stoichiometry balancer: given candidate
// precursor materials and a target material, it selects unknowns for
// precursor/decomposition/exchange species, builds the element-
// conservation linear system, and solves it in exact rational symbolic
// arithmetic.
// coding=utf-8
// @Project : reaction-balancer
// @File    : balancer.go
package reaction

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/cx-luo/reaction-balancer/expr"
	"github.com/cx-luo/reaction-balancer/internal/config"
	"github.com/cx-luo/reaction-balancer/material"
)

// Result is the solved, zero-suppressed reaction: formula -> printed
// amount string, one map per side. The target is always present on RHS
// with amount "1".
type Result struct {
	LHS map[string]string
	RHS map[string]string
}

type varKind int

const (
	kindPrecursor varKind = iota
	kindDecomposition
	kindExchange
)

type variable struct {
	label  string
	kind   varKind
	vector map[string]*big.Rat
}

// Balance solves the element-conservation system for target given
// precursors, applying the preconditions and side-assignment rules of
// SPEC_FULL.md §4.D. cfg may be nil, in which case config.Defaults() is
// used.
func Balance(precursors []*material.MaterialInfo, target *material.MaterialInfo, cfg *config.Tuning) (*Result, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}

	targetFormula := target.MaterialFormula

	if len(target.NVElements()) < cfg.TargetMinNV {
		return nil, &StupidRecipeError{Target: targetFormula, Reason: "target has too few non-volatile elements"}
	}
	for _, p := range precursors {
		if p.SameElementQuantities(target) {
			return nil, &StupidRecipeError{Target: targetFormula, Reason: fmt.Sprintf("precursor %q has the same composition as the target", p.MaterialFormula)}
		}
	}

	surviving := screenExcessive(precursors, target)
	if len(surviving) == 0 {
		return nil, &StupidRecipeError{Target: targetFormula, Reason: "no candidate precursors survive the excessive-elements filter"}
	}
	if !coversNonVolatile(surviving, target) {
		return nil, &StupidRecipeError{Target: targetFormula, Reason: "surviving precursors do not cover every non-volatile element of the target"}
	}

	vars, err := buildVariables(surviving, target)
	if err != nil {
		return nil, &StupidRecipeError{Target: targetFormula, Reason: err.Error()}
	}

	elements := unionElements(vars, target)

	a := make([][]*big.Rat, len(elements))
	for i, el := range elements {
		row := make([]*big.Rat, len(vars))
		for j, v := range vars {
			if c, ok := v.vector[el]; ok {
				row[j] = c
			} else {
				row[j] = big.NewRat(0, 1)
			}
		}
		a[i] = row
	}

	targetDict := target.AllElementsDict()
	b := make([]*expr.Expr, len(elements))
	for i, el := range elements {
		if v, ok := targetDict[el]; ok {
			b[i] = v
		} else {
			b[i] = expr.Zero()
		}
	}

	sol := expr.GaussJordanSolve(a, b)
	if !sol.Consistent {
		return nil, &CannotBalanceError{Target: targetFormula, Cause: &TooFewPrecursorsError{
			Target: targetFormula, Have: countKind(vars, kindPrecursor), Need: len(target.NVElements()),
		}}
	}
	if sol.FreeParams > 0 {
		names := make([]string, 0, len(vars))
		for _, v := range vars {
			if v.kind == kindPrecursor {
				names = append(names, v.label)
			}
		}
		return nil, &CannotBalanceError{Target: targetFormula, Cause: &TooManyPrecursorsError{
			Target: targetFormula, Have: countKind(vars, kindPrecursor), Need: len(target.NVElements()), Candidates: names,
		}}
	}

	result := &Result{
		LHS: map[string]string{},
		RHS: map[string]string{targetFormula: "1"},
	}
	for j, v := range vars {
		value := sol.Values[j]
		if value.IsZero() {
			continue
		}
		text, side := placeOnSide(v.kind, value, cfg.ProbeValue)
		switch side {
		case sideLeft:
			result.LHS[v.label] = text
		case sideRight:
			result.RHS[v.label] = text
		}
	}

	return result, nil
}

type side int

const (
	sideLeft side = iota
	sideRight
)

// placeOnSide decides which side of the equation a solved variable's
// value is printed on, per the fl/dl/dr rules of SPEC_FULL.md §4.D.
func placeOnSide(kind varKind, value *expr.Expr, probe *big.Rat) (string, side) {
	switch kind {
	case kindPrecursor:
		return expr.Print(value), sideLeft
	case kindExchange:
		if value.SignAt(probe) < 0 {
			return expr.Print(value.Neg()), sideRight
		}
		return expr.Print(value), sideLeft
	case kindDecomposition:
		if value.SignAt(probe) < 0 {
			return expr.Print(value.Neg()), sideLeft
		}
		return expr.Print(value), sideRight
	default:
		return expr.Print(value), sideRight
	}
}

func countKind(vars []variable, kind varKind) int {
	n := 0
	for _, v := range vars {
		if v.kind == kind {
			n++
		}
	}
	return n
}

// screenExcessive drops precursors that are empty, whose non-volatile
// elements are not a subset of the target's, or that duplicate an
// earlier survivor's formula.
func screenExcessive(precursors []*material.MaterialInfo, target *material.MaterialInfo) []*material.MaterialInfo {
	targetNV := target.NVElements()
	seen := map[string]struct{}{}
	out := make([]*material.MaterialInfo, 0, len(precursors))
	for _, p := range precursors {
		if len(p.AllElements()) == 0 {
			continue
		}
		if _, dup := seen[p.MaterialFormula]; dup {
			continue
		}
		isSubset := true
		for el := range p.NVElements() {
			if _, ok := targetNV[el]; !ok {
				isSubset = false
				break
			}
		}
		if !isSubset {
			continue
		}
		seen[p.MaterialFormula] = struct{}{}
		out = append(out, p)
	}
	return out
}

func coversNonVolatile(precursors []*material.MaterialInfo, target *material.MaterialInfo) bool {
	union := map[string]struct{}{}
	for _, p := range precursors {
		for el := range p.NVElements() {
			union[el] = struct{}{}
		}
	}
	for el := range target.NVElements() {
		if _, ok := union[el]; !ok {
			return false
		}
	}
	return true
}

// buildVariables lays out one unknown per surviving precursor, one per
// distinct decomposition species aggregated across all of them, and one
// per exchange species offered by the target -- in that order, matching
// the p/r/e unknown layout of SPEC_FULL.md §4.D.
func buildVariables(precursors []*material.MaterialInfo, target *material.MaterialInfo) ([]variable, error) {
	vars := make([]variable, 0, len(precursors)+4)

	for _, p := range precursors {
		vec, err := ratVector(p.AllElementsDict())
		if err != nil {
			return nil, fmt.Errorf("precursor %s: %w", p.MaterialFormula, err)
		}
		vars = append(vars, variable{label: p.MaterialFormula, kind: kindPrecursor, vector: vec})
	}

	decomp := map[string]map[string]int64{}
	for _, p := range precursors {
		for formula, vec := range p.DecomposeChemicals() {
			decomp[formula] = vec
		}
	}
	for _, formula := range sortedKeys(decomp) {
		// Decomposition species sit on the target's side of the equation
		// by default (dr), so their column enters the A*v=b system negated:
		// solving p*precursor + e*exchange - r*decomposition = target.
		vars = append(vars, variable{label: formula, kind: kindDecomposition, vector: negateVector(intVector(decomp[formula]))})
	}

	exch := target.ExchangeChemicals()
	for _, formula := range sortedKeys(exch) {
		vars = append(vars, variable{label: formula, kind: kindExchange, vector: intVector(exch[formula])})
	}

	return vars, nil
}

func sortedKeys(m map[string]map[string]int64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func ratVector(m map[string]*expr.Expr) (map[string]*big.Rat, error) {
	out := make(map[string]*big.Rat, len(m))
	for el, e := range m {
		c, ok := e.AsRat()
		if !ok {
			return nil, fmt.Errorf("element %s has a non-constant amount", el)
		}
		out[el] = c
	}
	return out, nil
}

func intVector(m map[string]int64) map[string]*big.Rat {
	out := make(map[string]*big.Rat, len(m))
	for el, n := range m {
		out[el] = big.NewRat(n, 1)
	}
	return out
}

func negateVector(m map[string]*big.Rat) map[string]*big.Rat {
	out := make(map[string]*big.Rat, len(m))
	for el, r := range m {
		out[el] = new(big.Rat).Neg(r)
	}
	return out
}

func unionElements(vars []variable, target *material.MaterialInfo) []string {
	seen := map[string]struct{}{}
	for _, v := range vars {
		for el := range v.vector {
			seen[el] = struct{}{}
		}
	}
	for el := range target.AllElementsDict() {
		seen[el] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for el := range seen {
		out = append(out, el)
	}
	sort.Strings(out)
	return out
}
