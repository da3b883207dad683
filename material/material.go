// Package material builds the structured view of a chemical material used
// throughout the balancer: per-element molar quantities as symbolic
// expressions, the volatile/non-volatile partition, and the functional-
// group detection that feeds decomposition/exchange species inference.
// coding=utf-8
// @Project : reaction-balancer
// @File    : material.go
package material

import (
	"fmt"
	"strconv"

	"github.com/cx-luo/reaction-balancer/expr"
	"github.com/cx-luo/reaction-balancer/periodictable"
)

// Component is one entry of a material's composition: a molar fraction and
// the per-element amounts it contributes, exactly as supplied by the
// caller (before being scaled into the material's aggregate totals).
type Component struct {
	Fraction *expr.Expr
	Elements map[string]*expr.Expr
}

// RawComponent is the caller-facing composition record. Amount and the
// values of Elements accept string, float64, or int interchangeably --
// normalizing them to strings before parsing is the constructor's job, not
// the caller's (SPEC_FULL.md §4.C).
type RawComponent struct {
	Amount   interface{}
	Elements map[string]interface{}
}

// MaterialInfo is the immutable structured view of one material. Nothing
// on this type is mutated after New returns.
type MaterialInfo struct {
	MaterialString   string
	MaterialFormula  string
	Composition      []Component
	SubstitutionDict map[string]string

	nonVolatile map[string]*expr.Expr
	other       map[string]*expr.Expr
}

// New builds a MaterialInfo from a material string/formula pair, a raw
// composition, and an optional element substitution map (placeholder ->
// real element). It fails with *FormulaError if any amount cannot be
// parsed or any element -- after substitution -- is not a recognized
// chemical element.
func New(materialString, materialFormula string, rawComposition []RawComponent, substitution map[string]string) (*MaterialInfo, error) {
	sub := substitution
	if sub == nil {
		sub = map[string]string{}
	}

	m := &MaterialInfo{
		MaterialString:   materialString,
		MaterialFormula:  materialFormula,
		SubstitutionDict: sub,
		nonVolatile:      map[string]*expr.Expr{},
		other:            map[string]*expr.Expr{},
	}

	allSeen := map[string]struct{}{}
	substitutedKeys := map[string]struct{}{}

	for _, raw := range rawComposition {
		amountStr, err := numericToString(raw.Amount)
		if err != nil {
			return nil, &FormulaError{Material: materialFormula, Reason: "invalid component amount", Cause: err}
		}
		fraction, err := expr.Parse(amountStr)
		if err != nil {
			return nil, &FormulaError{Material: materialFormula, Reason: "cannot parse component molar fraction", Cause: err}
		}

		comp := Component{Fraction: fraction, Elements: map[string]*expr.Expr{}}

		for rawElement, rawAmount := range raw.Elements {
			allSeen[rawElement] = struct{}{}

			element := rawElement
			if mapped, ok := sub[rawElement]; ok {
				element = mapped
				substitutedKeys[rawElement] = struct{}{}
			}

			amountStr, err := numericToString(rawAmount)
			if err != nil {
				return nil, &FormulaError{Material: materialFormula, Reason: "invalid element amount", Cause: err}
			}
			amount, err := expr.Parse(amountStr)
			if err != nil {
				return nil, &FormulaError{Material: materialFormula, Reason: fmt.Sprintf("cannot parse element amount for %s", rawElement), Cause: err}
			}

			if !periodictable.IsElement(element) {
				return nil, &FormulaError{Material: materialFormula, Reason: fmt.Sprintf("%s is not a valid chemical element", element)}
			}

			comp.Elements[element] = addOrSet(comp.Elements[element], amount)

			contribution := fraction.Mul(amount)
			if periodictable.IsNonVolatile(element) {
				m.nonVolatile[element] = addOrSet(m.nonVolatile[element], contribution)
			} else {
				m.other[element] = addOrSet(m.other[element], contribution)
			}
		}

		m.Composition = append(m.Composition, comp)
	}

	for fromElement := range sub {
		if _, ok := allSeen[fromElement]; !ok {
			return nil, &FormulaError{Material: materialFormula, Reason: fmt.Sprintf("substitution key %s is not present in the composition", fromElement)}
		}
	}

	return m, nil
}

func addOrSet(existing *expr.Expr, amount *expr.Expr) *expr.Expr {
	if existing == nil {
		return amount
	}
	return existing.Add(amount)
}

func numericToString(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case nil:
		return "", fmt.Errorf("amount is nil")
	default:
		return fmt.Sprintf("%v", t), nil
	}
}

// NVElementsDict returns the aggregated non-volatile element quantities.
func (m *MaterialInfo) NVElementsDict() map[string]*expr.Expr { return m.nonVolatile }

// VElementsDict returns the aggregated volatile ("other") element
// quantities.
func (m *MaterialInfo) VElementsDict() map[string]*expr.Expr { return m.other }

// NVElements returns the set of non-volatile element symbols present.
func (m *MaterialInfo) NVElements() map[string]struct{} {
	return keySet(m.nonVolatile)
}

// VElements returns the set of volatile element symbols present.
func (m *MaterialInfo) VElements() map[string]struct{} {
	return keySet(m.other)
}

// AllElementsDict returns the union of non-volatile and volatile element
// quantities.
func (m *MaterialInfo) AllElementsDict() map[string]*expr.Expr {
	out := make(map[string]*expr.Expr, len(m.nonVolatile)+len(m.other))
	for k, v := range m.nonVolatile {
		out[k] = v
	}
	for k, v := range m.other {
		out[k] = v
	}
	return out
}

// AllElements returns the set of every element symbol present.
func (m *MaterialInfo) AllElements() map[string]struct{} {
	out := keySet(m.nonVolatile)
	for k := range m.other {
		out[k] = struct{}{}
	}
	return out
}

func keySet(m map[string]*expr.Expr) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}

// SameElementQuantities reports whether m and other have identical
// AllElementsDict maps (same elements, and every quantity simplifies to
// zero when subtracted). Used to reject "precursor list contains target"
// (SPEC_FULL.md §4.D).
func (m *MaterialInfo) SameElementQuantities(other *MaterialInfo) bool {
	a, b := m.AllElementsDict(), other.AllElementsDict()
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok {
			return false
		}
		if !va.Sub(vb).IsZero() {
			return false
		}
	}
	return true
}

func (m *MaterialInfo) String() string {
	return fmt.Sprintf("<MaterialInfo for %s>", m.MaterialFormula)
}
