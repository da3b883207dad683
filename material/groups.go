package material

import (
	"math/big"
	"strings"

	"github.com/cx-luo/reaction-balancer/expr"
	"github.com/cx-luo/reaction-balancer/periodictable"
)

// signature is a fixed stoichiometric ratio used for functional-group
// detection: {H: 2, O: 1} for water, etc.
type signature map[string]int64

var (
	waterSignature      = signature{"H": 2, "O": 1}
	hydroxideSignature  = signature{"O": 1, "H": 1}
	acetateSignature    = signature{"C": 2, "H": 3, "O": 2}
	nitrateSignature    = signature{"N": 1, "O": 3}
	carbonateSignature  = signature{"C": 1, "O": 3}
	ammoniumSignature   = signature{"N": 1, "H": 4}
)

// matchesSignature reports whether elements (after dropping non-volatile
// entries) has exactly the keys of sig and every pairwise ratio
// elements[k]/sig[k] evaluates to the same strictly positive constant.
// This is the one comparator every Has* flag below is built from
// (SPEC_FULL.md §4.C), so {H:4, O:2} matches water just as {H:2, O:1}
// does.
func matchesSignature(elements map[string]*expr.Expr, sig signature) bool {
	filtered := make(map[string]*expr.Expr, len(elements))
	for k, v := range elements {
		if periodictable.IsNonVolatile(k) {
			continue
		}
		filtered[k] = v
	}
	if len(filtered) != len(sig) {
		return false
	}

	var ratio *big.Rat
	for k, sigAmount := range sig {
		v, ok := filtered[k]
		if !ok {
			return false
		}
		c, ok := v.AsRat()
		if !ok {
			return false // symbolic component amounts can't be ratio-compared
		}
		r := new(big.Rat).Quo(c, big.NewRat(sigAmount, 1))
		if r.Sign() <= 0 {
			return false
		}
		if ratio == nil {
			ratio = r
		} else if ratio.Cmp(r) != 0 {
			return false
		}
	}
	return true
}

// HasWater reports whether any component's volatile sub-composition
// matches the H2O signature.
func (m *MaterialInfo) HasWater() bool { return m.hasSignature(waterSignature) }

// HasHydroxide reports whether any component's volatile sub-composition
// matches the OH signature.
func (m *MaterialInfo) HasHydroxide() bool { return m.hasSignature(hydroxideSignature) }

// HasAcetate reports whether any component's volatile sub-composition
// matches the CH3COO signature.
func (m *MaterialInfo) HasAcetate() bool { return m.hasSignature(acetateSignature) }

// HasNitrate reports whether any component's volatile sub-composition
// matches the NO3 signature.
func (m *MaterialInfo) HasNitrate() bool { return m.hasSignature(nitrateSignature) }

// HasCarbonate reports whether any component's volatile sub-composition
// matches the CO3 signature.
func (m *MaterialInfo) HasCarbonate() bool { return m.hasSignature(carbonateSignature) }

// HasAmmonium reports whether any component's volatile sub-composition
// matches the NH4 signature. Note this is unrelated to the NH3
// byproduct trigger in DecomposeChemicals, which is a formula-substring
// check preserved from the original for surface compatibility (§9).
func (m *MaterialInfo) HasAmmonium() bool { return m.hasSignature(ammoniumSignature) }

func (m *MaterialInfo) hasSignature(sig signature) bool {
	for _, comp := range m.Composition {
		if matchesSignature(comp.Elements, sig) {
			return true
		}
	}
	return false
}

// IsHCO reports whether the material's elements are exactly {C, H, O} --
// the "organic solvent" marker the precursor selector's first fallback
// drops.
func (m *MaterialInfo) IsHCO() bool {
	all := m.AllElements()
	if len(all) != 3 {
		return false
	}
	for _, want := range []string{"C", "H", "O"} {
		if _, ok := all[want]; !ok {
			return false
		}
	}
	return true
}

// electron is the synthetic element symbol carrying signed charge so
// ionic decomposition species participate in the element-conservation
// linear system (SPEC_FULL.md §3).
const electron = "e-"

// DecomposeChemicals returns the byproduct species this material may
// release during synthesis, each mapped to its fixed stoichiometric
// vector (including the synthetic electron-charge column for ions).
func (m *MaterialInfo) DecomposeChemicals() map[string]map[string]int64 {
	out := map[string]map[string]int64{}

	addSolutionSet := func() {
		out["[OH-]"] = map[string]int64{"O": 1, "H": 1, electron: 1}
		out["H2O"] = map[string]int64{"H": 2, "O": 1}
	}

	if m.HasWater() || m.HasHydroxide() {
		addSolutionSet()
	}
	if m.HasAcetate() {
		out["[CH3COO-]"] = map[string]int64{"C": 2, "H": 3, "O": 2, electron: 1}
		addSolutionSet()
	}
	if m.HasNitrate() {
		out["[NO3-]"] = map[string]int64{"N": 1, "O": 3, electron: 1}
		addSolutionSet()
	}
	if m.HasCarbonate() {
		out["CO2"] = map[string]int64{"C": 1, "O": 2}
	}
	// NH3 is triggered by the literal substring "NH4" in the formula, not
	// by composition -- a known quirk preserved from the original
	// (SPEC_FULL.md §9): material_string sentence matching needs the raw
	// formula text, and that same text is reused here instead of a
	// composition-based ammonium check.
	if strings.Contains(m.MaterialFormula, "NH4") {
		out["NH3"] = map[string]int64{"H": 3, "N": 1}
	}
	return out
}

// ExchangeChemicals returns the gas-phase oxidizer/reducer species this
// material may exchange with, keyed the same way as DecomposeChemicals.
// Only O2 is modeled (SPEC_FULL.md §3): any redox exchange during oxide
// synthesis can be represented, without loss of generality, by O2
// appearing with a positive coefficient on either side.
func (m *MaterialInfo) ExchangeChemicals() map[string]map[string]int64 {
	if _, ok := m.other["O"]; ok {
		return map[string]map[string]int64{"O2": {"O": 2}}
	}
	return map[string]map[string]int64{}
}
