// Package periodictable provides the finite set of valid chemical element
// symbols and the structural/volatile partition used by material and
// reaction.
// coding=utf-8
// @Project : reaction-balancer
// @File    : elements.go
package periodictable

// symbols lists every element symbol in atomic-number order, ported from the
// upstream molecule element table (atomic number, group and period data is
// not needed by this module and was dropped).
var symbols = []string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// nobleGases are never treated as structural elements.
var nobleGases = []string{"He", "Ne", "Ar", "Kr", "Xe", "Rn", "Og"}

// volatileExtra holds the "few others" the spec leaves unnamed beyond
// H, C, N, O and the noble gases. Halogens and sulfur are the common
// gas/solution-forming species (HF/HCl/HBr/HI, SO2) in solid-state
// synthesis byproducts, so they are classified as volatile here; see
// DESIGN.md for the reasoning (none of the worked scenarios exercise this
// choice either way).
var volatileExtra = []string{"F", "Cl", "Br", "I", "At", "Ts", "S"}

// Elements is the fixed, finite set of valid chemical element symbols.
var Elements = buildSet(symbols)

// NonVolatileElements is the subset of Elements treated as structural:
// their conservation drives stoichiometry. Everything else (H, C, N, O,
// noble gases, halogens, S) is assumed freely supplied or released as a
// gas and is not required to balance across every precursor.
var NonVolatileElements = buildNonVolatile()

func buildSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[s] = struct{}{}
	}
	return m
}

func buildNonVolatile() map[string]struct{} {
	volatile := buildSet(append(append([]string{"H", "C", "N", "O"}, nobleGases...), volatileExtra...))
	m := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, isVolatile := volatile[s]; !isVolatile {
			m[s] = struct{}{}
		}
	}
	return m
}

// IsElement reports whether symbol is a recognized chemical element.
func IsElement(symbol string) bool {
	_, ok := Elements[symbol]
	return ok
}

// IsNonVolatile reports whether symbol is classified as a non-volatile
// (structural) element.
func IsNonVolatile(symbol string) bool {
	_, ok := NonVolatileElements[symbol]
	return ok
}

// Symbols returns every recognized element symbol, in atomic-number order.
func Symbols() []string {
	out := make([]string, len(symbols))
	copy(out, symbols)
	return out
}

// SymbolsByMatchPriority returns every element symbol sorted so that longer
// symbols come first, and symbols of equal length are ordered alphabetically.
// Used to build a longest-match regular expression for ion scanning
// (render.findIons) so e.g. "Cl" is tried before "C".
func SymbolsByMatchPriority() []string {
	out := Symbols()
	// insertion sort is fine: len(out) == 118
	for i := 1; i < len(out); i++ {
		for j := i; j > 0; j-- {
			a, b := out[j-1], out[j]
			if len(a) < len(b) || (len(a) == len(b) && a > b) {
				out[j-1], out[j] = out[j], out[j-1]
			} else {
				break
			}
		}
	}
	return out
}
