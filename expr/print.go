package expr

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// FloatRound is the number of decimal places amounts are rounded to before
// printing, matching the upstream formatter's FLOAT_ROUND = 3.
const FloatRound = 3

// Print renders e using the balancer's expected surface syntax: "1-x",
// "0.5*x", "-3". Because Expr is always kept in expanded
// sum-of-monomials form (Mul distributes eagerly), no monomial ever
// contains an unexpanded sum, and this implementation never emits
// parentheses.
func Print(e *Expr) string {
	if e.IsZero() {
		return "0"
	}

	type printed struct {
		key  string
		text string
	}
	items := make([]printed, 0, len(e.terms))
	for key, t := range e.terms {
		items = append(items, printed{key: key, text: printTerm(t)})
	}
	sort.Slice(items, func(i, j int) bool {
		// Constant term first, then monomials in alphabetical key order.
		ci, cj := items[i].key == "", items[j].key == ""
		if ci != cj {
			return ci
		}
		return items[i].key < items[j].key
	})

	var b strings.Builder
	for _, it := range items {
		if it.text == "" {
			continue
		}
		if b.Len() == 0 || strings.HasPrefix(it.text, "-") {
			b.WriteString(it.text)
		} else {
			b.WriteByte('+')
			b.WriteString(it.text)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func printTerm(t *term) string {
	if t.coeff.Sign() == 0 {
		return ""
	}

	abs := new(big.Rat).Abs(t.coeff)
	sign := ""
	if t.coeff.Sign() < 0 {
		sign = "-"
	}

	monoStr := printMonomial(t.mono)
	coeffStr := formatRat(abs)

	switch {
	case len(t.mono) == 0:
		return sign + coeffStr
	case coeffStr == "1":
		return sign + monoStr
	default:
		return sign + coeffStr + "*" + monoStr
	}
}

func printMonomial(m monomial) string {
	parts := make([]string, len(m))
	for i, sp := range m {
		if sp.Exp == 1 {
			parts[i] = sp.Symbol
		} else {
			parts[i] = sp.Symbol + "^" + strconv.Itoa(sp.Exp)
		}
	}
	return strings.Join(parts, "*")
}

// formatRat prints a non-negative rational constant, rounding to
// FloatRound decimal places and stripping trailing zeros, matching
// nicely_print_float in the upstream formatter.
func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(FloatRound), nil)
	scaled := new(big.Rat).Mul(r, new(big.Rat).SetInt(scale))

	num := scaled.Num() // non-negative: r is always passed in as an absolute value
	den := scaled.Denom()

	q := new(big.Int)
	rem := new(big.Int)
	q.QuoRem(num, den, rem)
	if new(big.Int).Lsh(rem, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1)) // round half away from zero
	}

	intPart := new(big.Int)
	fracPart := new(big.Int)
	intPart.QuoRem(q, scale, fracPart)

	fracStr := fracPart.String()
	for len(fracStr) < FloatRound {
		fracStr = "0" + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")

	out := intPart.String()
	if fracStr != "" {
		out += "." + fracStr
	}
	return out
}
