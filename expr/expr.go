// Package expr implements a small symbolic rational-polynomial engine: free
// symbols (x, y, ...) with rational coefficients, exact arithmetic over
// math/big.Rat, and a pretty-printer matching the balancer's expected
// surface syntax. It is the from-scratch substitute for a CAS noted in
// SPEC_FULL.md -- no example repo in the retrieval pack links one.
// coding=utf-8
// @Project : reaction-balancer
// @File    : expr.go
package expr

import (
	"math/big"
	"sort"
	"strings"
)

// monomial is a sorted list of (symbol, exponent) pairs. An empty monomial
// represents the constant 1.
type monomial []symPow

type symPow struct {
	Symbol string
	Exp    int
}

func (m monomial) key() string {
	if len(m) == 0 {
		return ""
	}
	parts := make([]string, len(m))
	for i, sp := range m {
		parts[i] = sp.Symbol + "^" + itoa(sp.Exp)
	}
	return strings.Join(parts, "*")
}

// Expr is a sum of monomials, each carrying an exact rational coefficient.
// The zero value is the constant 0.
type Expr struct {
	terms map[string]*term
}

type term struct {
	coeff *big.Rat
	mono  monomial
}

func newExpr() *Expr {
	return &Expr{terms: make(map[string]*term)}
}

// Zero returns the constant zero expression.
func Zero() *Expr { return newExpr() }

// Constant returns an expression equal to the given rational constant.
func Constant(r *big.Rat) *Expr {
	e := newExpr()
	e.addTerm(new(big.Rat).Set(r), nil)
	return e
}

// ConstantInt returns an expression equal to the given integer constant.
func ConstantInt(n int64) *Expr {
	return Constant(big.NewRat(n, 1))
}

// Symbol returns an expression equal to a single free symbol raised to the
// first power, e.g. Symbol("x") == x.
func Symbol(name string) *Expr {
	e := newExpr()
	e.addTerm(big.NewRat(1, 1), monomial{{Symbol: name, Exp: 1}})
	return e
}

func (e *Expr) addTerm(coeff *big.Rat, mono monomial) {
	key := monomial(mono).key()
	if existing, ok := e.terms[key]; ok {
		existing.coeff.Add(existing.coeff, coeff)
		if existing.coeff.Sign() == 0 {
			delete(e.terms, key)
		}
		return
	}
	if coeff.Sign() == 0 {
		return
	}
	e.terms[key] = &term{coeff: coeff, mono: mono}
}

// Clone returns a deep copy of e.
func (e *Expr) Clone() *Expr {
	out := newExpr()
	for k, t := range e.terms {
		out.terms[k] = &term{coeff: new(big.Rat).Set(t.coeff), mono: t.mono}
	}
	return out
}

// Add returns e + other.
func (e *Expr) Add(other *Expr) *Expr {
	out := e.Clone()
	for _, t := range other.terms {
		out.addTerm(new(big.Rat).Set(t.coeff), t.mono)
	}
	return out
}

// Sub returns e - other.
func (e *Expr) Sub(other *Expr) *Expr {
	return e.Add(other.Neg())
}

// Neg returns -e.
func (e *Expr) Neg() *Expr {
	out := newExpr()
	for _, t := range e.terms {
		c := new(big.Rat).Neg(t.coeff)
		out.terms[monomial(t.mono).key()] = &term{coeff: c, mono: t.mono}
	}
	return out
}

// Mul returns e * other, fully expanded.
func (e *Expr) Mul(other *Expr) *Expr {
	out := newExpr()
	for _, ta := range e.terms {
		for _, tb := range other.terms {
			coeff := new(big.Rat).Mul(ta.coeff, tb.coeff)
			out.addTerm(coeff, mulMonomial(ta.mono, tb.mono))
		}
	}
	return out
}

// MulRat returns e * r, a scalar rational multiply.
func (e *Expr) MulRat(r *big.Rat) *Expr {
	if r.Sign() == 0 {
		return Zero()
	}
	out := newExpr()
	for k, t := range e.terms {
		out.terms[k] = &term{coeff: new(big.Rat).Mul(t.coeff, r), mono: t.mono}
	}
	return out
}

// QuoRat returns e / r for a nonzero rational constant r.
func (e *Expr) QuoRat(r *big.Rat) *Expr {
	inv := new(big.Rat).Inv(r)
	return e.MulRat(inv)
}

func mulMonomial(a, b monomial) monomial {
	exps := make(map[string]int, len(a)+len(b))
	order := make([]string, 0, len(a)+len(b))
	for _, sp := range a {
		if _, ok := exps[sp.Symbol]; !ok {
			order = append(order, sp.Symbol)
		}
		exps[sp.Symbol] += sp.Exp
	}
	for _, sp := range b {
		if _, ok := exps[sp.Symbol]; !ok {
			order = append(order, sp.Symbol)
		}
		exps[sp.Symbol] += sp.Exp
	}
	sort.Strings(order)
	out := make(monomial, 0, len(order))
	for _, s := range order {
		if exps[s] != 0 {
			out = append(out, symPow{Symbol: s, Exp: exps[s]})
		}
	}
	return out
}

// IsZero reports whether e simplifies to the zero polynomial.
func (e *Expr) IsZero() bool {
	return len(e.terms) == 0
}

// IsConstant reports whether e has no free-symbol terms.
func (e *Expr) IsConstant() bool {
	for _, t := range e.terms {
		if len(t.mono) > 0 {
			return false
		}
	}
	return true
}

// AsRat returns the constant value of e and true, or (nil, false) if e is
// not a constant.
func (e *Expr) AsRat() (*big.Rat, bool) {
	if !e.IsConstant() {
		return nil, false
	}
	for _, t := range e.terms {
		return new(big.Rat).Set(t.coeff), true
	}
	return new(big.Rat), true
}

// FreeSymbols returns the set of free symbol names appearing in e.
func (e *Expr) FreeSymbols() []string {
	seen := map[string]struct{}{}
	for _, t := range e.terms {
		for _, sp := range t.mono {
			seen[sp.Symbol] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// EvalAt substitutes every free symbol with probe and returns the resulting
// rational value.
func (e *Expr) EvalAt(probe *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for _, t := range e.terms {
		v := new(big.Rat).Set(t.coeff)
		for _, sp := range t.mono {
			p := ratPow(probe, sp.Exp)
			v.Mul(v, p)
		}
		acc.Add(acc, v)
	}
	return acc
}

// SignAt reports the sign (-1, 0, +1) of e when every free symbol is set to
// probe. This is the balancer's side-placement heuristic (SPEC_FULL §4.D):
// a parametric amount's sign cannot always be decided symbolically, so it
// is probed at a small positive value instead.
func (e *Expr) SignAt(probe *big.Rat) int {
	return e.EvalAt(probe).Sign()
}

func ratPow(r *big.Rat, n int) *big.Rat {
	if n == 0 {
		return big.NewRat(1, 1)
	}
	out := new(big.Rat).Set(r)
	neg := n < 0
	if neg {
		n = -n
	}
	acc := big.NewRat(1, 1)
	for i := 0; i < n; i++ {
		acc.Mul(acc, out)
	}
	if neg {
		acc.Inv(acc)
	}
	return acc
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
