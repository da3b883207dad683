package expr

import "math/big"

// Solution is the result of solving a rational linear system A*v = b where
// b may carry symbolic (affine-in-x) entries.
type Solution struct {
	// Values holds the resolved value of each variable, aligned to the
	// matrix's columns. Populated only when Consistent && FreeParams == 0.
	Values []*Expr
	// FreeParams is the number of columns the elimination could not pin to
	// a pivot row -- an underdetermined system.
	FreeParams int
	// Consistent is false when a fully-eliminated row has a zero
	// coefficient vector but a non-zero (symbolically, not just
	// numerically) right-hand side.
	Consistent bool
}

// GaussJordanSolve solves a*v = b by reduced-row-echelon elimination.
//
// a's entries are plain rationals: SPEC_FULL.md §4.D's coefficient matrix
// columns come from literal element-count vectors (precursor compositions,
// decomposition/exchange stoichiometries) which are never themselves
// parametric in any input this module accepts from the corpus. b, the
// target vector, is the one place a free symbol (e.g. "1-x") can appear,
// and it is carried through every row operation symbolically.
func GaussJordanSolve(a [][]*big.Rat, b []*Expr) Solution {
	rows := len(a)
	if rows == 0 {
		return Solution{Consistent: true}
	}
	cols := len(a[0])

	// Work on a mutable copy.
	m := make([][]*big.Rat, rows)
	for i := range a {
		m[i] = make([]*big.Rat, cols)
		for j := range a[i] {
			m[i][j] = new(big.Rat).Set(a[i][j])
		}
	}
	rhs := make([]*Expr, rows)
	for i := range b {
		rhs[i] = b[i].Clone()
	}

	pivotRowForCol := make([]int, cols)
	for j := range pivotRowForCol {
		pivotRowForCol[j] = -1
	}

	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if m[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue // no pivot in this column: it's a free parameter
		}

		m[pivotRow], m[sel] = m[sel], m[pivotRow]
		rhs[pivotRow], rhs[sel] = rhs[sel], rhs[pivotRow]

		pivot := m[pivotRow][col]
		inv := new(big.Rat).Inv(pivot)
		for j := 0; j < cols; j++ {
			m[pivotRow][j].Mul(m[pivotRow][j], inv)
		}
		rhs[pivotRow] = rhs[pivotRow].MulRat(inv)

		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := new(big.Rat).Set(m[r][col])
			if factor.Sign() == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				tmp := new(big.Rat).Mul(factor, m[pivotRow][j])
				m[r][j].Sub(m[r][j], tmp)
			}
			rhs[r] = rhs[r].Sub(rhs[pivotRow].MulRat(factor))
		}

		pivotRowForCol[col] = pivotRow
		pivotRow++
	}

	rank := pivotRow
	for r := rank; r < rows; r++ {
		if !rhs[r].IsZero() {
			return Solution{Consistent: false}
		}
	}

	free := cols - rank
	if free > 0 {
		return Solution{Consistent: true, FreeParams: free}
	}

	values := make([]*Expr, cols)
	for col := 0; col < cols; col++ {
		r := pivotRowForCol[col]
		values[col] = rhs[r]
	}
	return Solution{Consistent: true, FreeParams: 0, Values: values}
}
