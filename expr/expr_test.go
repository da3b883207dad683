package expr_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cx-luo/reaction-balancer/expr"
)

func mustParse(t *testing.T, s string) *expr.Expr {
	t.Helper()
	e, err := expr.Parse(s)
	require.NoError(t, err)
	return e
}

func TestParseAndPrint(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.0", "1"},
		{"1", "1"},
		{"0", "0"},
		{"-3", "-3"},
		{"1-x", "1-x"},
		{"x", "x"},
		{"2*x+3", "3+2*x"},
		{"(1-x)/2", "0.5-0.5*x"},
		{"0.25", "0.25"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := expr.Print(mustParse(t, tc.in))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := expr.Parse("1-")
	require.Error(t, err)

	_, err = expr.Parse("")
	require.Error(t, err)
}

func TestArithmeticIsZero(t *testing.T) {
	a := mustParse(t, "1-x")
	b := mustParse(t, "x")
	sum := a.Add(b)
	require.False(t, sum.IsZero())
	require.Equal(t, "1", expr.Print(sum))

	zero := a.Sub(mustParse(t, "1-x"))
	require.True(t, zero.IsZero())
}

func TestSignAt(t *testing.T) {
	e := mustParse(t, "6-x")
	require.Equal(t, 1, e.SignAt(big.NewRat(1, 1000)))

	e2 := mustParse(t, "x-100")
	require.Equal(t, -1, e2.SignAt(big.NewRat(1, 1000)))
}

func TestGaussJordanUnique(t *testing.T) {
	// 1x + 1y = 3 ; 1x - 1y = 1  =>  x=2, y=1
	a := [][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(1, 1)},
		{big.NewRat(1, 1), big.NewRat(-1, 1)},
	}
	b := []*expr.Expr{expr.ConstantInt(3), expr.ConstantInt(1)}

	sol := expr.GaussJordanSolve(a, b)
	require.True(t, sol.Consistent)
	require.Equal(t, 0, sol.FreeParams)
	require.Equal(t, "2", expr.Print(sol.Values[0]))
	require.Equal(t, "1", expr.Print(sol.Values[1]))
}

func TestGaussJordanInconsistent(t *testing.T) {
	a := [][]*big.Rat{
		{big.NewRat(1, 1)},
		{big.NewRat(0, 1)},
	}
	b := []*expr.Expr{expr.ConstantInt(3), expr.ConstantInt(1)}

	sol := expr.GaussJordanSolve(a, b)
	require.False(t, sol.Consistent)
}

func TestGaussJordanUnderdetermined(t *testing.T) {
	a := [][]*big.Rat{
		{big.NewRat(1, 1), big.NewRat(1, 1)},
	}
	b := []*expr.Expr{expr.ConstantInt(3)}

	sol := expr.GaussJordanSolve(a, b)
	require.True(t, sol.Consistent)
	require.Equal(t, 1, sol.FreeParams)
}
