package reaction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cx-luo/reaction-balancer/material"
	"github.com/cx-luo/reaction-balancer/reaction"
)

func newMaterial(t *testing.T, name, formula string, elements map[string]interface{}) *material.MaterialInfo {
	t.Helper()
	m, err := material.New(name, formula, []material.RawComponent{{Amount: "1", Elements: elements}}, nil)
	require.NoError(t, err)
	return m
}

func TestBalanceCarbonateDecomposition(t *testing.T) {
	baco3 := newMaterial(t, "barium carbonate", "BaCO3", map[string]interface{}{"Ba": "1", "C": "1", "O": "3"})
	tio2 := newMaterial(t, "titanium dioxide", "TiO2", map[string]interface{}{"Ti": "1", "O": "2"})
	target := newMaterial(t, "barium titanate", "BaTiO3", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"})

	res, err := reaction.Balance([]*material.MaterialInfo{baco3, tio2}, target, nil)
	require.NoError(t, err)

	require.Equal(t, "1", res.LHS["BaCO3"])
	require.Equal(t, "1", res.LHS["TiO2"])
	require.Equal(t, "1", res.RHS["BaTiO3"])
	require.Equal(t, "1", res.RHS["CO2"])
	require.NotContains(t, res.LHS, "O2")
	require.NotContains(t, res.RHS, "O2")
}

func TestBalanceRejectsTargetWithTooFewNonVolatileElements(t *testing.T) {
	precursor := newMaterial(t, "sodium chloride", "NaCl", map[string]interface{}{"Na": "1", "Cl": "1"})
	target := newMaterial(t, "sodium oxide", "Na2O", map[string]interface{}{"Na": "2", "O": "1"})

	_, err := reaction.Balance([]*material.MaterialInfo{precursor}, target, nil)
	require.Error(t, err)
	var stupid *reaction.StupidRecipeError
	require.ErrorAs(t, err, &stupid)
}

func TestBalanceRejectsPrecursorEqualToTarget(t *testing.T) {
	target := newMaterial(t, "barium titanate", "BaTiO3", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"})
	same := newMaterial(t, "barium titanate again", "BaTiO3", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"})
	other := newMaterial(t, "titanium dioxide", "TiO2", map[string]interface{}{"Ti": "1", "O": "2"})

	_, err := reaction.Balance([]*material.MaterialInfo{same, other}, target, nil)
	require.Error(t, err)
	var stupid *reaction.StupidRecipeError
	require.ErrorAs(t, err, &stupid)
}

func TestBalanceRejectsMissingNonVolatileCoverage(t *testing.T) {
	baco3 := newMaterial(t, "barium carbonate", "BaCO3", map[string]interface{}{"Ba": "1", "C": "1", "O": "3"})
	target := newMaterial(t, "barium titanate", "BaTiO3", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"})

	_, err := reaction.Balance([]*material.MaterialInfo{baco3}, target, nil)
	require.Error(t, err)
	var stupid *reaction.StupidRecipeError
	require.ErrorAs(t, err, &stupid)
}

func TestBalanceTooManyPrecursorsWhenOverdetermined(t *testing.T) {
	baco3 := newMaterial(t, "barium carbonate", "BaCO3", map[string]interface{}{"Ba": "1", "C": "1", "O": "3"})
	bao := newMaterial(t, "barium oxide", "BaO", map[string]interface{}{"Ba": "1", "O": "1"})
	tio2 := newMaterial(t, "titanium dioxide", "TiO2", map[string]interface{}{"Ti": "1", "O": "2"})
	target := newMaterial(t, "barium titanate", "BaTiO3", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"})

	_, err := reaction.Balance([]*material.MaterialInfo{baco3, bao, tio2}, target, nil)
	require.Error(t, err)
	var cannotBalance *reaction.CannotBalanceError
	require.ErrorAs(t, err, &cannotBalance)
	var tooMany *reaction.TooManyPrecursorsError
	require.ErrorAs(t, cannotBalance.Cause, &tooMany)
}
