package reaction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cx-luo/reaction-balancer/internal/config"
	"github.com/cx-luo/reaction-balancer/material"
	"github.com/cx-luo/reaction-balancer/reaction"
)

func TestDropOrganicsRemovesHCOOnly(t *testing.T) {
	organic := newMaterial(t, "ethanol", "C2H5OH", map[string]interface{}{"C": "2", "H": "6", "O": "1"})
	inorganic := newMaterial(t, "barium carbonate", "BaCO3", map[string]interface{}{"Ba": "1", "C": "1", "O": "3"})

	out := reaction.DropOrganics([]*material.MaterialInfo{organic, inorganic})
	require.Len(t, out, 1)
	require.Equal(t, "BaCO3", out[0].MaterialFormula)
}

func TestCandidateSubsetsEmitsFormulaMatchFirst(t *testing.T) {
	srco3 := newMaterial(t, "strontium carbonate", "SrCO3", map[string]interface{}{"Sr": "1", "C": "1", "O": "3"})
	al2o3 := newMaterial(t, "alumina", "Al2O3", map[string]interface{}{"Al": "2", "O": "3"})
	zro2 := newMaterial(t, "zirconia", "ZrO2", map[string]interface{}{"Zr": "1", "O": "2"})

	sentences := []string{"The recipe combines SrCO3 and Al2O3 at high temperature."}

	subsets := reaction.CandidateSubsets([]*material.MaterialInfo{srco3, al2o3, zro2}, sentences, config.Defaults())
	require.NotEmpty(t, subsets)

	first := subsets[0]
	formulas := map[string]bool{}
	for _, p := range first {
		formulas[p.MaterialFormula] = true
	}
	require.True(t, formulas["SrCO3"])
	require.True(t, formulas["Al2O3"])
	require.False(t, formulas["ZrO2"])
}

func TestCandidateSubsetsSkipsSentencesWithNoMatches(t *testing.T) {
	srco3 := newMaterial(t, "strontium carbonate", "SrCO3", map[string]interface{}{"Sr": "1", "C": "1", "O": "3"})
	subsets := reaction.CandidateSubsets([]*material.MaterialInfo{srco3}, []string{"an unrelated sentence"}, config.Defaults())
	require.Empty(t, subsets)
}
