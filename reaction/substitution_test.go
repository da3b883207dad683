package reaction_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cx-luo/reaction-balancer/material"
	"github.com/cx-luo/reaction-balancer/reaction"
)

func TestExpandSubstitutionsNoPlaceholders(t *testing.T) {
	comp := []material.RawComponent{{Amount: "1", Elements: map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"}}}
	variants := reaction.ExpandSubstitutions(nil, comp)
	require.Len(t, variants, 1)
	require.Empty(t, variants[0])
}

func TestExpandSubstitutionsIgnoresAbsentPlaceholder(t *testing.T) {
	comp := []material.RawComponent{{Amount: "1", Elements: map[string]interface{}{"Sr": "6", "A": "12", "O": "24"}}}
	variants := reaction.ExpandSubstitutions(map[string][]string{
		"A": {"Fe", "Al"},
		"B": {"Mn"}, // B never occurs in comp, must be ignored
	}, comp)

	require.Len(t, variants, 2)
	for _, v := range variants {
		require.NotContains(t, v, "B")
	}
}

func TestExpandSubstitutionsEnumeratesEachValue(t *testing.T) {
	comp := []material.RawComponent{{Amount: "1", Elements: map[string]interface{}{"Sr": "6", "A": "12", "O": "24"}}}
	variants := reaction.ExpandSubstitutions(map[string][]string{"A": {"Fe", "Al"}}, comp)

	require.Len(t, variants, 2)
	seen := map[string]bool{}
	for _, v := range variants {
		seen[v["A"]] = true
	}
	require.True(t, seen["Fe"])
	require.True(t, seen["Al"])
}
