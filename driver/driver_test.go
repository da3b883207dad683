package driver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cx-luo/reaction-balancer/driver"
)

func component(amount string, elements map[string]interface{}) driver.ComponentInput {
	return driver.ComponentInput{Amount: amount, Elements: elements}
}

func TestBalanceRecipeCarbonateDecomposition(t *testing.T) {
	precursors := []driver.MaterialInput{
		{MaterialFormula: "BaCO3", MaterialString: "barium carbonate", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ba": "1", "C": "1", "O": "3"}),
		}},
		{MaterialFormula: "TiO2", MaterialString: "titanium dioxide", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ti": "1", "O": "2"}),
		}},
	}
	targets := []driver.TargetInput{
		{MaterialFormula: "BaTiO3", MaterialString: "barium titanate", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"}),
		}},
	}

	results, err := driver.BalanceRecipe(context.Background(), precursors, targets, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "BaTiO3", results[0].TargetFormula)
	require.Equal(t, "1 BaCO3 + 1 TiO2 == 1 BaTiO3 + 1 CO2", results[0].Rendered)
}

func TestBalanceRecipeSkipsTrivialTarget(t *testing.T) {
	precursors := []driver.MaterialInput{
		{MaterialFormula: "NaCl", MaterialString: "sodium chloride", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Na": "1", "Cl": "1"}),
		}},
	}
	targets := []driver.TargetInput{
		{MaterialFormula: "Na2O", MaterialString: "sodium oxide", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Na": "2", "O": "1"}),
		}},
	}

	results, err := driver.BalanceRecipe(context.Background(), precursors, targets, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestBalanceRecipeSkipsWhenPrecursorEqualsTarget(t *testing.T) {
	precursors := []driver.MaterialInput{
		{MaterialFormula: "BaTiO3", MaterialString: "barium titanate", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"}),
		}},
	}
	targets := []driver.TargetInput{
		{MaterialFormula: "BaTiO3", MaterialString: "barium titanate", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"}),
		}},
	}

	results, err := driver.BalanceRecipe(context.Background(), precursors, targets, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestBalanceRecipeHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	precursors := []driver.MaterialInput{
		{MaterialFormula: "BaCO3", MaterialString: "barium carbonate", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ba": "1", "C": "1", "O": "3"}),
		}},
		{MaterialFormula: "TiO2", MaterialString: "titanium dioxide", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ti": "1", "O": "2"}),
		}},
	}
	targets := []driver.TargetInput{
		{MaterialFormula: "BaTiO3", MaterialString: "barium titanate", Composition: []driver.ComponentInput{
			component("1", map[string]interface{}{"Ba": "1", "Ti": "1", "O": "3"}),
		}},
	}

	results, err := driver.BalanceRecipe(ctx, precursors, targets, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
