package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cx-luo/reaction-balancer/material"
	"github.com/cx-luo/reaction-balancer/render"
)

func TestRenderBasicEquation(t *testing.T) {
	r := render.Reaction{
		LHS: map[string]string{"BaCO3": "1", "TiO2": "1"},
		RHS: map[string]string{"BaTiO3": "1", "CO2": "1"},
	}
	got := render.Render("BaTiO3", r, nil, nil, nil)
	require.Equal(t, "1 BaCO3 + 1 TiO2 == 1 BaTiO3 + 1 CO2", got)
}

func TestRenderAppendsSubstitutionFootnote(t *testing.T) {
	r := render.Reaction{
		LHS: map[string]string{"Fe2O3": "6", "SrCO3": "6"},
		RHS: map[string]string{"Sr6(A2O4)6": "1", "CO2": "6"},
	}
	got := render.Render("Sr6(A2O4)6", r, map[string]string{"A": "Fe"}, nil, nil)
	require.Equal(t, "6 Fe2O3 + 6 SrCO3 == 1 Sr6(A2O4)6 + 6 CO2; A = Fe", got)
}

func TestRenderAppendsAdditiveAnnotation(t *testing.T) {
	mno, err := material.New("manganese oxide", "MnO", []material.RawComponent{
		{Amount: "1", Elements: map[string]interface{}{"Mn": "1", "O": "1"}},
	}, nil)
	require.NoError(t, err)

	r := render.Reaction{
		LHS: map[string]string{"Fe2O3": "6", "SrCO3": "6"},
		RHS: map[string]string{"Sr6(A2O4)6": "1", "CO2": "6"},
	}
	got := render.Render("Sr6(A2O4)6", r, map[string]string{"A": "Fe"}, []string{"Mn2+"}, []*material.MaterialInfo{mno})
	require.Equal(t, "6 Fe2O3 + 6 SrCO3 == 1 Sr6(A2O4)6 + 6 CO2; A = Fe ; target Sr6(A2O4)6 with additives Mn2+ via MnO", got)
}
