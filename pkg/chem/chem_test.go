package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	cases := map[string]string{
		"na":   "Na",
		" CL ": "Cl",
		"h":    "H",
		"uue":  "Uue",
		"":     "",
		"Na1":  "",
		"Naxx": "",
		"ñ":    "",
	}
	for raw, expected := range cases {
		assert.Equal(t, expected, NormalizeSymbol(raw), raw)
	}
}

func TestNormalizeSymbols(t *testing.T) {
	symbols, invalid := NormalizeSymbols([]string{"na", "Cl", " ", "NA", "x1", "o"})

	assert.Equal(t, []string{"Na", "Cl", "O"}, symbols)
	assert.Equal(t, []string{"x1"}, invalid)
}

func TestIsNobleGas(t *testing.T) {
	assert.True(t, IsNobleGas("Ar"))
	assert.False(t, IsNobleGas("Cl"))
}

func TestParseFormula(t *testing.T) {
	cases := []struct {
		formula  string
		expected Composition
	}{
		{"H2O", Composition{{"H", 2}, {"O", 1}}},
		{"H₂O", Composition{{"H", 2}, {"O", 1}}},
		{"NaCl", Composition{{"Na", 1}, {"Cl", 1}}},
		{"Fe2O3", Composition{{"Fe", 2}, {"O", 3}}},
		{"Ca(OH)2", Composition{{"Ca", 1}, {"O", 2}, {"H", 2}}},
		{"Al2(SO4)3", Composition{{"Al", 2}, {"S", 3}, {"O", 12}}},
		{"K4[Fe(CN)6]", Composition{{"K", 4}, {"Fe", 1}, {"C", 6}, {"N", 6}}},
		{"CuSO4·5H2O", Composition{{"Cu", 1}, {"S", 1}, {"O", 9}, {"H", 10}}},
		{"CH3COOH", Composition{{"C", 2}, {"H", 4}, {"O", 2}}},
	}
	for _, tc := range cases {
		comp, err := ParseFormula(tc.formula)
		require.NoError(t, err, tc.formula)
		assert.Equal(t, tc.expected, comp, tc.formula)
	}
}

func TestParseFormulaInvalid(t *testing.T) {
	for _, formula := range []string{"", "h2o", "Ca(OH", "NaCl)", "H2O·", "Na-Cl", "(H2]"} {
		_, err := ParseFormula(formula)
		assert.ErrorIs(t, err, ErrInvalidFormula, formula)
	}
}

func TestCompositionHelpers(t *testing.T) {
	comp, err := ParseFormula("C6H12O6")
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "H", "O"}, comp.Symbols())
	assert.Equal(t, 12, comp.Count("H"))
	assert.Equal(t, 0, comp.Count("N"))
	assert.Equal(t, 24, comp.TotalAtoms())
}

func TestMolarMass(t *testing.T) {
	masses := map[string]float64{"H": 1.008, "O": 16.00}
	massOf := func(symbol string) (float64, bool) {
		m, ok := masses[symbol]
		return m, ok
	}

	comp, _ := ParseFormula("H2O")
	mass, err := MolarMass(comp, massOf)
	require.NoError(t, err)
	assert.InDelta(t, 18.016, mass, 1e-9)

	comp, _ = ParseFormula("NaCl")
	_, err = MolarMass(comp, massOf)
	assert.Error(t, err)
}

func TestEquationHTML(t *testing.T) {
	assert.Equal(t,
		"2H<sub>2</sub> + O<sub>2</sub> → 2H<sub>2</sub>O",
		EquationHTML("2H₂ + O₂ → 2H₂O"),
	)
	assert.Equal(t,
		"4Fe + 3O<sub>2</sub> → 2Fe<sub>2</sub>O<sub>3</sub>",
		EquationHTML("4Fe + 3O2 → 2Fe2O3"),
	)
	assert.Equal(t,
		"Ca(OH)<sub>2</sub> + 10H<sub>2</sub>O",
		EquationHTML("Ca(OH)2 + 10H2O"),
	)
	assert.Equal(t, "A &lt; B", EquationHTML("A < B"))
}

func TestSubscriptFormula(t *testing.T) {
	assert.Equal(t, "H₂O", SubscriptFormula("H2O"))
	assert.Equal(t, "C₁₂H₂₂O₁₁", SubscriptFormula("C12H22O11"))
	assert.Equal(t, "Ca(OH)₂", SubscriptFormula("Ca(OH)2"))
}

func TestValenceElectrons(t *testing.T) {
	assert.Equal(t, 1, ValenceElectrons("s", 1))
	assert.Equal(t, 2, ValenceElectrons("s", 18))
	assert.Equal(t, 6, ValenceElectrons("p", 16))
	assert.Equal(t, 6, ValenceElectrons("d", 8))
	assert.Equal(t, 1, ValenceElectrons("d", 11))
	assert.Equal(t, 3, ValenceElectrons("f", 3))
}

func TestParseOxidationStates(t *testing.T) {
	assert.Equal(t, []int{1, -1, 5}, ParseOxidationStates("+1, -1, x, 5"))
	assert.Equal(t, []int{}, ParseOxidationStates(""))
}

func TestASCIIFormula(t *testing.T) {
	assert.Equal(t, "H2O", ASCIIFormula(" H₂O "))
	assert.Equal(t, "C12H22O11", ASCIIFormula("C₁₂H₂₂O₁₁"))
	assert.Equal(t, "NaCl", ASCIIFormula("NaCl"))
}
