package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildElementPrompt(t *testing.T) {
	h, _ := loadFixtures(t)

	prompt, err := BuildElementPrompt(h, LevelBasic)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Elemento: Hidrógeno (H)")
	assert.Contains(t, prompt, "Masa atómica: 1.0080 u")
	assert.Contains(t, prompt, "Categoría: No metal")
	assert.Contains(t, prompt, "Electrones de valencia: 1")
	assert.Contains(t, prompt, "Electronegatividad: 2.2")
	assert.Contains(t, prompt, "Período: 1, Grupo: 1")
	assert.Contains(t, prompt, elementLevelInstructions[LevelBasic])

	h.Electronegativity = nil
	prompt, err = BuildElementPrompt(h, LevelAdvanced)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Electronegatividad: N/A")
	assert.Contains(t, prompt, elementLevelInstructions[LevelAdvanced])
}

func TestBuildReactionPrompt(t *testing.T) {
	_, water := loadFixtures(t)

	prompt, err := BuildReactionPrompt(water, LevelIntermediate)
	require.NoError(t, err)
	assert.Contains(t, prompt, "ECUACIÓN: 2H₂ + O₂ → 2H₂O")
	assert.Contains(t, prompt, "TIPO: Síntesis")
	assert.Contains(t, prompt, "REACTIVOS: 2 H2, O2")
	assert.Contains(t, prompt, "PRODUCTOS: 2 H2O")
	assert.Contains(t, prompt, "CAMBIO DE ENTALPÍA: -572 kJ/mol")
	assert.Contains(t, prompt, "CAMBIO DE ENERGÍA: Exotérmica")
	assert.NotContains(t, prompt, "CATALIZADOR")
	assert.Contains(t, prompt, reactionLevelInstructions[LevelIntermediate])
}

func TestLocalReactionExplanationLevels(t *testing.T) {
	_, water := loadFixtures(t)

	basic, err := LocalReactionExplanation(water, LevelBasic)
	require.NoError(t, err)
	assert.Contains(t, basic, "Esta es una reacción de síntesis.")
	assert.Contains(t, basic, "En ella, 2 H2 y O2 reaccionan para formar 2 H2O.")
	assert.NotContains(t, basic, "entalpía")

	advanced, err := LocalReactionExplanation(water, LevelAdvanced)
	require.NoError(t, err)
	assert.Contains(t, advanced, "El cambio de entalpía es de -572 kJ/mol.")
	assert.Contains(t, advanced, "**Aplicaciones:** Células de combustible de hidrógeno")
	assert.Contains(t, advanced, "**Seguridad:**")
}

func TestLocalElementExplanationLevels(t *testing.T) {
	h, _ := loadFixtures(t)

	basic, err := LocalElementExplanation(h, LevelBasic)
	require.NoError(t, err)
	assert.Contains(t, basic, "## Hidrógeno (H)")
	assert.Contains(t, basic, "- Masa atómica: 1.0080 u")
	assert.NotContains(t, basic, "Punto de fusión")

	intermediate, err := LocalElementExplanation(h, LevelIntermediate)
	require.NoError(t, err)
	assert.Contains(t, intermediate, "Se encuentra en el período 1, grupo 1 y bloque s.")
	assert.Contains(t, intermediate, "- Punto de fusión: 14.01 K")
	assert.NotContains(t, intermediate, "Energía de ionización")
}
