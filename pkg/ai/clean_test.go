package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanResponse(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "  El hidrógeno es un gas.  ", "El hidrógeno es un gas."},
		{"think tag", "<think>\nrazonando...\n</think>\nEl agua es H2O.", "El agua es H2O."},
		{"thinking tag", "[THINKING]paso 1[/THINKING]Respuesta final", "Respuesta final"},
		{"thinking note", "**Pensando**: primero...\n\nEl sodio reacciona.", "El sodio reacciona."},
		{"answer prefix", "Explicación: El cloro es un halógeno.", "El cloro es un halógeno."},
		{"lowercase prefix", "respuesta:   Texto", "Texto"},
		{"blank lines", "Uno\n\n\n\n\nDos", "Uno\n\nDos"},
		{"spaces", "El   oro    brilla", "El oro brilla"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, CleanResponse(c.input))
		})
	}
}

func TestUsable(t *testing.T) {
	assert.False(t, usable(""))
	assert.False(t, usable("Demasiado corto"))
	// 按字符而不是字节计数
	assert.False(t, usable(strings.Repeat("ñ", minExplanationLength-1)))
	assert.True(t, usable(strings.Repeat("ñ", minExplanationLength)))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	assert.NoError(t, err)
	assert.Equal(t, LevelIntermediate, level)

	level, err = ParseLevel(" Advanced ")
	assert.NoError(t, err)
	assert.Equal(t, LevelAdvanced, level)

	_, err = ParseLevel("expert")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("H"))
	assert.Equal(t, 3, EstimateTokens("Hidrógeno es"))
}
