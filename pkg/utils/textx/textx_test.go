package textx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "hidrogeno", Fold("Hidrógeno"))
	assert.Equal(t, "neon", Fold(" Neón "))
	assert.Equal(t, "dioxido de carbono", Fold("Dióxido de Carbono"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Nitrógeno", "nitro"))
	assert.True(t, ContainsFold("Cloruro de Sodio", "SODIO"))
	assert.False(t, ContainsFold("Agua", "sal"))
}
