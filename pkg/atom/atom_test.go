package atom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShells(t *testing.T) {
	cases := map[int][]int{
		1:   {1},
		2:   {2},
		11:  {2, 8, 1},
		18:  {2, 8, 8},
		24:  {2, 8, 13, 1},
		26:  {2, 8, 14, 2},
		29:  {2, 8, 18, 1},
		46:  {2, 8, 18, 18},
		79:  {2, 8, 18, 32, 18, 1},
		92:  {2, 8, 18, 32, 21, 9, 2},
		118: {2, 8, 18, 32, 32, 18, 8},
	}
	for z, expected := range cases {
		shells, err := Shells(z)
		require.NoError(t, err)
		assert.Equal(t, expected, shells, "z=%d", z)
	}
}

func TestShellsSumToAtomicNumber(t *testing.T) {
	for z := 1; z <= MaxAtomicNumber; z++ {
		shells, err := Shells(z)
		require.NoError(t, err)
		total := 0
		for _, n := range shells {
			total += n
		}
		assert.Equal(t, z, total, "z=%d", z)
		assert.LessOrEqual(t, len(shells), len(ShellNames))
	}
}

func TestShellsOutOfRange(t *testing.T) {
	for _, z := range []int{0, -1, 119} {
		_, err := Shells(z)
		assert.ErrorIs(t, err, ErrUnknownAtomicNumber)
	}
}

func TestShellsReturnsCopy(t *testing.T) {
	shells, _ := Shells(8)
	shells[0] = 99
	again, _ := Shells(8)
	assert.Equal(t, []int{2, 6}, again)
}

func TestNeutrons(t *testing.T) {
	assert.Equal(t, 0, Neutrons(1.008, 1))
	assert.Equal(t, 8, Neutrons(16.00, 8))
	assert.Equal(t, 30, Neutrons(55.85, 26))
	assert.Equal(t, 0, Neutrons(0, 5))
}

func TestNucleusLayout(t *testing.T) {
	nucleus := NucleusLayout(6, 6)
	assert.False(t, nucleus.Scaled)
	assert.Equal(t, 12, nucleus.Rendered)
	assert.Len(t, nucleus.Particles, 12)

	protons := 0
	for _, p := range nucleus.Particles {
		if p.Kind == ParticleProton {
			protons++
		}
		dist := math.Sqrt(p.Position[0]*p.Position[0] + p.Position[1]*p.Position[1] + p.Position[2]*p.Position[2])
		assert.LessOrEqual(t, dist, nucleus.Radius+1e-3)
	}
	assert.Equal(t, 6, protons)

	// 确定性
	assert.Equal(t, nucleus, NucleusLayout(6, 6))
}

func TestNucleusLayoutSingleNucleon(t *testing.T) {
	nucleus := NucleusLayout(1, 0)
	require.Len(t, nucleus.Particles, 1)
	assert.Equal(t, ParticleProton, nucleus.Particles[0].Kind)
	assert.Equal(t, 0.0, nucleus.Particles[0].Position[1])
}

func TestNucleusLayoutScaled(t *testing.T) {
	nucleus := NucleusLayout(92, 146)
	assert.False(t, nucleus.Scaled)

	nucleus = NucleusLayout(118, 176)
	assert.True(t, nucleus.Scaled)
	assert.Equal(t, MaxRenderedNucleons, nucleus.Rendered)
	assert.Len(t, nucleus.Particles, MaxRenderedNucleons)
	assert.Equal(t, 118, nucleus.Protons)

	protons := 0
	for _, p := range nucleus.Particles {
		if p.Kind == ParticleProton {
			protons++
		}
	}
	// 250 * 118 / 294 ≈ 100.3
	assert.Equal(t, 100, protons)
}

func TestNucleusLayoutEmpty(t *testing.T) {
	nucleus := NucleusLayout(0, -3)
	assert.Empty(t, nucleus.Particles)
	assert.Equal(t, 0, nucleus.Neutrons)
}

func TestElectronPositions(t *testing.T) {
	positions := ElectronPositions(4, 2)
	require.Len(t, positions, 4)
	assert.Equal(t, 2.0, positions[0][0])
	assert.InDelta(t, 2.0, positions[1][2], 1e-9)
	assert.InDelta(t, -2.0, positions[2][0], 1e-9)
	assert.Empty(t, ElectronPositions(0, 1))
}

func TestShellRadius(t *testing.T) {
	assert.Equal(t, 1.0, ShellRadius(0, 0.2))
	assert.Equal(t, 1.6, ShellRadius(1, 0.2))
}
