package service

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/chemreact/pkg/infras/database/dbtest"
	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/scene"
)

func TestGetMolecule(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	water, err := GetMolecule(ctx, "H₂O")
	require.NoError(t, err)
	assert.Equal(t, "H2O", water.Formula)
	assert.Equal(t, "Agua", water.NameEs)
	assert.Len(t, water.Structure.Atoms, 3)
	require.NotNil(t, water.MolecularWeight)
	assert.InDelta(t, 18.015, *water.MolecularWeight, 0.01)

	_, err = GetMolecule(ctx, "C6H12O6")
	assert.ErrorIs(t, err, ErrMoleculeNotFound)

	_, err = GetMolecule(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestSearchMolecules(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	found, err := SearchMolecules(ctx, "dioxido")
	require.NoError(t, err)
	assert.Contains(t, lo.Map(found, func(m model.Molecule, _ int) string { return m.Formula }), "CO2")

	found, err = SearchMolecules(ctx, "CO₂")
	require.NoError(t, err)
	assert.Equal(t, []string{"CO2"}, lo.Map(found, func(m model.Molecule, _ int) string { return m.Formula }))

	_, err = SearchMolecules(ctx, "H")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestGetMoleculeScene(t *testing.T) {
	dbtest.NewSeededDB(t)

	s, err := GetMoleculeScene(context.Background(), "NaCl")
	require.NoError(t, err)
	assert.Equal(t, "NaCl", s.Molecule.Formula)
	assert.Equal(t, "NaCl", s.Molecule.FormulaHTML)
	require.Len(t, s.Scene.Nodes, 1)
	spheres := lo.Filter(s.Scene.Nodes[0].Children, func(n scene.Node, _ int) bool { return n.Kind == scene.KindSphere })
	assert.Len(t, spheres, 2)
}
