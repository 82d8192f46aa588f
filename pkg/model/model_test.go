package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestReaction() Reaction {
	return Reaction{
		ID:       1,
		Equation: "HCl + NaOH → NaCl + H₂O",
		Participants: []ReactionParticipant{
			{Role: RoleReactant, Formula: "HCl", Coefficient: 1, Elements: []string{"H", "Cl"}},
			{Role: RoleReactant, Formula: "NaOH", Coefficient: 1, Elements: []string{"Na", "O", "H"}},
			{Role: RoleProduct, Formula: "NaCl", Coefficient: 1, Elements: []string{"Na", "Cl"}},
			{Role: RoleProduct, Formula: "H2O", Coefficient: 1, Elements: []string{"H", "O"}},
			{Role: RoleCatalyst, Formula: "Pt", Coefficient: 1, Elements: []string{"Pt"}},
		},
	}
}

func TestReactionElements(t *testing.T) {
	r := newTestReaction()
	assert.Equal(t, []string{"H", "Cl", "Na", "O"}, r.ReactantElements())
	assert.Equal(t, []string{"Na", "Cl", "H", "O"}, r.ProductElements())
	assert.Equal(t, []string{"H", "Cl", "Na", "O"}, r.ElementSymbols())
	assert.Len(t, r.ParticipantsByRole(RoleCatalyst), 1)
	assert.Empty(t, (&Reaction{}).ReactantElements())
}

func TestReactionsGetByID(t *testing.T) {
	rs := Reactions{newTestReaction()}
	assert.NotNil(t, rs.GetByID(1))
	assert.Nil(t, rs.GetByID(2))
}

func TestChoices(t *testing.T) {
	assert.True(t, ReactionTypes.Has("acid_base"))
	assert.False(t, ReactionTypes.Has("nuclear"))
	assert.Equal(t, "Gas noble", ElementCategories.Label(CategoryNobleGas))
	assert.Equal(t, "whatever", ElementCategories.Label("whatever"))
	assert.Len(t, EnergyTypes.Values(), 3)
}

func TestElementHelpers(t *testing.T) {
	es := Elements{
		{AtomicNumber: 1, Symbol: "H", Category: CategoryNonmetal, CpkColor: "#FFFFFF"},
		{AtomicNumber: 2, Symbol: "He", Category: CategoryNobleGas, ColorHex: "#D9FFFF"},
		{AtomicNumber: 3, Symbol: "Li", Category: CategoryAlkaliMetal},
	}
	assert.Equal(t, 2, es.GetBySymbol("He").AtomicNumber)
	assert.Nil(t, es.GetBySymbol("he"))
	assert.Len(t, es.FilterByCategory(CategoryNobleGas), 1)

	assert.Equal(t, "#FFFFFF", es[0].DisplayColor())
	assert.Equal(t, "#D9FFFF", es[1].DisplayColor())
	assert.Equal(t, DefaultColor, es[2].DisplayColor())
}

func TestVec3(t *testing.T) {
	v := Vec3{1, 2, 3}
	assert.Equal(t, Vec3{2, 4, 6}, v.Add(v))
	assert.Equal(t, Vec3{0, 0, 0}, v.Sub(v))
	assert.Equal(t, Vec3{0.5, 1, 1.5}, v.Scale(0.5))
}
