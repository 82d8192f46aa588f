package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/chemreact/data"
	"github.com/narasux/chemreact/pkg/loader"
	"github.com/narasux/chemreact/pkg/model"
)

// 内置种子数据中已验证的反应，ID 按顺序从 1 开始
func loadMatcherFixtures(t *testing.T) (model.Reactions, model.Elements) {
	catalog, err := loader.New(data.FS).Exec()
	require.NoError(t, err)

	reactions := model.Reactions{}
	for idx, r := range catalog.Reactions {
		r.ID = int64(idx + 1)
		if r.IsVerified {
			reactions = append(reactions, r)
		}
	}
	return reactions, catalog.Elements
}

func TestMatchReactionsExact(t *testing.T) {
	reactions, elements := loadMatcherFixtures(t)

	result := MatchReactions([]string{"Na", "Cl"}, reactions, elements)
	assert.True(t, result.Found)
	assert.Equal(t, MatchExact, result.MatchType)
	assert.Equal(t, []int64{3}, reactionIDs(result.Reactions))
	assert.Empty(t, result.Suggestions)
	assert.Empty(t, result.Hints)
}

func TestMatchReactionsPartial(t *testing.T) {
	reactions, elements := loadMatcherFixtures(t)

	// 单个元素：与反应物元素有交集即可，最多返回 5 个
	result := MatchReactions([]string{"O"}, reactions, elements)
	assert.True(t, result.Found)
	assert.Equal(t, MatchPartial, result.MatchType)
	assert.Equal(t, []int64{1, 2, 4, 6, 7}, reactionIDs(result.Reactions))

	result = MatchReactions([]string{"Na"}, reactions, elements)
	assert.Equal(t, []int64{3, 6, 10}, reactionIDs(result.Reactions))

	// 多个元素：需为反应物元素的子集
	result = MatchReactions([]string{"Cu", "Zn"}, reactions, elements)
	assert.Equal(t, MatchPartial, result.MatchType)
	assert.Equal(t, []int64{9}, reactionIDs(result.Reactions))
	assert.Equal(t, []string{"Zn", "Cu", "S", "O"}, result.Reactions[0].Elements[:4])
}

func TestMatchReactionsSuggestions(t *testing.T) {
	reactions, elements := loadMatcherFixtures(t)

	result := MatchReactions([]string{"Au", "O"}, reactions, elements)
	assert.False(t, result.Found)
	assert.Equal(t, MatchNone, result.MatchType)
	assert.Empty(t, result.Reactions)
	assert.Len(t, result.Suggestions, MaxSuggestions)
	assert.Equal(t, int64(1), result.Suggestions[0].ID)
	assert.Equal(t,
		"No se encontró una reacción conocida entre Au, O. Prueba con una combinación diferente.",
		result.Message,
	)
	assert.NotEmpty(t, result.SuggestionMessage)
	assert.Equal(t, []string{
		"Prueba agregar H (Hidrógeno)",
		"Prueba agregar C (Carbono)",
		"Prueba agregar Fe (Hierro)",
	}, result.Hints)
}

func TestMatchReactionsSuggestionsOrderedByOverlap(t *testing.T) {
	reactions, elements := loadMatcherFixtures(t)

	// Na + Cl + H + Au：HCl + NaOH 重合 3 个元素，排在最前
	result := MatchReactions([]string{"Na", "Cl", "H", "Au"}, reactions, elements)
	assert.False(t, result.Found)
	require.NotEmpty(t, result.Suggestions)
	assert.Equal(t, int64(6), result.Suggestions[0].ID)
	assert.Equal(t, int64(3), result.Suggestions[1].ID)
	assert.LessOrEqual(t, len(result.Hints), MaxHints)
}

func TestMatchReactionsNobleGas(t *testing.T) {
	reactions, elements := loadMatcherFixtures(t)

	result := MatchReactions([]string{"He"}, reactions, elements)
	assert.False(t, result.Found)
	assert.Empty(t, result.Suggestions)
	assert.Empty(t, result.SuggestionMessage)
	assert.Empty(t, result.Hints)
	assert.Contains(t, result.Message, "Nota: He es un gas noble")

	result = MatchReactions([]string{"Ne", "Na", "Ar"}, reactions, elements)
	assert.Contains(t, result.Message, "Los elementos Ne, Na, Ar no forman una reacción conocida")
	assert.Contains(t, result.Message, "Ne, Ar son gases nobles")
	assert.Equal(t, []int64{3, 6, 10}, reactionIDs(result.Suggestions))
	assert.Equal(t, []string{"Prueba agregar Cl (Cloro)", "Prueba agregar H (Hidrógeno)", "Prueba agregar O (Oxígeno)"},
		result.Hints[:3])
}

func TestMatchReactionsIgnoresCatalyst(t *testing.T) {
	reactions, elements := loadMatcherFixtures(t)

	// Haber：催化剂 Fe 不属于反应物
	result := MatchReactions([]string{"N", "H"}, reactions, elements)
	assert.Equal(t, MatchExact, result.MatchType)
	assert.Equal(t, []int64{5}, reactionIDs(result.Reactions))

	result = MatchReactions([]string{"N", "H", "Fe"}, reactions, elements)
	assert.False(t, result.Found)
}
