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
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

func reactionIDs(summaries []ReactionSummary) []int64 {
	return lo.Map(summaries, func(s ReactionSummary, _ int) int64 { return s.ID })
}

func TestListReactions(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	reactions, total, err := ListReactions(ctx, ReactionFilter{}, ginx.Pagination{Page: 1, PageSize: 5})
	require.NoError(t, err)
	// 未验证的反应不出现在列表中
	assert.Equal(t, int64(11), total)
	assert.Len(t, reactions, 5)
	assert.Equal(t, int64(1), reactions[0].ID)
	assert.Len(t, reactions[0].Participants, 3)

	reactions, _, err = ListReactions(ctx, ReactionFilter{}, ginx.Pagination{Page: 3, PageSize: 5})
	require.NoError(t, err)
	assert.Len(t, reactions, 1)

	reactions, total, err = ListReactions(ctx, ReactionFilter{Type: "synthesis"}, ginx.Pagination{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, reactions, 3)

	_, total, err = ListReactions(ctx, ReactionFilter{Difficulty: 4}, ginx.Pagination{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestListReactionsInvalidFilter(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	_, _, err := ListReactions(ctx, ReactionFilter{Type: "fusion"}, ginx.Pagination{Page: 1, PageSize: 20})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, _, err = ListReactions(ctx, ReactionFilter{Difficulty: 6}, ginx.Pagination{Page: 1, PageSize: 20})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = ParseDifficulty("hard")
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = ParseReactionID("-1")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestGetReactionDetail(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	detail, err := GetReactionDetail(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2H<sub>2</sub> + O<sub>2</sub> → 2H<sub>2</sub>O", detail.EquationHTML)
	assert.Equal(t, "Síntesis", detail.ReactionTypeLabel)
	assert.Equal(t, []string{"H", "O"}, detail.ReactantElements)
	assert.Equal(t, []string{"H", "O"}, detail.ProductElements)

	// 未验证的反应同样可以查看详情
	detail, err = GetReactionDetail(ctx, 12)
	require.NoError(t, err)
	assert.False(t, detail.IsVerified)
	assert.Len(t, detail.ParticipantsByRole(model.RoleCatalyst), 1)

	_, err = GetReactionDetail(ctx, 999)
	assert.ErrorIs(t, err, ErrReactionNotFound)
}

func TestReactionsByType(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	reactions, err := ReactionsByType(ctx, "single_replacement")
	require.NoError(t, err)
	assert.Len(t, reactions, 2)

	_, err = ReactionsByType(ctx, "organic")
	assert.ErrorIs(t, err, ErrReactionNotFound)

	_, err = ReactionsByType(ctx, "nuclear")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestGetReactionAnimation(t *testing.T) {
	dbtest.NewSeededDB(t)

	animation, err := GetReactionAnimation(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), animation.ReactionID)
	assert.Len(t, animation.AnimationData.Steps, 3)
	assert.Len(t, animation.Scene.AnimationSteps, 3)
	assert.Equal(t, animation.AnimationData.Steps, animation.Scene.AnimationSteps)

	ids := lo.Map(animation.Scene.Nodes, func(n scene.Node, _ int) string { return n.ID })
	assert.Contains(t, ids, "reactant-0")
	assert.Contains(t, ids, "product-0")
}

func TestValidateElements(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	result, err := ValidateElements(ctx, []string{"h", " O ", "H"})
	require.NoError(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, MatchExact, result.MatchType)
	assert.Equal(t, []string{"H", "O"}, result.Elements)
	assert.Equal(t, []int64{1}, reactionIDs(result.Reactions))
	assert.Equal(t, "Se encontraron 1 reacción(es)", result.Message)
}

func TestValidateElementsErrors(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	_, err := ValidateElements(ctx, []string{})
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = ValidateElements(ctx, []string{"H", "1x"})
	assert.ErrorIs(t, err, ErrInvalidParams)

	tooMany := []string{"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne", "Na"}
	_, err = ValidateElements(ctx, tooMany)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = ValidateElements(ctx, []string{"H", "Xx", "Og"})
	var unknownErr *UnknownElementsError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"Xx", "Og"}, unknownErr.Symbols)
}
