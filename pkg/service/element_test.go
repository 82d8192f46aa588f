package service

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/chemreact/pkg/infras/database/dbtest"
	"github.com/narasux/chemreact/pkg/model"
)

func TestListElements(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	all, err := ListElements(ctx, ElementFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 46)
	assert.Equal(t, "H", all[0].Symbol)

	alkali, err := ListElements(ctx, ElementFilter{Category: model.CategoryAlkaliMetal})
	require.NoError(t, err)
	assert.Equal(t, []string{"Li", "Na", "K"}, lo.Map(alkali, func(e model.Element, _ int) string { return e.Symbol }))

	period1, err := ListElements(ctx, ElementFilter{Period: 1})
	require.NoError(t, err)
	assert.Len(t, period1, 2)

	pBlock, err := ListElements(ctx, ElementFilter{Block: "p", Period: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "N", "O", "F", "Ne"}, lo.Map(pBlock, func(e model.Element, _ int) string { return e.Symbol }))
}

func TestListElementsInvalidFilter(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	for _, filter := range []ElementFilter{{Category: "plasma"}, {Block: "g"}, {Period: 8}} {
		_, err := ListElements(ctx, filter)
		assert.ErrorIs(t, err, ErrInvalidParams, "%+v", filter)
	}

	_, err := ParsePeriod("two")
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Equal(t, `invalid period "two"`, ParamErrorMessage(err))
}

func TestGetElement(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	bySymbol, err := GetElement(ctx, " na ")
	require.NoError(t, err)
	assert.Equal(t, 11, bySymbol.AtomicNumber)

	byNumber, err := GetElement(ctx, "26")
	require.NoError(t, err)
	assert.Equal(t, "Fe", byNumber.Symbol)

	_, err = GetElement(ctx, "Og")
	assert.ErrorIs(t, err, ErrElementNotFound)

	_, err = GetElement(ctx, "0")
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = GetElement(ctx, "Na2")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestGetElementDetail(t *testing.T) {
	dbtest.NewSeededDB(t)

	detail, err := GetElementDetail(context.Background(), "Fe")
	require.NoError(t, err)
	assert.Equal(t, "Hierro", detail.NameEs)
	assert.Equal(t, "Metal de transición", detail.CategoryLabel)
	assert.Equal(t, []int{2, 8, 14, 2}, detail.ElectronShells)
	assert.Equal(t, 6, detail.ValenceElectrons)
	assert.NotEmpty(t, detail.OxidationStatesList)

	h, err := GetElementDetail(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -1}, h.OxidationStatesList)
	assert.Equal(t, 1, h.ValenceElectrons)
}

func TestSearchElements(t *testing.T) {
	dbtest.NewSeededDB(t)
	ctx := context.Background()

	// 忽略变音符号
	found, err := SearchElements(ctx, "hidrogeno")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "H", found[0].Symbol)

	// 符号完全匹配的排在前面
	found, err = SearchElements(ctx, "n")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	assert.Equal(t, "N", found[0].Symbol)

	found, err = SearchElements(ctx, "oxígeno")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "O", found[0].Symbol)

	_, err = SearchElements(ctx, "  ")
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestCategoryCounts(t *testing.T) {
	dbtest.NewSeededDB(t)

	counts, err := CategoryCounts(context.Background())
	require.NoError(t, err)

	byValue := lo.KeyBy(counts, func(c CategoryCount) string { return c.Value })
	assert.Equal(t, 14, byValue[model.CategoryTransitionMetal].Count)
	assert.Equal(t, 6, byValue[model.CategoryNobleGas].Count)
	assert.Equal(t, "Gas noble", byValue[model.CategoryNobleGas].Label)
	assert.NotContains(t, byValue, model.CategoryLanthanide)
	assert.Equal(t, 46, lo.SumBy(counts, func(c CategoryCount) int { return c.Count }))
	// 按分类定义顺序
	assert.Equal(t, model.CategoryAlkaliMetal, counts[0].Value)
}

func TestGetPeriodicTable(t *testing.T) {
	dbtest.NewSeededDB(t)

	table, err := GetPeriodicTable(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Elements, 46)
	assert.Equal(t, "He", table.Organized[1][18].Symbol)
	assert.Equal(t, "Fe", table.Organized[4][8].Symbol)
	assert.Equal(t, []string{"U"}, lo.Map(table.Series[model.CategoryActinide], func(e ElementSummary, _ int) string {
		return e.Symbol
	}))
	assert.Empty(t, table.Series[model.CategoryLanthanide])
	// 锕系元素不出现在主表中
	assert.NotEqual(t, "U", table.Organized[7][3].Symbol)
}

func TestElements3D(t *testing.T) {
	dbtest.NewSeededDB(t)

	items, err := Elements3D(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 46)
	assert.Equal(t, []int{1}, items[0].ElectronShells)
	assert.NotEmpty(t, items[0].CpkColor)
}

func TestGetAtomModel(t *testing.T) {
	dbtest.NewSeededDB(t)

	m, err := GetAtomModel(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, "C", m.Element.Symbol)
	require.Len(t, m.Shells, 2)
	assert.Equal(t, ShellInfo{Name: "K", Electrons: 2, Radius: m.Shells[0].Radius}, m.Shells[0])
	assert.Equal(t, 4, m.Shells[1].Electrons)
	assert.Equal(t, 6, m.Nucleus.Protons)
	assert.Equal(t, 6, m.Nucleus.Neutrons)
	assert.Len(t, m.Nucleus.Particles, 12)
	assert.NotEmpty(t, m.Scene.Nodes)

	_, err = GetAtomModel(context.Background(), "Xe2")
	assert.ErrorIs(t, err, ErrInvalidParams)
}
