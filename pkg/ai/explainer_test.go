package ai

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/chemreact/data"
	"github.com/narasux/chemreact/pkg/loader"
	"github.com/narasux/chemreact/pkg/model"
)

type fakeProvider struct {
	name        string
	unavailable error
	response    string
	err         error

	probes   atomic.Int32
	requests atomic.Int32
}

func (p *fakeProvider) Name() string {
	return p.name
}

func (p *fakeProvider) Available(context.Context) error {
	p.probes.Add(1)
	return p.unavailable
}

func (p *fakeProvider) Generate(context.Context, string, int) (string, error) {
	p.requests.Add(1)
	return p.response, p.err
}

func fixedTokens(string) int {
	return 42
}

func loadFixtures(t *testing.T) (*model.Element, *model.Reaction) {
	catalog, err := loader.New(data.FS).Exec()
	require.NoError(t, err)
	reaction := catalog.Reactions[0]
	reaction.ID = 1
	return catalog.Elements.GetBySymbol("H"), &reaction
}

func newTestExplainer(t *testing.T, providers ...Provider) *Explainer {
	e, err := NewExplainer(providers, time.Minute, time.Hour, WithTokenCounter(fixedTokens))
	require.NoError(t, err)
	return e
}

func TestExplainElementFirstAvailableProvider(t *testing.T) {
	h, _ := loadFixtures(t)
	ollama := &fakeProvider{name: SourceOllama, unavailable: ErrUnavailable}
	gemini := &fakeProvider{name: SourceGemini, response: "<think>hmm</think>## Hidrógeno\n\nEs el elemento más ligero."}
	e := newTestExplainer(t, ollama, gemini)

	result, err := e.ExplainElement(context.Background(), h, LevelBasic)
	require.NoError(t, err)
	assert.Equal(t, SourceGemini, result.Source)
	assert.Equal(t, LevelBasic, result.Level)
	assert.Equal(t, "## Hidrógeno\n\nEs el elemento más ligero.", result.Explanation)
	assert.Contains(t, result.ExplanationHTML, "<h2")
	assert.Equal(t, 42, result.PromptTokens)
	assert.False(t, result.Cached)
	assert.EqualValues(t, 0, ollama.requests.Load())

	// 第二次命中结果缓存，可用性也不再检查
	result, err = e.ExplainElement(context.Background(), h, LevelBasic)
	require.NoError(t, err)
	assert.True(t, result.Cached)
	assert.Equal(t, SourceGemini, result.Source)
	assert.EqualValues(t, 1, gemini.requests.Load())
	assert.EqualValues(t, 1, ollama.probes.Load())

	// 不同深度分开缓存
	_, err = e.ExplainElement(context.Background(), h, LevelAdvanced)
	require.NoError(t, err)
	assert.EqualValues(t, 2, gemini.requests.Load())
	assert.EqualValues(t, 1, gemini.probes.Load())
}

func TestExplainFallbackOnFailures(t *testing.T) {
	h, water := loadFixtures(t)
	failing := &fakeProvider{name: SourceOllama, err: errors.New("boom")}
	short := &fakeProvider{name: SourceGemini, response: "<think>x</think>Ok"}
	e := newTestExplainer(t, failing, short)

	result, err := e.ExplainReaction(context.Background(), water, LevelIntermediate)
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, result.Source)
	assert.Contains(t, result.Explanation, "## Formación de Agua")
	assert.Contains(t, result.Explanation, "Esta reacción libera energía (exotérmica).")
	assert.Contains(t, result.Explanation, "-572")
	assert.Zero(t, result.PromptTokens)

	// 本地模板结果不缓存
	result, err = e.ExplainElement(context.Background(), h, LevelBasic)
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, result.Source)
	result, err = e.ExplainElement(context.Background(), h, LevelBasic)
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.EqualValues(t, 3, failing.requests.Load())
}

func TestExplainWithoutProviders(t *testing.T) {
	h, _ := loadFixtures(t)
	e := newTestExplainer(t)

	result, err := e.ExplainElement(context.Background(), h, LevelAdvanced)
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, result.Source)
	assert.Contains(t, result.Explanation, "Hidrógeno es un elemento químico clasificado como no metal.")
	assert.Contains(t, result.Explanation, "Energía de ionización: 1312 kJ/mol")
}

func TestStatus(t *testing.T) {
	ollama := &fakeProvider{name: SourceOllama, unavailable: errors.New("connection refused")}
	gemini := &fakeProvider{name: SourceGemini}
	e := newTestExplainer(t, ollama, gemini)

	status := e.Status(context.Background())
	assert.True(t, status.Available)
	assert.Equal(t, SourceGemini, status.Active)
	require.Len(t, status.Providers, 2)
	assert.False(t, status.Providers[0].Available)
	assert.Equal(t, "connection refused", status.Providers[0].Reason)
	assert.True(t, status.Providers[1].Available)

	// 可用性结果被缓存
	e.Status(context.Background())
	assert.EqualValues(t, 1, ollama.probes.Load())

	e.ClearCache()
	e.Status(context.Background())
	assert.EqualValues(t, 2, ollama.probes.Load())

	status = newTestExplainer(t).Status(context.Background())
	assert.False(t, status.Available)
	assert.Equal(t, SourceLocal, status.Active)
	assert.Empty(t, status.Providers)
}

func TestGetExplainer(t *testing.T) {
	SetExplainer(nil)
	defer SetExplainer(nil)

	e := GetExplainer()
	require.NotNil(t, e)
	assert.Same(t, e, GetExplainer())

	custom := newTestExplainer(t)
	SetExplainer(custom)
	assert.Same(t, custom, GetExplainer())
}
