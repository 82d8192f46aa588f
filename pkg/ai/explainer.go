package ai

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/infras/cache"
	"github.com/narasux/chemreact/pkg/infras/tracing"
	"github.com/narasux/chemreact/pkg/logging"
	"github.com/narasux/chemreact/pkg/model"
	"github.com/narasux/chemreact/pkg/utils/ctxx"
	"github.com/narasux/chemreact/pkg/utils/markdownx"
)

const (
	tracerName = "github.com/narasux/chemreact/pkg/ai"
	// 最多缓存的解释结果数量（元素数 * 深度 + 反应数 * 深度 远小于该值）
	maxCachedResults = 2048
)

var (
	explainer     *Explainer
	explainerLock sync.RWMutex
)

// InitExplainer 根据配置初始化全局 Explainer
func InitExplainer(cfg envs.AIConfig) error {
	e, err := NewExplainer(NewProviders(cfg), cfg.AvailabilityTTL, envs.AICacheTTL)
	if err != nil {
		return err
	}
	SetExplainer(e)
	return nil
}

// SetExplainer 替换全局 Explainer（单元测试使用）
func SetExplainer(e *Explainer) {
	explainerLock.Lock()
	defer explainerLock.Unlock()
	explainer = e
}

// GetExplainer 获取全局 Explainer，未初始化时只使用本地模板
func GetExplainer() *Explainer {
	explainerLock.RLock()
	e := explainer
	explainerLock.RUnlock()
	if e != nil {
		return e
	}

	explainerLock.Lock()
	defer explainerLock.Unlock()
	if explainer == nil {
		e, err := NewExplainer(nil, time.Minute, envs.AICacheTTL)
		if err != nil {
			logging.GetAILogger().Errorf("init local explainer failed: %s", err)
			return nil
		}
		explainer = e
	}
	return explainer
}

type providerState struct {
	Available bool
	Reason    string
}

// ProviderStatus Provider 可用状态
type ProviderStatus struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Status AI 服务整体状态
type Status struct {
	Available bool             `json:"available"`
	Active    string           `json:"active"`
	Providers []ProviderStatus `json:"providers"`
}

// Explainer 依次尝试各 Provider 生成解释，全部失败时回退到本地模板
type Explainer struct {
	providers    []Provider
	availability *cache.Cache[providerState]
	results      *cache.Cache[Result]
	countTokens  func(string) int
	tracer       trace.Tracer
}

// Option ...
type Option func(*Explainer)

// WithTokenCounter 替换提示词 token 计数方法
func WithTokenCounter(fn func(string) int) Option {
	return func(e *Explainer) {
		e.countTokens = fn
	}
}

// NewExplainer ...
func NewExplainer(
	providers []Provider, availabilityTTL, resultTTL time.Duration, opts ...Option,
) (*Explainer, error) {
	availability, err := cache.New[providerState](int64(max(len(providers), 1))*4, availabilityTTL)
	if err != nil {
		return nil, err
	}
	results, err := cache.New[Result](maxCachedResults, resultTTL)
	if err != nil {
		return nil, err
	}

	e := &Explainer{
		providers:    providers,
		availability: availability,
		results:      results,
		countTokens:  CountTokens,
		tracer:       tracing.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// ExplainElement 生成元素解释
func (e *Explainer) ExplainElement(ctx context.Context, element *model.Element, level string) (Result, error) {
	prompt, err := BuildElementPrompt(element, level)
	if err != nil {
		return Result{}, err
	}
	return e.explain(ctx, KindElement, element.Symbol, level, prompt, elementTokenLimits[level], func() (string, error) {
		return LocalElementExplanation(element, level)
	})
}

// ExplainReaction 生成反应解释
func (e *Explainer) ExplainReaction(ctx context.Context, reaction *model.Reaction, level string) (Result, error) {
	prompt, err := BuildReactionPrompt(reaction, level)
	if err != nil {
		return Result{}, err
	}
	key := strconv.FormatInt(reaction.ID, 10)
	return e.explain(ctx, KindReaction, key, level, prompt, reactionTokenLimits[level], func() (string, error) {
		return LocalReactionExplanation(reaction, level)
	})
}

func (e *Explainer) explain(
	ctx context.Context,
	kind, key, level, prompt string,
	maxTokens int,
	fallback func() (string, error),
) (Result, error) {
	logger := logging.GetAILogger().WithField("requestID", ctxx.GetRequestID(ctx))

	cacheKey := cache.Key(kind, key, level)
	if result, ok := e.results.Get(cacheKey); ok {
		result.Cached = true
		return result, nil
	}

	promptTokens := e.countTokens(prompt)
	for _, p := range e.providers {
		if !e.available(ctx, p) {
			continue
		}
		text, err := e.generate(ctx, p, kind, prompt, maxTokens)
		if err != nil {
			logger.Warnf("provider %s generate %s %s failed: %s", p.Name(), kind, key, err)
			continue
		}
		cleaned := CleanResponse(text)
		if !usable(cleaned) {
			logger.Warnf("provider %s returned unusable explanation for %s %s", p.Name(), kind, key)
			continue
		}

		result := newResult(cleaned, p.Name(), level, promptTokens)
		e.results.Set(cacheKey, result)
		return result, nil
	}

	// 本地模板结果不缓存，Provider 恢复后可立即生效
	text, err := fallback()
	if err != nil {
		return Result{}, errors.Wrapf(err, "local explanation for %s %s", kind, key)
	}
	return newResult(text, SourceLocal, level, 0), nil
}

func newResult(text, source, level string, promptTokens int) Result {
	return Result{
		Explanation:     text,
		ExplanationHTML: markdownx.ToHTML(text),
		Source:          source,
		Level:           level,
		PromptTokens:    promptTokens,
	}
}

func (e *Explainer) generate(ctx context.Context, p Provider, kind, prompt string, maxTokens int) (string, error) {
	ctx, span := e.tracer.Start(ctx, "ai.generate", trace.WithAttributes(
		attribute.String("ai.provider", p.Name()),
		attribute.String("ai.kind", kind),
		attribute.Int("ai.max_tokens", maxTokens),
	))
	defer span.End()

	text, err := p.Generate(ctx, prompt, maxTokens)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("ai.response_length", len(text)))
	return text, nil
}

// 检查 Provider 是否可用，结果按 availabilityTTL 缓存
func (e *Explainer) available(ctx context.Context, p Provider) bool {
	return e.state(ctx, p).Available
}

func (e *Explainer) state(ctx context.Context, p Provider) providerState {
	if state, ok := e.availability.Get(p.Name()); ok {
		return state
	}
	state := providerState{Available: true}
	if err := p.Available(ctx); err != nil {
		state = providerState{Available: false, Reason: err.Error()}
		logging.GetAILogger().Infof("provider %s unavailable: %s", p.Name(), err)
	}
	e.availability.Set(p.Name(), state)
	return state
}

// Status 各 Provider 的可用状态，active 为当前会被使用的来源
func (e *Explainer) Status(ctx context.Context) Status {
	status := Status{Active: SourceLocal, Providers: []ProviderStatus{}}
	for _, p := range e.providers {
		state := e.state(ctx, p)
		status.Providers = append(status.Providers, ProviderStatus{
			Name: p.Name(), Available: state.Available, Reason: state.Reason,
		})
		if state.Available && !status.Available {
			status.Available = true
			status.Active = p.Name()
		}
	}
	return status
}

// ClearCache 清空解释结果与可用性缓存
func (e *Explainer) ClearCache() {
	e.results.Clear()
	e.availability.Clear()
}
