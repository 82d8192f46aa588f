package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/narasux/chemreact/pkg/ai"
	"github.com/narasux/chemreact/pkg/common/errcode"
	"github.com/narasux/chemreact/pkg/envs"
	"github.com/narasux/chemreact/pkg/logging"
	"github.com/narasux/chemreact/pkg/service"
	"github.com/narasux/chemreact/pkg/utils/ginx"
)

// ExplainReactionRequest ...
type ExplainReactionRequest struct {
	ReactionID int64  `json:"reaction_id" binding:"required,gt=0"`
	Level      string `json:"level"`
}

// ExplainElementRequest symbol 与 atomic_number 二选一，优先使用 symbol
type ExplainElementRequest struct {
	Symbol       string `json:"symbol"`
	AtomicNumber int    `json:"atomic_number"`
	Level        string `json:"level"`
}

// ReactionExplanation ...
type ReactionExplanation struct {
	ReactionID int64  `json:"reaction_id"`
	Name       string `json:"name"`
	Equation   string `json:"equation"`
	ai.Result
}

// ElementExplanation ...
type ElementExplanation struct {
	Symbol string `json:"symbol"`
	NameEs string `json:"name_es"`
	ai.Result
}

// AIStatus AI 服务状态与调用统计
type AIStatus struct {
	ai.Status
	Fallback        string           `json:"fallback"`
	Levels          []string         `json:"levels"`
	CacheTTLSeconds int64            `json:"cache_ttl_seconds"`
	Usage           []ai.SourceUsage `json:"usage"`
}

func getExplainer(c *gin.Context) *ai.Explainer {
	explainer := ai.GetExplainer()
	if explainer == nil {
		ginx.SetErrResp(c, http.StatusServiceUnavailable, errcode.AIUnavailable, "ai explainer unavailable")
	}
	return explainer
}

// 记录调用情况，失败不影响响应
func recordExplanation(c *gin.Context, kind, key string, result ai.Result, start time.Time) {
	ctx := context.WithoutCancel(c.Request.Context())
	if err := ai.RecordExplanation(ctx, ginx.GetClientIP(c), kind, key, result, time.Since(start)); err != nil {
		logging.GetAILogger().WithField("requestID", ginx.GetRequestID(c)).Warnf("record explanation failed: %s", err)
	}
}

// ExplainReaction 解释已验证的反应
func ExplainReaction(c *gin.Context) {
	var req ExplainReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	level, err := ai.ParseLevel(req.Level)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	reaction, err := service.GetReaction(ctx, req.ReactionID)
	if err != nil {
		respondError(c, err)
		return
	}
	// 未验证的反应不提供解释
	if !reaction.IsVerified {
		respondError(c, service.ErrReactionNotFound)
		return
	}

	explainer := getExplainer(c)
	if explainer == nil {
		return
	}
	start := time.Now()
	result, err := explainer.ExplainReaction(ctx, reaction, level)
	if err != nil {
		respondError(c, err)
		return
	}
	recordExplanation(c, ai.KindReaction, strconv.FormatInt(reaction.ID, 10), result, start)

	ginx.SetResp(c, http.StatusOK, ReactionExplanation{
		ReactionID: reaction.ID,
		Name:       reaction.Name,
		Equation:   reaction.Equation,
		Result:     result,
	})
}

// ExplainElement 解释元素
func ExplainElement(c *gin.Context) {
	var req ExplainElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	key := strings.TrimSpace(req.Symbol)
	if key == "" && req.AtomicNumber != 0 {
		key = strconv.Itoa(req.AtomicNumber)
	}
	if key == "" {
		ginx.SetErrResp(c, http.StatusBadRequest, errcode.InvalidParams, "symbol or atomic_number is required")
		return
	}
	level, err := ai.ParseLevel(req.Level)
	if err != nil {
		respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	element, err := service.GetElement(ctx, key)
	if err != nil {
		respondError(c, err)
		return
	}

	explainer := getExplainer(c)
	if explainer == nil {
		return
	}
	start := time.Now()
	result, err := explainer.ExplainElement(ctx, element, level)
	if err != nil {
		respondError(c, err)
		return
	}
	recordExplanation(c, ai.KindElement, element.Symbol, result, start)

	ginx.SetResp(c, http.StatusOK, ElementExplanation{
		Symbol: element.Symbol,
		NameEs: element.NameEs,
		Result: result,
	})
}

// GetAIStatus AI 服务状态
func GetAIStatus(c *gin.Context) {
	explainer := getExplainer(c)
	if explainer == nil {
		return
	}
	ctx := c.Request.Context()
	usage, err := ai.UsageStats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, AIStatus{
		Status:          explainer.Status(ctx),
		Fallback:        ai.SourceLocal,
		Levels:          ai.Levels,
		CacheTTLSeconds: int64(envs.AICacheTTL / time.Second),
		Usage:           usage,
	})
}
