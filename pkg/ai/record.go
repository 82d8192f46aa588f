package ai

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/narasux/chemreact/pkg/infras/database"
	"github.com/narasux/chemreact/pkg/model"
)

// RecordExplanation 记录一次解释调用
func RecordExplanation(
	ctx context.Context, ip, kind, targetKey string, result Result, latency time.Duration,
) error {
	record := model.ExplanationRecord{
		IP:           ip,
		Kind:         kind,
		TargetKey:    targetKey,
		Level:        result.Level,
		Source:       result.Source,
		Cached:       result.Cached,
		PromptTokens: result.PromptTokens,
		LatencyMs:    latency.Milliseconds(),
	}
	return errors.Wrap(database.Client(ctx).Create(&record).Error, "create explanation record")
}

// SourceUsage 按来源统计的调用次数
type SourceUsage struct {
	Source       string `json:"source"`
	Count        int64  `json:"count"`
	CachedCount  int64  `json:"cached_count"`
	PromptTokens int64  `json:"prompt_tokens"`
}

// UsageStats 按来源汇总解释调用记录
func UsageStats(ctx context.Context) ([]SourceUsage, error) {
	stats := []SourceUsage{}
	err := database.Client(ctx).
		Model(&model.ExplanationRecord{}).
		Select(
			"source, COUNT(*) AS count, " +
				"SUM(CASE WHEN cached THEN 1 ELSE 0 END) AS cached_count, " +
				"COALESCE(SUM(prompt_tokens), 0) AS prompt_tokens",
		).
		Group("source").
		Order("source").
		Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "query explanation usage")
	}
	return stats, nil
}
