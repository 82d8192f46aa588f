package ai

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"

	"github.com/narasux/chemreact/pkg/logging"
)

// 统计提示词 token 数使用的编码
const promptEncoding = "cl100k_base"

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
)

// CountTokens 统计提示词的 token 数；编码表不可用（如离线环境）时按 4 个字符一个 token 估算
func CountTokens(text string) int {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding(promptEncoding)
		if err != nil {
			logging.GetAILogger().Warnf("tiktoken encoding %s unavailable, fallback to estimation: %s", promptEncoding, err)
			return
		}
		encoding = enc
	})
	if encoding == nil {
		return EstimateTokens(text)
	}
	return len(encoding.EncodeOrdinary(text))
}

// EstimateTokens 粗略估算 token 数
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return max(n/4, 1)
}
