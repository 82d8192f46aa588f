// Package ai 为元素与反应生成自然语言解释：依次尝试 Ollama、Gemini，均不可用时使用本地模板
package ai

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// 解释深度
const (
	LevelBasic        = "basic"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"

	DefaultLevel = LevelIntermediate
)

// Levels 支持的解释深度
var Levels = []string{LevelBasic, LevelIntermediate, LevelAdvanced}

// 解释来源
const (
	SourceOllama = "ollama"
	SourceGemini = "gemini"
	SourceLocal  = "local_template"
)

// 解释对象类型
const (
	KindElement  = "element"
	KindReaction = "reaction"
)

// 清理后少于该字符数的回答视为失败
const minExplanationLength = 20

// 不同深度下的最大生成 token 数
var (
	elementTokenLimits  = map[string]int{LevelBasic: 300, LevelIntermediate: 500, LevelAdvanced: 800}
	reactionTokenLimits = map[string]int{LevelBasic: 200, LevelIntermediate: 350, LevelAdvanced: 500}
)

// ErrInvalidLevel 未定义的解释深度
var ErrInvalidLevel = errors.New("invalid level")

// ParseLevel 解析解释深度，为空时使用默认值
func ParseLevel(raw string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(raw))
	if level == "" {
		return DefaultLevel, nil
	}
	if !lo.Contains(Levels, level) {
		return "", errors.WithMessagef(ErrInvalidLevel, "level must be one of %s", strings.Join(Levels, ", "))
	}
	return level, nil
}

// Result 解释结果
type Result struct {
	Explanation     string `json:"explanation"`
	ExplanationHTML string `json:"explanation_html"`
	Source          string `json:"source"`
	Level           string `json:"level"`
	PromptTokens    int    `json:"prompt_tokens"`
	Cached          bool   `json:"cached"`
}
