// Package chem 提供元素符号、化学式与方程式相关的纯函数工具
package chem

import (
	"strings"
	"unicode"

	"github.com/TencentBlueKing/gopkg/collection/set"
)

// MaxSymbolLength 元素符号最大长度（如 Uue）
const MaxSymbolLength = 3

// NormalizeSymbol 规范化元素符号（" na " -> "Na"），不合法时返回空字符串
func NormalizeSymbol(raw string) string {
	raw = strings.TrimSpace(raw)
	runes := []rune(raw)
	if len(runes) == 0 || len(runes) > MaxSymbolLength {
		return ""
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			return ""
		}
	}
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}

// NormalizeSymbols 批量规范化元素符号：去除空值、按首次出现顺序去重，并返回不合法的原始输入
func NormalizeSymbols(raws []string) (symbols []string, invalid []string) {
	seen := set.NewStringSet()
	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		symbol := NormalizeSymbol(raw)
		if symbol == "" {
			invalid = append(invalid, raw)
			continue
		}
		if seen.Has(symbol) {
			continue
		}
		seen.Add(symbol)
		symbols = append(symbols, symbol)
	}
	return symbols, invalid
}

// NobleGases 稀有气体
var NobleGases = set.NewStringSetWithValues([]string{"He", "Ne", "Ar", "Kr", "Xe", "Rn", "Og"})

// IsNobleGas 判断是否为稀有气体
func IsNobleGas(symbol string) bool {
	return NobleGases.Has(symbol)
}
