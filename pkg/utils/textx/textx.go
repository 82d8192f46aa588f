package textx

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold 去除变音符号并转为小写，用于模糊搜索（Hidrógeno -> hidrogeno）
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// ContainsFold 判断 s 是否包含 substr（忽略大小写与变音符号）
func ContainsFold(s, substr string) bool {
	return strings.Contains(Fold(s), Fold(substr))
}
