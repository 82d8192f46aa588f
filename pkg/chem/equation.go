package chem

import (
	"html"
	"strings"
	"unicode"
)

// EquationHTML 将方程式中的原子数渲染为下标，如 "2H₂ + O₂ → 2H₂O" -> "2H<sub>2</sub> + O<sub>2</sub> → 2H<sub>2</sub>O"
// 系数（位于化学式开头的数字）保持原样
func EquationHTML(equation string) string {
	var sb strings.Builder
	runes := []rune(equation)
	inSub := false
	for i, r := range runes {
		digit, isDigit := digitValue(r)
		if !isDigit {
			if inSub {
				sb.WriteString("</sub>")
				inSub = false
			}
			sb.WriteString(html.EscapeString(string(r)))
			continue
		}
		if !inSub && i > 0 && attachesSubscript(runes[i-1]) {
			sb.WriteString("<sub>")
			inSub = true
		}
		if inSub {
			sb.WriteRune(rune('0' + digit))
		} else {
			sb.WriteRune(r)
		}
	}
	if inSub {
		sb.WriteString("</sub>")
	}
	return sb.String()
}

// SubscriptFormula 将化学式中的原子数转为 Unicode 下标（"H2O" -> "H₂O"），用于 3D 场景标签
func SubscriptFormula(formula string) string {
	var sb strings.Builder
	runes := []rune(formula)
	inSub := false
	for i, r := range runes {
		if r >= '0' && r <= '9' && (inSub || (i > 0 && attachesSubscript(runes[i-1]))) {
			sb.WriteRune('₀' + (r - '0'))
			inSub = true
			continue
		}
		inSub = false
		sb.WriteRune(r)
	}
	return sb.String()
}

func attachesSubscript(prev rune) bool {
	return unicode.IsLetter(prev) || prev == ')' || prev == ']'
}

// ASCIIFormula 将 Unicode 下标转换为普通数字（"H₂O" -> "H2O"），用于按化学式查询
func ASCIIFormula(formula string) string {
	return strings.Map(func(r rune) rune {
		if r >= '₀' && r <= '₉' {
			return '0' + (r - '₀')
		}
		return r
	}, strings.TrimSpace(formula))
}
