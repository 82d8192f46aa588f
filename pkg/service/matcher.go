package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TencentBlueKing/gopkg/collection/set"

	"github.com/narasux/chemreact/pkg/chem"
	"github.com/narasux/chemreact/pkg/model"
)

const (
	// MinSelection 最少提交的元素数量
	MinSelection = 1
	// MaxSelection 最多提交的元素数量
	MaxSelection = 10
	// MaxPartialMatches 部分匹配最多返回的反应数量
	MaxPartialMatches = 5
	// MaxSuggestions 未找到反应时最多返回的建议数量
	MaxSuggestions = 8
	// MaxHints 最多返回的提示数量
	MaxHints = 5
	// 每个已选元素参与计算提示的反应数量
	hintReactionsPerElement = 3
)

// 匹配类型
const (
	MatchExact   = "exact"
	MatchPartial = "partial"
	MatchNone    = "none"
)

// ValidationResult 元素组合的校验结果
type ValidationResult struct {
	Found             bool              `json:"found"`
	Elements          []string          `json:"elements"`
	MatchType         string            `json:"match_type"`
	Message           string            `json:"message"`
	Reactions         []ReactionSummary `json:"reactions"`
	Suggestions       []ReactionSummary `json:"suggestions"`
	SuggestionMessage string            `json:"suggestion_message,omitempty"`
	Hints             []string          `json:"hints"`
}

// MatchReactions 在反应列表中查找与所选元素匹配的反应（纯函数）：
// 1. 反应物元素集合与所选元素完全一致的反应全部返回
// 2. 否则返回所选元素为反应物元素子集的反应（单个元素时只需有交集）
// 3. 否则给出按重合元素数量排序的建议与提示
//
// symbols 需已规范化、去重；elements 用于提示中的元素名称
func MatchReactions(symbols []string, reactions model.Reactions, elements model.Elements) ValidationResult {
	selected := set.NewStringSetWithValues(symbols)
	result := ValidationResult{
		Elements:    symbols,
		Reactions:   []ReactionSummary{},
		Suggestions: []ReactionSummary{},
		Hints:       []string{},
	}

	exact, partial := []ReactionSummary{}, []ReactionSummary{}
	for idx := range reactions {
		r := &reactions[idx]
		reactants := set.NewStringSetWithValues(r.ReactantElements())
		switch {
		case sameSet(selected, reactants):
			exact = append(exact, NewReactionSummary(r))
		case isSubset(selected, reactants) || (selected.Size() == 1 && overlap(selected, reactants) > 0):
			partial = append(partial, NewReactionSummary(r))
		}
	}

	if len(exact) != 0 {
		result.Found, result.MatchType, result.Reactions = true, MatchExact, exact
		result.Message = foundMessage(len(exact))
		return result
	}
	if len(partial) != 0 {
		partial = partial[:min(len(partial), MaxPartialMatches)]
		result.Found, result.MatchType, result.Reactions = true, MatchPartial, partial
		result.Message = foundMessage(len(partial))
		return result
	}

	result.MatchType = MatchNone
	result.Message = noReactionMessage(symbols)
	result.Suggestions = suggestReactions(selected, reactions)
	if len(result.Suggestions) != 0 {
		result.SuggestionMessage = suggestionMessage(symbols)
	}
	result.Hints = buildHints(symbols, reactions, elements)
	return result
}

// 按重合元素数量降序排列（数量相同时保持原顺序）
func suggestReactions(selected *set.StringSet, reactions model.Reactions) []ReactionSummary {
	type candidate struct {
		reaction *model.Reaction
		overlap  int
	}
	candidates := []candidate{}
	for idx := range reactions {
		r := &reactions[idx]
		n := overlap(selected, set.NewStringSetWithValues(r.ReactantElements()))
		if n > 0 {
			candidates = append(candidates, candidate{reaction: r, overlap: n})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})

	suggestions := []ReactionSummary{}
	for _, c := range candidates[:min(len(candidates), MaxSuggestions)] {
		suggestions = append(suggestions, NewReactionSummary(c.reaction))
	}
	return suggestions
}

// 对每个已选元素（按原子序数），在其作为反应物的前几个反应中找出尚未选择的反应物元素
func buildHints(symbols []string, reactions model.Reactions, elements model.Elements) []string {
	selected := set.NewStringSetWithValues(symbols)
	ordered := make([]string, len(symbols))
	copy(ordered, symbols)
	sort.SliceStable(ordered, func(i, j int) bool {
		return atomicNumberOf(elements, ordered[i]) < atomicNumberOf(elements, ordered[j])
	})

	hints := []string{}
	seen := set.NewStringSet()
	for _, symbol := range ordered {
		related := 0
		for idx := range reactions {
			if related >= hintReactionsPerElement {
				break
			}
			reactants := reactions[idx].ReactantElements()
			if !containsString(reactants, symbol) {
				continue
			}
			related++
			for _, other := range reactants {
				if selected.Has(other) {
					continue
				}
				hint := fmt.Sprintf("Prueba agregar %s", other)
				if e := elements.GetBySymbol(other); e != nil {
					hint = fmt.Sprintf("Prueba agregar %s (%s)", other, e.NameEs)
				}
				if seen.Has(hint) {
					continue
				}
				seen.Add(hint)
				hints = append(hints, hint)
			}
		}
	}
	return hints[:min(len(hints), MaxHints)]
}

func foundMessage(n int) string {
	return fmt.Sprintf("Se encontraron %d reacción(es)", n)
}

// 未找到反应时的提示信息，包含稀有气体时单独说明
func noReactionMessage(symbols []string) string {
	joined := strings.Join(symbols, ", ")
	nobles := []string{}
	for _, s := range symbols {
		if chem.IsNobleGas(s) {
			nobles = append(nobles, s)
		}
	}
	if len(nobles) == 0 {
		return fmt.Sprintf(
			"No se encontró una reacción conocida entre %s. Prueba con una combinación diferente.", joined,
		)
	}

	nobleText := fmt.Sprintf("%s es un gas noble", nobles[0])
	if len(nobles) > 1 {
		nobleText = fmt.Sprintf("%s son gases nobles", strings.Join(nobles, ", "))
	}
	return fmt.Sprintf(
		"Los elementos %s no forman una reacción conocida. Nota: %s y generalmente no reaccionan "+
			"debido a su configuración electrónica estable.",
		joined, nobleText,
	)
}

func suggestionMessage(symbols []string) string {
	if len(symbols) == 1 {
		return fmt.Sprintf("Prueba con estas reacciones que incluyen %s:", symbols[0])
	}
	return "Prueba con estas combinaciones que incluyen alguno de los elementos seleccionados:"
}

func sameSet(a, b *set.StringSet) bool {
	return a.Size() == b.Size() && isSubset(a, b)
}

// a 是否为 b 的子集
func isSubset(a, b *set.StringSet) bool {
	for _, s := range a.ToSlice() {
		if !b.Has(s) {
			return false
		}
	}
	return true
}

func overlap(a, b *set.StringSet) int {
	n := 0
	for _, s := range a.ToSlice() {
		if b.Has(s) {
			n++
		}
	}
	return n
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

// 未知元素排在最后
func atomicNumberOf(elements model.Elements, symbol string) int {
	if e := elements.GetBySymbol(symbol); e != nil {
		return e.AtomicNumber
	}
	return int(^uint(0) >> 1)
}
