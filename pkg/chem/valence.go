package chem

import (
	"strconv"
	"strings"
)

// ValenceElectrons 根据区（block）与族（group）估算价电子数
// f 区元素统一按 +3 价处理
func ValenceElectrons(block string, group int) int {
	switch block {
	case "s":
		// 氦位于 18 族但只有 2 个电子
		if group == 18 {
			return 2
		}
		return group
	case "p":
		return group - 10
	case "d":
		if group <= 10 {
			return group - 2
		}
		return group - 10
	default:
		return 3
	}
}

// ParseOxidationStates 解析以逗号分隔的氧化态（"+1,-1" -> [1 -1]），忽略不合法项
func ParseOxidationStates(raw string) []int {
	states := []int{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimPrefix(strings.TrimSpace(item), "+")
		if item == "" {
			continue
		}
		state, err := strconv.Atoi(item)
		if err != nil {
			continue
		}
		states = append(states, state)
	}
	return states
}
