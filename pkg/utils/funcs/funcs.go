package funcs

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// NewFuncMap 模板方法（sprig + 业务方法），用于渲染 AI 提示词
func NewFuncMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()
	// 数值为空时显示占位文本
	funcMap["orNA"] = func(placeholder string, v *float64) any {
		if v == nil {
			return placeholder
		}
		return *v
	}
	// 按指定分隔符拼接列表（参数顺序便于管道使用）
	funcMap["joinWith"] = func(sep string, items []string) string {
		return strings.Join(items, sep)
	}
	return funcMap
}
