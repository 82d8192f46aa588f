package markdownx

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML 将 AI 生成的 Markdown 解释转换为 HTML（忽略原始 HTML，避免注入）
func ToHTML(content string) string {
	extensions := parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(normalizeNewlines(content)))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank | html.SkipHTML
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})

	return wrapTailwindClass(string(markdown.Render(doc, renderer)))
}

// 解释面板中各标签使用的 tailwind 样式
var FullMatchHtmlTagClassMap = map[string]string{
	"p":      "my-2",
	"ol":     "pl-1 list-decimal list-inside",
	"ul":     "pl-4 list-disc",
	"li":     "ml-2 my-1",
	"code":   "bg-slate-100 text-emerald-700",
	"strong": "font-semibold text-slate-900",
}

var PrefixMatchHtmlTagClassMap = map[string]string{
	"h1": "mt-4 mb-2 font-semibold text-2xl",
	"h2": "mt-4 mb-2 font-semibold text-xl",
	"h3": "mt-3 mb-2 font-semibold text-lg",
	"h4": "mt-3 mb-1 font-semibold text-base",
	"a":  "text-sky-600",
}

var crlfRegex = regexp.MustCompile(`\r\n?`)

func normalizeNewlines(content string) string {
	return crlfRegex.ReplaceAllString(content, "\n")
}

// wrapTailwindClass 为 markdown 转换成的 html 中的标签添加 tailwind css 类
func wrapTailwindClass(htmlContent string) string {
	for tagName, class := range FullMatchHtmlTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
	}
	for tagName, class := range PrefixMatchHtmlTagClassMap {
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+">", "<"+tagName+" class=\""+class+"\">")
		htmlContent = strings.ReplaceAll(htmlContent, "<"+tagName+" ", "<"+tagName+" class=\""+class+"\" ")
	}
	return htmlContent
}
