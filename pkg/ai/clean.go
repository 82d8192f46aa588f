package ai

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	thinkTagRegex     = regexp.MustCompile(`(?s)<think>.*?</think>`)
	thinkingTagRegex  = regexp.MustCompile(`(?is)\[THINKING\].*?\[/THINKING\]`)
	thinkingNoteRegex = regexp.MustCompile(`(?s)\*\*Pensando\*\*:.*?(?:\n\n|\z)`)
	answerPrefixRegex = regexp.MustCompile(`(?i)^(Explicación:|Tu explicación:|Respuesta:)\s*`)
	blankLinesRegex   = regexp.MustCompile(`\n{3,}`)
	multiSpaceRegex   = regexp.MustCompile(` {2,}`)
)

// CleanResponse 清理模型回答：去掉思考过程与常见前缀，压缩多余的空行与空格
func CleanResponse(response string) string {
	response = thinkTagRegex.ReplaceAllString(response, "")
	response = thinkingTagRegex.ReplaceAllString(response, "")
	response = thinkingNoteRegex.ReplaceAllString(response, "\n\n")
	response = answerPrefixRegex.ReplaceAllString(strings.TrimSpace(response), "")
	response = blankLinesRegex.ReplaceAllString(response, "\n\n")
	response = multiSpaceRegex.ReplaceAllString(response, " ")
	return strings.TrimSpace(response)
}

// 回答是否足够长
func usable(cleaned string) bool {
	return utf8.RuneCountInString(cleaned) >= minExplanationLength
}
