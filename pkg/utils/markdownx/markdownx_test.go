package markdownx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	html := ToHTML("## Análisis\r\n\r\nEl **sodio** reacciona.\n\n- uno\n- dos\n")

	assert.Contains(t, html, `<h2 class="mt-4 mb-2 font-semibold text-xl"`)
	assert.Contains(t, html, `<strong class="font-semibold text-slate-900">sodio</strong>`)
	assert.Contains(t, html, `<ul class="pl-4 list-disc">`)
	assert.Contains(t, html, `<li class="ml-2 my-1">uno</li>`)
}

func TestToHTMLSkipsRawHTML(t *testing.T) {
	html := ToHTML("texto <script>alert(1)</script>")

	assert.NotContains(t, html, "<script>")
}
