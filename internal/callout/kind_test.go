package callout_test

import (
	"testing"

	"github.com/ezerfernandes/mdcallout/internal/callout"
	"github.com/stretchr/testify/assert"
)

func openFragment(kind, title string) string {
	return `<div class="hint-container ` + kind + `">` + "\n" +
		`<p class="hint-container-title">` + title + "</p>\n"
}

func TestRenderOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  string
		info  string
		title string
	}{
		{name: "question default", kind: "question", info: "question", title: "问题"},
		{name: "question custom", kind: "question", info: "question 这是什么？", title: "这是什么？"},
		{name: "example default", kind: "example", info: "example", title: "示例"},
		{name: "example custom", kind: "example", info: "example 用法演示", title: "用法演示"},
		{name: "empty info", kind: "question", info: "", title: "问题"},
		{name: "trailing blanks", kind: "example", info: "example   \t ", title: "示例"},
		{name: "padded title", kind: "question", info: "  question   为什么  ", title: "为什么"},
		{name: "title repeats kind", kind: "question", info: "question question mark", title: "question mark"},
		{name: "no kind prefix", kind: "example", info: "自定义", title: "自定义"},
		{name: "html kept verbatim", kind: "question", info: "question <b>粗体</b>", title: "<b>粗体</b>"},
		{name: "unknown kind", kind: "note", info: "note", title: "note"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, openFragment(tt.kind, tt.title), callout.RenderOpen(tt.kind, tt.info))
		})
	}
}

func TestRenderClose(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"question", "example", "", "anything"} {
		assert.Equal(t, "</div>\n", callout.RenderClose(kind))
	}

	assert.Equal(t, "</div>\n", callout.Question.Close())
}

func TestRenderIsPure(t *testing.T) {
	t.Parallel()

	first := callout.RenderOpen("example", "example 用法演示")
	second := callout.RenderOpen("example", "example 用法演示")

	assert.Equal(t, first, second)
	assert.Equal(t, callout.RenderClose("example"), callout.RenderClose("example"))
}

func TestKindOpen(t *testing.T) {
	t.Parallel()

	tip := callout.Kind{Name: "tip", DefaultTitle: "提示"}

	assert.Equal(t, openFragment("tip", "提示"), tip.Open("tip"))
	assert.Equal(t, openFragment("tip", "小技巧"), tip.Open("tip 小技巧"))
	assert.Equal(t, "提示", callout.Title(tip, "  tip  "))
}
