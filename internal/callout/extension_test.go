package callout_test

import (
	"bytes"
	"testing"

	"github.com/ezerfernandes/mdcallout/internal/callout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
)

func convert(t *testing.T, source string, opts ...callout.Option) string {
	t.Helper()

	md := goldmark.New(goldmark.WithExtensions(callout.New(opts...)))

	var buf bytes.Buffer

	require.NoError(t, md.Convert([]byte(source), &buf))

	return buf.String()
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		html   string
	}{
		{
			name:   "question with default title",
			source: "::: question\n内容\n:::\n",
			html:   openFragment("question", "问题") + "<p>内容</p>\n</div>\n",
		},
		{
			name:   "question with custom title",
			source: "::: question 这是什么？\n内容\n:::\n",
			html:   openFragment("question", "这是什么？") + "<p>内容</p>\n</div>\n",
		},
		{
			name:   "example without space after marker",
			source: ":::example 用法演示\n内容\n:::\n",
			html:   openFragment("example", "用法演示") + "<p>内容</p>\n</div>\n",
		},
		{
			name:   "closing fence at end of input",
			source: "::: example\n内容\n:::",
			html:   openFragment("example", "示例") + "<p>内容</p>\n</div>\n",
		},
		{
			name:   "unclosed container",
			source: "::: example\n内容\n",
			html:   openFragment("example", "示例") + "<p>内容</p>\n</div>\n",
		},
		{
			name:   "empty container",
			source: "::: question\n:::\n",
			html:   openFragment("question", "问题") + "</div>\n",
		},
		{
			name:   "nested markdown",
			source: "::: example\n# 标题\n\n- a\n- b\n:::\n",
			html: openFragment("example", "示例") +
				"<h1>标题</h1>\n<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n</div>\n",
		},
		{
			name:   "interrupts a paragraph",
			source: "前文\n::: question\n内容\n:::\n",
			html:   "<p>前文</p>\n" + openFragment("question", "问题") + "<p>内容</p>\n</div>\n",
		},
		{
			name:   "nested containers",
			source: ":::: example 外层\n::: question\n内层\n:::\n::::\n",
			html: openFragment("example", "外层") +
				openFragment("question", "问题") + "<p>内层</p>\n</div>\n" +
				"</div>\n",
		},
		{
			name:   "unregistered kind stays text",
			source: "::: warning\nx\n:::\n",
			html:   "<p>::: warning\nx\n:::</p>\n",
		},
		{
			name:   "kind match is case sensitive",
			source: "::: Question\n",
			html:   "<p>::: Question</p>\n",
		},
		{
			name:   "two colons are not a fence",
			source: ":: question\n",
			html:   "<p>:: question</p>\n",
		},
		{
			name:   "indented code is not a fence",
			source: "    ::: question\n",
			html:   "<pre><code>::: question\n</code></pre>\n",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.html, convert(t, tt.source))
		})
	}
}

func TestConvertOptions(t *testing.T) {
	t.Parallel()

	tip := callout.Kind{Name: "tip", DefaultTitle: "提示"}

	t.Run("extra kind", func(t *testing.T) {
		t.Parallel()

		html := convert(t, "::: tip\nx\n:::\n\n::: question\ny\n:::\n", callout.WithKind(tip))

		assert.Equal(t,
			openFragment("tip", "提示")+"<p>x</p>\n</div>\n"+
				openFragment("question", "问题")+"<p>y</p>\n</div>\n",
			html)
	})

	t.Run("replaced kinds", func(t *testing.T) {
		t.Parallel()

		html := convert(t, "::: question\n", callout.WithKinds(tip))

		assert.Equal(t, "<p>::: question</p>\n", html)
	})

	t.Run("overridden default title", func(t *testing.T) {
		t.Parallel()

		html := convert(t, "::: question\n:::\n", callout.WithKind(callout.Kind{Name: "question", DefaultTitle: "Question"}))

		assert.Equal(t, openFragment("question", "Question")+"</div>\n", html)
	})

	t.Run("escaped titles", func(t *testing.T) {
		t.Parallel()

		html := convert(t, "::: question a < b & c\n:::\n", callout.WithEscapedTitles())

		assert.Equal(t, openFragment("question", "a &lt; b &amp; c")+"</div>\n", html)
	})

	t.Run("verbatim titles", func(t *testing.T) {
		t.Parallel()

		html := convert(t, "::: question a < b\n:::\n")

		assert.Equal(t, openFragment("question", "a < b")+"</div>\n", html)
	})
}
