package rewrite_test

import (
	"testing"

	"github.com/ezerfernandes/mdcallout/internal/rewrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		output string
		count  int
	}{
		{
			name:   "obsidian embed",
			input:  "图示：![[topology.png]]\n",
			output: "图示：![](topology.png)\n",
			count:  1,
		},
		{
			name:   "obsidian embed with size",
			input:  "![[topology.png|300]]",
			output: "![](topology.png)",
			count:  1,
		},
		{
			name:   "obsidian embed with spaces",
			input:  "![[net diagram.png|300]]",
			output: "![](net%20diagram.png)",
			count:  2,
		},
		{
			name:   "spaces in image target",
			input:  "![alt text](my pic.png) and more words",
			output: "![alt text](my%20pic.png) and more words",
			count:  1,
		},
		{
			name:   "links untouched",
			input:  "[a link](some page.md)",
			output: "[a link](some page.md)",
			count:  0,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			output, count, err := rewrite.NewProcessor().Process("doc.md", []byte(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.output, string(output))
			assert.Equal(t, tt.count, count)
		})
	}
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	rule, err := rewrite.ParseRule(`'(?<=\d)\s+(?=\d)' '-'`)
	require.NoError(t, err)

	assert.Equal(t, `(?<=\d)\s+(?=\d)`, rule.Pattern)
	assert.Equal(t, "-", rule.Replacement)

	output, count, err := rule.Apply("1 2  3 x 4")
	require.NoError(t, err)
	assert.Equal(t, "1-2-3 x 4", output)
	assert.Equal(t, 2, count)
}

func TestParseRuleInvalid(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"", "one", "a b c", `'unterminated`} {
		_, err := rewrite.ParseRule(spec)
		assert.ErrorIs(t, err, rewrite.ErrInvalidRule, spec)
	}

	_, err := rewrite.ParseRule(`'(' 'x'`)
	require.Error(t, err)
}

func TestProcessorRules(t *testing.T) {
	t.Parallel()

	p := rewrite.NewProcessor(
		rewrite.MustCompile(`colour`, `color`),
		rewrite.MustCompile(`(\w+)@example\.com`, `$1 at example.com`),
	)

	output, count, err := p.Process("doc.md", []byte("colour colour bob@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "color color bob at example.com", string(output))
	assert.Equal(t, 3, count)
	assert.Equal(t, "rewrite", p.Name())
}
