// Package rewrite applies regular expression rewrite rules to Markdown sources.
//
// Patterns use .NET regular expression syntax (lookbehind included) and
// replacements refer to groups as $1, ${name}.
package rewrite

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/google/shlex"
)

// Rule replaces every match of a pattern with a replacement template.
type Rule struct {
	Pattern     string
	Replacement string

	re *regexp2.Regexp
}

// Compile returns a rule for the given pattern and replacement.
func Compile(pattern, replacement string) (*Rule, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", pattern, err)
	}

	return &Rule{Pattern: pattern, Replacement: replacement, re: re}, nil
}

// MustCompile is like [Compile] but panics on an invalid pattern.
func MustCompile(pattern, replacement string) *Rule {
	rule, err := Compile(pattern, replacement)
	if err != nil {
		panic(err)
	}

	return rule
}

// ParseRule parses a shell-quoted `PATTERN REPLACEMENT` pair, such as
// `'\s+' '%20'`.
func ParseRule(spec string) (*Rule, error) {
	words, err := shlex.Split(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	if len(words) != 2 { //nolint:gomnd
		return nil, fmt.Errorf("%w: want PATTERN REPLACEMENT, got %d words", ErrInvalidRule, len(words))
	}

	return Compile(words[0], words[1])
}

// Apply rewrites input and reports how many matches were replaced.
func (r *Rule) Apply(input string) (string, int, error) {
	count, err := r.count(input)
	if err != nil || count == 0 {
		return input, 0, err
	}

	output, err := r.re.Replace(input, r.Replacement, -1, -1)
	if err != nil {
		return input, 0, err
	}

	return output, count, nil
}

func (r *Rule) count(input string) (int, error) {
	var count int

	m, err := r.re.FindStringMatch(input)

	for ; m != nil && err == nil; m, err = r.re.FindNextMatch(m) {
		count++
	}

	return count, err
}

// DefaultRules converts Obsidian image embeds to Markdown images and
// percent-encodes whitespace in image link targets.
func DefaultRules() []*Rule {
	return []*Rule{
		MustCompile(`!\[\[([^|\]]+)(?:\|[^\]]+)?\]\]`, `![]($1)`),
		MustCompile(`(?<=!\[[^\]]*\]\([^)]*)\s(?=[^)]*\))`, `%20`),
	}
}

// ErrInvalidRule is returned by [ParseRule] for a malformed rule.
var ErrInvalidRule = errors.New("invalid rewrite rule")
