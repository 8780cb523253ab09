package batch

import (
	"fmt"

	"github.com/gobwas/glob"
)

const (
	defaultInclude = "*.[mM][dD]"
	defaultExclude = "README.md"
)

// Filter selects files by base name: a file is processed when it matches
// an include pattern and no exclude pattern.
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFilter compiles include and exclude glob patterns. An empty include
// list selects Markdown files.
func NewFilter(include, exclude []string) (*Filter, error) {
	if len(include) == 0 {
		include = []string{defaultInclude}
	}

	inc, err := compile(include)
	if err != nil {
		return nil, err
	}

	exc, err := compile(exclude)
	if err != nil {
		return nil, err
	}

	return &Filter{include: inc, exclude: exc}, nil
}

// DefaultFilter selects Markdown files other than README.md.
func DefaultFilter() *Filter {
	filter, err := NewFilter(nil, []string{defaultExclude})
	if err != nil {
		panic(err)
	}

	return filter
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

// Match reports whether the file with the given base name is selected.
func (f *Filter) Match(name string) bool {
	if !matchAny(f.include, name) {
		return false
	}

	return !matchAny(f.exclude, name)
}

func matchAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}

	return false
}
