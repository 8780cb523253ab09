// Package callout renders `::: question` and `::: example` fenced containers
// as hint-container blocks through a goldmark extension.
package callout

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

const (
	parserPriority   = 100
	rendererPriority = 500
)

// Option configures the container kinds and rendering of the extension.
type Option func(*config)

type config struct {
	kinds  []Kind
	escape bool
}

// WithKinds replaces the registered container kinds.
func WithKinds(kinds ...Kind) Option {
	return func(c *config) {
		c.kinds = append([]Kind(nil), kinds...)
	}
}

// WithKind registers one more container kind, replacing a kind of the same
// name.
func WithKind(kind Kind) Option {
	return func(c *config) {
		for i := range c.kinds {
			if c.kinds[i].Name == kind.Name {
				c.kinds[i] = kind

				return
			}
		}

		c.kinds = append(c.kinds, kind)
	}
}

// WithEscapedTitles HTML-escapes container titles. Titles are written
// verbatim otherwise.
func WithEscapedTitles() Option {
	return func(c *config) {
		c.escape = true
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{kinds: DefaultKinds()}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *config) index() map[string]Kind {
	index := make(map[string]Kind, len(c.kinds))

	for _, kind := range c.kinds {
		index[kind.Name] = kind
	}

	return index
}

// Extender registers the container parser and renderer with goldmark.
type Extender struct {
	opts []Option
}

// New returns the callout extension. Without options it registers the
// question and example containers.
func New(opts ...Option) *Extender {
	return &Extender{opts: opts}
}

// Extend implements goldmark.Extender.
func (e *Extender) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(NewParser(e.opts...), parserPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(NewRenderer(e.opts...), rendererPriority),
	))
}
