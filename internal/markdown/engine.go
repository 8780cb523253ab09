// Package markdown converts Markdown documents with callout containers to HTML.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ezerfernandes/mdcallout/internal/callout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options controls the goldmark engine built by [New].
type Options struct {
	// Extensions names goldmark extensions to enable. Unknown names are
	// rejected by [New]; an empty list enables GFM.
	Extensions []string
	// Kinds registers extra container kinds on top of question and example.
	Kinds        []callout.Kind
	HardWraps    bool
	Unsafe       bool
	EscapeTitles bool
}

// Engine renders Markdown to HTML. It holds no per-call state and can be
// shared between goroutines.
type Engine struct {
	md goldmark.Markdown
}

// New builds an engine for the given options.
func New(opts Options) (*Engine, error) {
	exts, err := collectExtensions(opts.Extensions)
	if err != nil {
		return nil, err
	}

	exts = append(exts, callout.New(calloutOptions(opts)...))

	rendererOptions := []renderer.Option{}

	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	return &Engine{md: md}, nil
}

func calloutOptions(opts Options) []callout.Option {
	var res []callout.Option

	for _, kind := range opts.Kinds {
		res = append(res, callout.WithKind(kind))
	}

	if opts.EscapeTitles {
		res = append(res, callout.WithEscapedTitles())
	}

	return res
}

// Render converts a Markdown document to HTML. A leading front matter block
// is dropped from the output.
func (e *Engine) Render(source []byte) ([]byte, error) {
	_, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	if err := e.md.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}

	return buf.Bytes(), nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// ExtensionNames lists the names accepted in [Options.Extensions].
func ExtensionNames() []string {
	return []string{"definition", "footnote", "gfm", "linkify", "strikethrough", "table", "tasklist", "typographer"}
}

func collectExtensions(names []string) ([]goldmark.Extender, error) {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}, nil
	}

	var extenders []goldmark.Extender

	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if len(key) == 0 {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownExtension, name)
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders, nil
}

// ErrUnknownExtension is returned by [New] for an extension name it does not know.
var ErrUnknownExtension = errors.New("unknown extension")
