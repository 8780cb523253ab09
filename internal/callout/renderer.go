package callout

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

type containerRenderer struct {
	kinds  map[string]Kind
	escape bool
}

// NewRenderer returns a goldmark node renderer writing [Container] nodes as
// hint-container divs.
func NewRenderer(opts ...Option) renderer.NodeRenderer { //nolint:ireturn
	cfg := newConfig(opts)

	return &containerRenderer{kinds: cfg.index(), escape: cfg.escape}
}

func (r *containerRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindContainer, r.renderContainer)
}

func (r *containerRenderer) renderContainer(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	container, ok := node.(*Container)
	if !ok {
		return ast.WalkContinue, nil
	}

	kind, ok := r.kinds[container.Name]
	if !ok {
		kind = Kind{Name: container.Name, DefaultTitle: container.Name}
	}

	if !entering {
		_, _ = w.WriteString(kind.Close())

		return ast.WalkContinue, nil
	}

	title := Title(kind, container.Info)
	if r.escape {
		title = string(util.EscapeHTML([]byte(title)))
	}

	_, _ = w.WriteString(openHTML(kind.Name, title))

	return ast.WalkContinue, nil
}
