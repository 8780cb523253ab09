package callout

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Callout describes one container found in a Markdown document.
type Callout struct {
	Kind      string
	Title     string
	Info      string
	StartLine int
	EndLine   int
	Depth     int
}

// Callouts is a list of containers in document order.
type Callouts []*Callout

// Walker is a callback invoked for each container found by [Walk].
type Walker func(callout *Callout) error

// Walk parses a Markdown document and calls walker for every container of a
// registered kind, outer containers first.
func Walk(source []byte, walker Walker, opts ...Option) error {
	md := goldmark.New(goldmark.WithExtensions(New(opts...)))
	root := md.Parser().Parse(text.NewReader(source))
	kinds := newConfig(opts).index()

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		container := asContainer(node, entering)
		if container == nil {
			return ast.WalkContinue, nil
		}

		if err := walker(extractCallout(container, kinds, source)); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkContinue, nil
	})
}

// Collect returns every container of a Markdown document in document order.
func Collect(source []byte, opts ...Option) (Callouts, error) {
	var callouts Callouts

	err := Walk(source, func(callout *Callout) error {
		callouts = append(callouts, callout)

		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return callouts, nil
}

func asContainer(node ast.Node, entering bool) *Container {
	if !entering || node.Kind() != KindContainer {
		return nil
	}

	if container, ok := node.(*Container); ok {
		return container
	}

	return nil
}

func extractCallout(container *Container, kinds map[string]Kind, source []byte) *Callout {
	callout := &Callout{
		Kind:  container.Name,
		Title: Title(kinds[container.Name], container.Info),
		Info:  container.Info,
		Depth: depth(container),
	}

	callout.StartLine = lineAt(source, container.start)

	stop := container.stop
	if !container.closed && stop > container.start {
		stop--
	}

	callout.EndLine = lineAt(source, stop)

	return callout
}

func depth(node ast.Node) int {
	var d int

	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Kind() == KindContainer {
			d++
		}
	}

	return d
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}
