package callout

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// KindContainer is the goldmark node kind of [Container].
var KindContainer = ast.NewNodeKind("CalloutContainer")

// Container is a block node holding the children of a `:::` fenced container.
type Container struct {
	ast.BaseBlock

	// Name is the registered container kind.
	Name string
	// Info is the trimmed text following the fence marker, kind name included.
	Info string

	fence  int
	start  int
	stop   int
	closed bool
}

// NewContainer returns a container node of the given kind.
func NewContainer(kind, info string) *Container {
	return &Container{Name: kind, Info: info}
}

// Kind implements ast.Node.
func (n *Container) Kind() ast.NodeKind {
	return KindContainer
}

// Dump implements ast.Node.
func (n *Container) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Name":  n.Name,
		"Info":  n.Info,
		"Fence": strconv.Itoa(n.fence),
	}, nil)
}
