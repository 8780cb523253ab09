package callout

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	fenceChar = ':'
	minFence  = 3
	maxIndent = 3
)

type containerParser struct {
	kinds map[string]Kind
}

// NewParser returns a goldmark block parser for `:::` fenced containers of the
// configured kinds.
func NewParser(opts ...Option) parser.BlockParser { //nolint:ireturn
	return &containerParser{kinds: newConfig(opts).index()}
}

func (p *containerParser) Trigger() []byte {
	return []byte{fenceChar}
}

func (p *containerParser) Open(_ ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()

	pos := pc.BlockOffset()
	if pos < 0 || line[pos] != fenceChar {
		return nil, parser.NoChildren
	}

	i := pos
	for ; i < len(line) && line[i] == fenceChar; i++ {
	}

	fence := i - pos
	if fence < minFence {
		return nil, parser.NoChildren
	}

	info := strings.TrimSpace(string(line[i:]))

	name := infoName(info)
	if _, ok := p.kinds[name]; !ok {
		return nil, parser.NoChildren
	}

	node := NewContainer(name, info)
	node.fence = fence
	node.start = segment.Start

	reader.Advance(segment.Stop - segment.Start - newlineLength(line) + segment.Padding)

	return node, parser.HasChildren
}

func (p *containerParser) Continue(node ast.Node, reader text.Reader, _ parser.Context) parser.State {
	container, ok := node.(*Container)
	if !ok {
		return parser.Close
	}

	line, segment := reader.PeekLine()
	if !isClosingFence(line, reader.LineOffset(), container.fence) {
		return parser.Continue | parser.HasChildren
	}

	container.stop = segment.Start
	container.closed = true

	reader.Advance(segment.Stop - segment.Start - newlineLength(line) + segment.Padding)

	return parser.Close
}

func (p *containerParser) Close(node ast.Node, reader text.Reader, _ parser.Context) {
	container, ok := node.(*Container)
	if !ok || container.closed {
		return
	}

	_, pos := reader.Position()
	container.stop = pos.Start
}

func (p *containerParser) CanInterruptParagraph() bool {
	return true
}

func (p *containerParser) CanAcceptIndentedLine() bool {
	return false
}

func infoName(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

func isClosingFence(line []byte, offset int, fence int) bool {
	if len(line) == 0 {
		return false
	}

	w, pos := util.IndentWidth(line, offset)
	if w > maxIndent {
		return false
	}

	i := pos
	for ; i < len(line) && line[i] == fenceChar; i++ {
	}

	return i-pos >= fence && util.IsBlank(line[i:])
}

func newlineLength(line []byte) int {
	if len(line) != 0 && line[len(line)-1] == '\n' {
		return 1
	}

	return 0
}
