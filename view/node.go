package view

import (
	"strings"

	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/selection"
)

// Element is an element node. Run elements carry the run index and style
// they were rendered from.
type Element struct {
	parent   selection.Node
	children []selection.Node

	runIndex    int
	hasRunIndex bool
	style       run.Style
	placeholder bool
}

// Text is a text node.
type Text struct {
	parent *Element
	data   string
}

// Root is the editable root element produced by Render.
type Root struct {
	Element

	runs    []*Element
	version uint64
}

var (
	_ selection.Node = (*Element)(nil)
	_ selection.Node = (*Text)(nil)
	_ selection.Root = (*Root)(nil)
)

func (e *Element) Type() selection.NodeType { return selection.ElementNode }

func (e *Element) Parent() selection.Node { return e.parent }

func (e *Element) ChildNodes() []selection.Node { return e.children }

func (e *Element) TextContent() string {
	if len(e.children) == 1 {
		return e.children[0].TextContent()
	}
	var sb strings.Builder
	for _, c := range e.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

func (e *Element) RunIndex() (int, bool) { return e.runIndex, e.hasRunIndex }

// Style returns the run style the element was rendered with.
func (e *Element) Style() run.Style { return e.style }

// Placeholder reports whether the element shows placeholder text rather than
// document content.
func (e *Element) Placeholder() bool { return e.placeholder }

func (t *Text) Type() selection.NodeType { return selection.TextNode }

func (t *Text) Parent() selection.Node {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

func (t *Text) ChildNodes() []selection.Node { return nil }

func (t *Text) TextContent() string { return t.data }

func (t *Text) RunIndex() (int, bool) { return 0, false }

// Parent returns nil: the root has no parent inside the view.
func (r *Root) Parent() selection.Node { return nil }

func (r *Root) RunElements() []selection.Node {
	out := make([]selection.Node, len(r.runs))
	for i, el := range r.runs {
		out[i] = el
	}
	return out
}

// Runs returns the run elements as concrete elements, in document order.
func (r *Root) Runs() []*Element { return r.runs }

// Version returns the document version the tree was rendered from.
func (r *Root) Version() uint64 { return r.version }
