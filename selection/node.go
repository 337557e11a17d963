package selection

// NodeType distinguishes element nodes from text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// Node is the host view's node capability used for mapping.
type Node interface {
	Type() NodeType
	// Parent returns the parent node, or nil for a detached node or the root.
	Parent() Node
	ChildNodes() []Node
	// TextContent returns the concatenated text of the node and its descendants.
	TextContent() string
	// RunIndex returns the run index the node was rendered for. ok is false for
	// nodes that are not run elements.
	RunIndex() (idx int, ok bool)
}

// Root is the editable root: a node whose run elements can be listed.
type Root interface {
	Node
	// RunElements returns every run element under the root in document order.
	RunElements() []Node
}

// Point is one selection endpoint.
type Point struct {
	Node   Node
	Offset int
}

// Range is a host selection. Anchor is where the user started, Focus where
// they ended; Focus may precede Anchor.
type Range struct {
	Anchor Point
	Focus  Point
}

// Collapsed returns a zero-width range at p.
func Collapsed(p Point) Range {
	return Range{Anchor: p, Focus: p}
}

// IsCollapsed reports whether both endpoints are the same point.
func (r Range) IsCollapsed() bool {
	return r.Anchor == r.Focus
}

// Host exposes and replaces the host selection.
type Host interface {
	// Selection returns the current selection. ok is false when the host has
	// no selection at all.
	Selection() (r Range, ok bool)
	SetSelection(r Range)
}
