package selection

import "unicode/utf8"

// Offsets returns the flat [start, end) offsets of the host selection.
//
// Without a selection both offsets are 0. The pair is ordered so that
// start <= end regardless of drag direction.
func Offsets(root Root, host Host) (start, end int) {
	if root == nil || host == nil {
		return 0, 0
	}
	r, ok := host.Selection()
	if !ok {
		return 0, 0
	}
	return OffsetsOf(root, r)
}

// OffsetsOf maps r to ordered flat offsets relative to root.
func OffsetsOf(root Root, r Range) (start, end int) {
	runs := root.RunElements()
	start = toAbsolute(root, runs, r.Anchor)
	end = toAbsolute(root, runs, r.Focus)
	if end < start {
		start, end = end, start
	}
	return start, end
}

// OffsetOf maps a single point to a flat offset relative to root.
func OffsetOf(root Root, p Point) int {
	return toAbsolute(root, root.RunElements(), p)
}

func toAbsolute(root Root, runs []Node, p Point) int {
	if p.Node == nil {
		return 0
	}

	el := p.Node
	if el.Type() == TextNode {
		el = el.Parent()
	}
	for el != nil && !sameNode(el, root) && !isRunElement(el) {
		el = el.Parent()
	}

	if el != nil && !sameNode(el, root) {
		idx, _ := el.RunIndex()
		n := textLen(el)
		rel := clampInt(p.Offset, 0, n)
		return lenBefore(runs, idx) + rel
	}

	children := root.ChildNodes()
	childIndex := clampInt(p.Offset, 0, len(children))
	sum := 0
	for _, c := range children[:childIndex] {
		if c.Type() == ElementNode && isRunElement(c) {
			sum += textLen(c)
		}
	}
	return sum
}

// PointAt returns the host point for flat offset.
//
// The point lands in the first run element whose accumulated end reaches
// offset, inside its text node, or on the element itself when it has no text
// node. Offsets past the end clamp to the end of the last run element. ok is
// false when root has no run elements.
func PointAt(root Root, offset int) (Point, bool) {
	if root == nil {
		return Point{}, false
	}
	runs := root.RunElements()
	if len(runs) == 0 {
		return Point{}, false
	}
	if offset < 0 {
		offset = 0
	}

	acc := 0
	for _, el := range runs {
		n := textLen(el)
		if offset <= acc+n {
			return pointIn(el, offset-acc), true
		}
		acc += n
	}

	last := runs[len(runs)-1]
	return pointIn(last, textLen(last)), true
}

// SetCaret places a collapsed host selection at flat offset. It reports false
// when root has no run elements to hold a caret.
func SetCaret(root Root, host Host, offset int) bool {
	p, ok := PointAt(root, offset)
	if !ok || host == nil {
		return false
	}
	host.SetSelection(Collapsed(p))
	return true
}

// SetRange selects flat [start, end) in the host, anchored at start.
func SetRange(root Root, host Host, start, end int) bool {
	if start == end {
		return SetCaret(root, host, start)
	}
	a, ok := PointAt(root, start)
	if !ok || host == nil {
		return false
	}
	f, _ := PointAt(root, end)
	host.SetSelection(Range{Anchor: a, Focus: f})
	return true
}

func pointIn(el Node, rel int) Point {
	if t := firstTextChild(el); t != nil {
		return Point{Node: t, Offset: rel}
	}
	return Point{Node: el, Offset: 0}
}

func firstTextChild(el Node) Node {
	for _, c := range el.ChildNodes() {
		if c.Type() == TextNode {
			return c
		}
	}
	return nil
}

func lenBefore(runs []Node, idx int) int {
	idx = clampInt(idx, 0, len(runs))
	sum := 0
	for _, el := range runs[:idx] {
		sum += textLen(el)
	}
	return sum
}

func isRunElement(n Node) bool {
	_, ok := n.RunIndex()
	return ok
}

func sameNode(n Node, root Root) bool {
	return n == Node(root)
}

func textLen(n Node) int {
	return utf8.RuneCountInString(n.TextContent())
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
