package view

import (
	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/selection"
)

// RenderOptions configures Render.
type RenderOptions struct {
	// Placeholder is shown in a single run element when there are zero runs.
	Placeholder string
	// PlaceholderStyle styles the placeholder element.
	PlaceholderStyle run.Style
}

// Render builds the element tree for rs: one run element per run, indexed in
// document order, each holding a single text node when its text is non-empty.
// version tags the tree with the document version it reflects.
func Render(rs run.Runs, version uint64, opt RenderOptions) *Root {
	root := &Root{version: version}
	root.children = make([]selection.Node, 0, len(rs))
	root.runs = make([]*Element, 0, len(rs))

	if len(rs) == 0 {
		el := newRunElement(root, 0, opt.PlaceholderStyle, opt.Placeholder)
		el.placeholder = true
		return root
	}

	for i, r := range rs {
		newRunElement(root, i, r.Style, r.Text)
	}
	return root
}

func newRunElement(root *Root, idx int, s run.Style, text string) *Element {
	el := &Element{
		parent:      root,
		runIndex:    idx,
		hasRunIndex: true,
		style:       s,
	}
	if text != "" {
		el.children = []selection.Node{&Text{parent: el, data: text}}
	}
	root.children = append(root.children, el)
	root.runs = append(root.runs, el)
	return el
}
