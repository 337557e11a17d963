package view

import (
	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/selection"
)

// Surface is the host widget: the rendered tree plus the host selection.
//
// Re-rendering replaces every node, so the selection is dropped on each
// Render; callers restore it from flat offsets afterwards.
type Surface struct {
	opt  RenderOptions
	root *Root

	sel    selection.Range
	hasSel bool
}

var _ selection.Host = (*Surface)(nil)

func NewSurface(opt RenderOptions) *Surface {
	s := &Surface{opt: opt}
	s.root = Render(nil, 0, opt)
	return s
}

// Render replaces the tree with one built from rs at version.
func (s *Surface) Render(rs run.Runs, version uint64) *Root {
	s.root = Render(rs, version, s.opt)
	s.sel = selection.Range{}
	s.hasSel = false
	return s.root
}

func (s *Surface) Root() *Root { return s.root }

// Version returns the document version of the current tree.
func (s *Surface) Version() uint64 { return s.root.version }

func (s *Surface) Selection() (selection.Range, bool) {
	return s.sel, s.hasSel
}

func (s *Surface) SetSelection(r selection.Range) {
	s.sel = r
	s.hasSel = true
}

func (s *Surface) ClearSelection() {
	s.sel = selection.Range{}
	s.hasSel = false
}

// Offsets returns the ordered flat offsets of the current selection.
func (s *Surface) Offsets() (start, end int) {
	return selection.Offsets(s.root, s)
}

// FocusOffset returns the flat offset of the selection focus (the end the
// user is moving). ok is false without a selection.
func (s *Surface) FocusOffset() (int, bool) {
	if !s.hasSel {
		return 0, false
	}
	return selection.OffsetOf(s.root, s.sel.Focus), true
}

// AnchorOffset returns the flat offset of the selection anchor.
func (s *Surface) AnchorOffset() (int, bool) {
	if !s.hasSel {
		return 0, false
	}
	return selection.OffsetOf(s.root, s.sel.Anchor), true
}

// Select sets a selection from flat offsets. anchor may follow focus.
func (s *Surface) Select(anchor, focus int) bool {
	a, ok := selection.PointAt(s.root, anchor)
	if !ok {
		return false
	}
	f, _ := selection.PointAt(s.root, focus)
	s.SetSelection(selection.Range{Anchor: a, Focus: f})
	return true
}
