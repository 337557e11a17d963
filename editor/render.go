package editor

import "github.com/iw2rmb/stylerun/view"

func (m Model) layout() view.Layout {
	return view.LayoutWrapped(m.surf.Root(), m.viewport.Width, m.cfg.WrapMode)
}

func (m *Model) rebuildContent() {
	start, end := m.surf.Offsets()
	_, has := m.surf.Selection()
	m.viewport.SetContent(view.Paint(m.surf.Root(), view.PaintOptions{
		Theme:        m.theme,
		Width:        m.viewport.Width,
		Wrap:         m.cfg.WrapMode,
		Focused:      m.focused,
		Start:        start,
		End:          end,
		HasSelection: has,
	}))
}

// followCaret scrolls the viewport so the selection focus stays visible.
func (m *Model) followCaret() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	off, ok := m.surf.FocusOffset()
	if !ok {
		return
	}
	_, y := m.layout().CaretPos(off)

	top := m.viewport.YOffset
	if y < top {
		m.viewport.SetYOffset(y)
		return
	}
	if y >= top+h {
		m.viewport.SetYOffset(y - h + 1)
	}
}
