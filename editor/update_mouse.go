package editor

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused {
		return m, cmd
	}

	// Only left button interactions move the caret or the selection.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}

		off := m.screenToOffset(msg.X, msg.Y)
		if msg.Shift {
			anchor, _ := m.selectionEnds()
			m.mouseAnchor = anchor
			m.surf.Select(anchor, off)
		} else {
			m.mouseAnchor = off
			m.surf.Select(off, off)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.surf.Select(m.mouseAnchor, m.screenToOffset(x, y))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func (m Model) screenToOffset(x, y int) int {
	return m.layout().HitTest(x, y+m.viewport.YOffset)
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = max(0, min(x, m.viewport.Width-1))
	}
	if m.viewport.Height > 0 {
		y = max(0, min(y, m.viewport.Height-1))
	}
	return x, y
}
