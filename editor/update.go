package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/session"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Bracketed paste inserts literal text and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.edit(session.InsertFromPaste, string(msg.Runes)), nil
	}

	km := m.keys
	switch {
	case key.Matches(msg, km.Left):
		return m.move(Move{Unit: MoveGrapheme, Dir: DirLeft}), nil
	case key.Matches(msg, km.Right):
		return m.move(Move{Unit: MoveGrapheme, Dir: DirRight}), nil
	case key.Matches(msg, km.Up):
		return m.move(Move{Unit: MoveRow, Dir: DirUp}), nil
	case key.Matches(msg, km.Down):
		return m.move(Move{Unit: MoveRow, Dir: DirDown}), nil

	case key.Matches(msg, km.ShiftLeft):
		return m.move(Move{Unit: MoveGrapheme, Dir: DirLeft, Extend: true}), nil
	case key.Matches(msg, km.ShiftRight):
		return m.move(Move{Unit: MoveGrapheme, Dir: DirRight, Extend: true}), nil
	case key.Matches(msg, km.ShiftUp):
		return m.move(Move{Unit: MoveRow, Dir: DirUp, Extend: true}), nil
	case key.Matches(msg, km.ShiftDown):
		return m.move(Move{Unit: MoveRow, Dir: DirDown, Extend: true}), nil

	case key.Matches(msg, km.WordLeft):
		return m.move(Move{Unit: MoveWord, Dir: DirLeft}), nil
	case key.Matches(msg, km.WordRight):
		return m.move(Move{Unit: MoveWord, Dir: DirRight}), nil

	case key.Matches(msg, km.Home):
		return m.move(Move{Unit: MoveRow, Dir: DirHome}), nil
	case key.Matches(msg, km.End):
		return m.move(Move{Unit: MoveRow, Dir: DirEnd}), nil
	case key.Matches(msg, km.ShiftHome):
		return m.move(Move{Unit: MoveRow, Dir: DirHome, Extend: true}), nil
	case key.Matches(msg, km.ShiftEnd):
		return m.move(Move{Unit: MoveRow, Dir: DirEnd, Extend: true}), nil
	case key.Matches(msg, km.SelectAll):
		return m.selectRange(0, m.sess.Len()), nil

	case key.Matches(msg, km.Backspace):
		return m.edit(session.DeleteBackward, ""), nil
	case key.Matches(msg, km.Enter):
		return m.edit(session.InsertLineBreak, ""), nil

	case key.Matches(msg, km.Copy):
		m.copySelection()
		return m, nil
	case key.Matches(msg, km.Cut):
		return m.cutSelection(), nil
	case key.Matches(msg, km.Paste):
		return m.pasteClipboard(), nil

	case key.Matches(msg, km.NextFont):
		next := m.sess.Palette().NextFont(m.sess.ActiveStyle().FontFamily)
		return m.restyle(RestyleFont, next), nil
	case key.Matches(msg, km.NextColor):
		next := m.sess.Palette().NextColor(m.sess.ActiveStyle().Color)
		return m.restyle(RestyleColor, next), nil
	case key.Matches(msg, km.Shuffle):
		return m.restyle(RestyleShuffle, ""), nil

	case key.Matches(msg, km.Done):
		runs := m.sess.Runs()
		return m, func() tea.Msg { return DoneMsg{Runs: runs} }

	case msg.Type == tea.KeySpace:
		return m.edit(session.InsertText, " "), nil
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		return m.edit(session.InsertText, string(msg.Runes)), nil
	}

	// Everything else is left to the host.
	return m, nil
}

func (m Model) edit(kind session.EditKind, text string) Model {
	if !m.allow(IntentEdit, EditIntentPayload{Kind: kind, Text: text}) {
		return m
	}
	m.sess.Edit(kind, text, m.surf.Root(), m.surf)
	m.refresh()
	return m
}

func (m Model) restyle(op RestyleOp, value string) Model {
	if !m.allow(IntentRestyle, RestyleIntentPayload{Op: op, Value: value}) {
		return m
	}
	root := m.surf.Root()
	switch op {
	case RestyleFont:
		m.sess.ApplyFont(value, root, m.surf)
	case RestyleColor:
		m.sess.ApplyColor(value, root, m.surf)
	case RestyleShuffle:
		m.sess.Shuffle(root, m.surf)
	}
	m.refresh()
	return m
}

func (m Model) move(mv Move) Model {
	if !m.allow(IntentMove, MoveIntentPayload{Move: mv}) {
		return m
	}
	return m.applyMove(mv)
}

func (m Model) selectRange(anchor, focus int) Model {
	if !m.allow(IntentSelect, SelectIntentPayload{Anchor: anchor, Focus: focus}) {
		return m
	}
	m.surf.Select(anchor, focus)
	return m
}

func (m Model) selectedText() string {
	start, end := m.surf.Offsets()
	if start == end {
		return ""
	}
	return run.TextInRange(m.sess.Runs(), start, end)
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s := m.selectedText(); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) cutSelection() Model {
	s := m.selectedText()
	if s == "" {
		return m
	}
	if m.cfg.Clipboard != nil {
		if err := m.cfg.Clipboard.WriteText(s); err != nil {
			return m
		}
	}
	return m.edit(session.DeleteBackward, "")
}

func (m Model) pasteClipboard() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return m
	}
	return m.edit(session.InsertFromPaste, s)
}
