package editor

import "github.com/iw2rmb/stylerun/run"

// ChangeEvent reports the editor state after an effective change.
type ChangeEvent struct {
	Version uint64
	Runs    run.Runs
	// Style is the active style for the next insertion.
	Style run.Style

	Selection struct {
		Start, End int
		Active     bool
	}
}

// DoneMsg is returned as a command result when the Done key is pressed.
type DoneMsg struct {
	Runs run.Runs
}

type changeKey struct {
	version    uint64
	start, end int
	active     bool
	style      run.Style
}

func (m Model) changeKey() changeKey {
	start, end := m.surf.Offsets()
	_, active := m.surf.Selection()
	return changeKey{
		version: m.sess.Version(),
		start:   start,
		end:     end,
		active:  active,
		style:   m.sess.ActiveStyle(),
	}
}

func (m Model) buildChangeEvent() ChangeEvent {
	ev := ChangeEvent{
		Version: m.sess.Version(),
		Runs:    m.sess.Runs(),
		Style:   m.sess.ActiveStyle(),
	}
	ev.Selection.Start, ev.Selection.End = m.surf.Offsets()
	_, ev.Selection.Active = m.surf.Selection()
	return ev
}

func (m *Model) emitChange() {
	k := m.changeKey()
	if k == m.last {
		return
	}
	m.last = k
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
}
