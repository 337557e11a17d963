package session

import "github.com/iw2rmb/stylerun/selection"

type pendingCaret struct {
	set        bool
	start, end int
	version    uint64
}

func (p *pendingCaret) setCaret(off int, version uint64) {
	*p = pendingCaret{set: true, start: off, end: off, version: version}
}

func (p *pendingCaret) setRange(start, end int, version uint64) {
	*p = pendingCaret{set: true, start: start, end: end, version: version}
}

// PendingCaret returns the selection waiting to be restored.
func (s *Session) PendingCaret() (start, end int, ok bool) {
	return s.pending.start, s.pending.end, s.pending.set
}

// RestoreCaret places the pending caret in host once root reflects the
// committed runs.
//
// renderedVersion is the session version root was rendered from. Restoring
// against an older render would address elements of a previous document, so
// in that case nothing happens, the caret stays pending and false is
// returned. On success the pending caret is cleared.
func (s *Session) RestoreCaret(root selection.Root, host selection.Host, renderedVersion uint64) bool {
	if !s.pending.set {
		return false
	}
	if renderedVersion < s.pending.version {
		s.log.Debug().
			Uint64("rendered", renderedVersion).
			Uint64("want", s.pending.version).
			Msg("caret restore deferred: stale render")
		return false
	}
	if !selection.SetRange(root, host, s.pending.start, s.pending.end) {
		return false
	}
	s.pending = pendingCaret{}
	return true
}
