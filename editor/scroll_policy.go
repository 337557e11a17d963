package editor

// ScrollPolicy decides whether the mouse wheel may scroll the story away from
// the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual passes wheel events to the viewport.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCaretOnly drops wheel events; the view only moves to keep
	// the caret row visible.
	ScrollFollowCaretOnly
)
