package view

import "strings"

// PaintOptions controls Paint.
type PaintOptions struct {
	Theme Theme
	// Width wraps lines at this many cells; <= 0 disables wrapping.
	Width int
	Wrap  WrapMode
	// Focused draws the caret.
	Focused bool
	// Start and End are the ordered flat selection offsets. A collapsed pair
	// is a caret.
	Start, End int
	HasSelection bool
}

type cellState uint8

const (
	cellNormal cellState = iota
	cellSelected
	cellCaret
)

// Paint draws root as terminal text.
func Paint(root *Root, opt PaintOptions) string {
	if ph, ok := placeholderOf(root); ok {
		st := opt.Theme.Placeholder.Inherit(opt.Theme.RunStyle(ph.style))
		out := st.Render(ph.TextContent())
		if opt.Focused {
			out = opt.Theme.Caret.Render(" ") + out
		}
		return out
	}

	l := LayoutWrapped(root, opt.Width, opt.Wrap)
	runs := root.runs
	collapsed := opt.HasSelection && opt.Start == opt.End

	rows := make([]strings.Builder, l.Rows)

	var seg strings.Builder
	segRun, segState, segRow := -1, cellNormal, 0
	flush := func() {
		if seg.Len() == 0 {
			return
		}
		st := opt.Theme.RunStyle(runs[segRun].style)
		switch segState {
		case cellSelected:
			st = opt.Theme.Selection.Inherit(st)
		case cellCaret:
			st = opt.Theme.Caret.Inherit(st)
		}
		rows[segRow].WriteString(st.Render(seg.String()))
		seg.Reset()
	}

	for _, c := range l.Cells {
		state := cellNormal
		switch {
		case opt.HasSelection && !collapsed && c.Offset >= opt.Start && c.Offset < opt.End:
			state = cellSelected
		case opt.Focused && collapsed && c.Offset == opt.Start:
			state = cellCaret
		}
		if c.Run != segRun || state != segState || c.Y != segRow || state == cellCaret {
			flush()
			segRun, segState, segRow = c.Run, state, c.Y
		}
		if c.Text == "\t" {
			seg.WriteByte(' ')
		} else {
			seg.WriteString(c.Text)
		}
	}
	flush()

	if opt.Focused && collapsed && opt.Start >= l.Total {
		st := opt.Theme.Caret
		if n := len(runs); n > 0 {
			st = st.Inherit(opt.Theme.RunStyle(runs[n-1].style))
		}
		rows[l.EndY].WriteString(st.Render(" "))
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

func placeholderOf(root *Root) (*Element, bool) {
	if len(root.runs) == 1 && root.runs[0].placeholder {
		return root.runs[0], true
	}
	return nil, false
}
