package view

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/stylerun/internal/grapheme"
)

// Cell is one grapheme cluster placed on the terminal grid.
type Cell struct {
	Offset int // flat rune offset of the cluster start
	Runes  int
	Text   string
	Run    int // index into Root.Runs()
	X, Y   int
	Width  int
}

// Layout is the cell placement of a rendered tree.
type Layout struct {
	Cells []Cell
	// EndX, EndY is where a caret at the end of the document is drawn.
	EndX, EndY int
	Rows       int
	Total      int
}

// WrapMode controls how rows are soft-wrapped.
type WrapMode int

const (
	// WrapGrapheme breaks before the first cluster that does not fit.
	WrapGrapheme WrapMode = iota
	// WrapWord breaks after the last whitespace run on the row when there is
	// one, and falls back to WrapGrapheme for words wider than the row.
	WrapWord
)

// LayoutRoot places every grapheme of root on a grid width cells wide. A
// width <= 0 disables wrapping.
func LayoutRoot(root *Root, width int) Layout {
	return LayoutWrapped(root, width, WrapGrapheme)
}

// LayoutWrapped is LayoutRoot with an explicit wrap mode.
func LayoutWrapped(root *Root, width int, mode WrapMode) Layout {
	var l Layout
	text, spans := flatten(root)
	x, y, off := 0, 0, 0
	rowStart, lastBreak := 0, -1
	span := 0
	for _, g := range grapheme.Split(text) {
		for span+1 < len(spans) && spans[span+1].start <= off {
			span++
		}
		i := spans[span].index
		w := cellWidth(g)
		if width > 0 && x > 0 && x+w > width {
			if mode == WrapWord && lastBreak > rowStart {
				x = reflow(l.Cells[lastBreak:], y+1)
			} else {
				x = 0
			}
			y++
			rowStart, lastBreak = len(l.Cells)-cellsOnRow(l.Cells, y), -1
			if x > 0 && x+w > width {
				x = 0
				y++
				rowStart = len(l.Cells)
			}
		}
		n := utf8.RuneCountInString(g)
		l.Cells = append(l.Cells, Cell{Offset: off, Runes: n, Text: g, Run: i, X: x, Y: y, Width: w})
		x += w
		off += n
		if isBlank(g) {
			lastBreak = len(l.Cells)
		}
	}
	if width > 0 && x >= width {
		x = 0
		y++
	}
	l.EndX, l.EndY = x, y
	l.Rows = y + 1
	l.Total = off
	return l
}

type runSpan struct {
	start int // flat rune offset
	index int // index into Root.Runs()
}

// flatten joins the text of every non-placeholder run. Clusters are found
// over the joined text so one never splits at a style boundary; a cell takes
// the run its first rune belongs to.
func flatten(root *Root) (string, []runSpan) {
	var sb strings.Builder
	var spans []runSpan
	off := 0
	for i, el := range root.runs {
		if el.placeholder {
			continue
		}
		t := el.TextContent()
		if t == "" {
			continue
		}
		spans = append(spans, runSpan{start: off, index: i})
		sb.WriteString(t)
		off += utf8.RuneCountInString(t)
	}
	return sb.String(), spans
}

// reflow moves cells to the start of row y and returns the next free column.
func reflow(cells []Cell, y int) int {
	x := 0
	for i := range cells {
		cells[i].X, cells[i].Y = x, y
		x += cells[i].Width
	}
	return x
}

// cellsOnRow counts the trailing cells already placed on row y.
func cellsOnRow(cells []Cell, y int) int {
	n := 0
	for i := len(cells) - 1; i >= 0 && cells[i].Y == y; i-- {
		n++
	}
	return n
}

func isBlank(g string) bool {
	return g == " " || g == "\t"
}

// HitTest maps a grid cell to a flat offset. A click on a cluster places the
// caret before it; clicks past the end of a row land after the row's last
// cluster; rows above or below the content clamp to the document ends.
func (l Layout) HitTest(x, y int) int {
	if y < 0 || len(l.Cells) == 0 {
		return 0
	}
	if y >= l.Rows {
		return l.Total
	}

	end := -1
	for _, c := range l.Cells {
		if c.Y < y {
			continue
		}
		if c.Y > y {
			break
		}
		if x < c.X+c.Width {
			return c.Offset
		}
		end = c.Offset + c.Runes
	}
	if end < 0 || y == l.Rows-1 {
		return l.Total
	}
	return end
}

// CaretPos returns the grid position where a caret at offset is drawn.
func (l Layout) CaretPos(offset int) (x, y int) {
	for _, c := range l.Cells {
		if c.Offset >= offset {
			return c.X, c.Y
		}
	}
	return l.EndX, l.EndY
}

func cellWidth(g string) int {
	if g == "\t" {
		return 1
	}
	w := runewidth.StringWidth(g)
	if w <= 0 {
		return 1
	}
	return w
}
