package view

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/selection"
)

var (
	f1c1 = run.Style{FontFamily: "F1", Color: "#FF3B30"}
	f2c2 = run.Style{FontFamily: "F2", Color: "#007AFF"}
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func bracketTheme() Theme {
	th := DefaultTheme([]string{"F1", "F2"})
	th.Caret = lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" })
	th.Selection = lipgloss.NewStyle().Transform(strings.ToLower)
	return th
}

func TestRender_OneIndexedElementPerRun(t *testing.T) {
	root := Render(run.Runs{{Text: "AB", Style: f1c1}, {Text: "CD", Style: f2c2}}, 7, RenderOptions{})

	if got, want := root.Version(), uint64(7); got != want {
		t.Fatalf("version: got %d, want %d", got, want)
	}
	els := root.RunElements()
	if got, want := len(els), 2; got != want {
		t.Fatalf("run elements: got %d, want %d", got, want)
	}
	for i, el := range els {
		idx, ok := el.RunIndex()
		if !ok || idx != i {
			t.Fatalf("element %d index: got %d/%v", i, idx, ok)
		}
		if el.Parent() != selection.Node(root) {
			t.Fatalf("element %d parent is not the root", i)
		}
		kids := el.ChildNodes()
		if len(kids) != 1 || kids[0].Type() != selection.TextNode {
			t.Fatalf("element %d should hold one text node", i)
		}
	}
	if got, want := root.TextContent(), "ABCD"; got != want {
		t.Fatalf("text content: got %q, want %q", got, want)
	}
}

func TestRender_SentinelHasNoTextNode(t *testing.T) {
	root := Render(run.Empty(f1c1), 1, RenderOptions{})
	els := root.Runs()
	if len(els) != 1 || len(els[0].ChildNodes()) != 0 {
		t.Fatalf("sentinel element should have no children: %+v", els)
	}
}

func TestRender_ZeroRunsShowsPlaceholder(t *testing.T) {
	root := Render(nil, 0, RenderOptions{Placeholder: "TYPE HERE", PlaceholderStyle: f1c1})
	els := root.Runs()
	if len(els) != 1 || !els[0].Placeholder() {
		t.Fatalf("expected one placeholder element, got %+v", els)
	}
	if got, want := els[0].TextContent(), "TYPE HERE"; got != want {
		t.Fatalf("placeholder text: got %q, want %q", got, want)
	}
}

func TestSurface_RenderDropsSelection(t *testing.T) {
	s := NewSurface(RenderOptions{})
	s.Render(run.Runs{{Text: "HELLO", Style: f1c1}}, 1)
	if !s.Select(2, 4) {
		t.Fatalf("Select reported false")
	}
	if start, end := s.Offsets(); start != 2 || end != 4 {
		t.Fatalf("offsets: got (%d,%d), want (2,4)", start, end)
	}

	s.Render(run.Runs{{Text: "HELLO!", Style: f1c1}}, 2)
	if _, ok := s.Selection(); ok {
		t.Fatalf("selection should be dropped after render")
	}
	if got, want := s.Version(), uint64(2); got != want {
		t.Fatalf("version: got %d, want %d", got, want)
	}
}

func TestSurface_FocusAndAnchorOffsets(t *testing.T) {
	s := NewSurface(RenderOptions{})
	s.Render(run.Runs{{Text: "AB", Style: f1c1}, {Text: "CD", Style: f2c2}}, 1)
	s.Select(3, 1)

	if got, ok := s.AnchorOffset(); !ok || got != 3 {
		t.Fatalf("anchor: got %d/%v, want 3", got, ok)
	}
	if got, ok := s.FocusOffset(); !ok || got != 1 {
		t.Fatalf("focus: got %d/%v, want 1", got, ok)
	}
	if start, end := s.Offsets(); start != 1 || end != 3 {
		t.Fatalf("offsets: got (%d,%d), want (1,3)", start, end)
	}
}

func TestLayout_WrapsByCellWidth(t *testing.T) {
	root := Render(run.Runs{{Text: "abc", Style: f1c1}, {Text: "\u4e16d", Style: f2c2}}, 1, RenderOptions{})
	l := LayoutRoot(root, 4)

	// "abc" fills x=0..2; the wide rune does not fit in the last cell.
	want := []struct{ x, y int }{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}}
	if len(l.Cells) != len(want) {
		t.Fatalf("cells: got %d, want %d", len(l.Cells), len(want))
	}
	for i, w := range want {
		c := l.Cells[i]
		if c.X != w.x || c.Y != w.y {
			t.Fatalf("cell %d (%q): got (%d,%d), want (%d,%d)", i, c.Text, c.X, c.Y, w.x, w.y)
		}
	}
	if l.Rows != 2 || l.Total != 5 {
		t.Fatalf("rows/total: got %d/%d, want 2/5", l.Rows, l.Total)
	}
	if l.EndX != 3 || l.EndY != 1 {
		t.Fatalf("end: got (%d,%d), want (3,1)", l.EndX, l.EndY)
	}
}

func TestLayout_HitTest(t *testing.T) {
	root := Render(run.Runs{{Text: "abc", Style: f1c1}, {Text: "\u4e16d", Style: f2c2}}, 1, RenderOptions{})
	l := LayoutRoot(root, 4)

	cases := []struct {
		name string
		x, y int
		want int
	}{
		{name: "first", x: 0, y: 0, want: 0},
		{name: "middle", x: 1, y: 0, want: 1},
		{name: "past-row-end", x: 9, y: 0, want: 3},
		{name: "wide-rune-second-cell", x: 1, y: 1, want: 3},
		{name: "after-wide", x: 2, y: 1, want: 4},
		{name: "past-last-row-end", x: 9, y: 1, want: 5},
		{name: "above", x: 3, y: -1, want: 0},
		{name: "below", x: 0, y: 7, want: 5},
	}
	for _, tc := range cases {
		if got := l.HitTest(tc.x, tc.y); got != tc.want {
			t.Fatalf("%s: HitTest(%d,%d)=%d, want %d", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestLayout_CaretPos(t *testing.T) {
	root := Render(run.Runs{{Text: "abcd", Style: f1c1}}, 1, RenderOptions{})
	l := LayoutRoot(root, 4)
	if x, y := l.CaretPos(2); x != 2 || y != 0 {
		t.Fatalf("caret 2: got (%d,%d)", x, y)
	}
	// A full last row pushes the end caret onto the next row.
	if x, y := l.CaretPos(4); x != 0 || y != 1 {
		t.Fatalf("caret end: got (%d,%d), want (0,1)", x, y)
	}
}

func TestPaint_CaretAndSelection(t *testing.T) {
	root := Render(run.Runs{{Text: "AB", Style: f1c1}, {Text: "CD", Style: f2c2}}, 1, RenderOptions{})

	got := Paint(root, PaintOptions{Theme: bracketTheme(), Focused: true, Start: 1, End: 1, HasSelection: true})
	if want := "A[B]CD"; got != want {
		t.Fatalf("caret paint: got %q, want %q", got, want)
	}

	got = Paint(root, PaintOptions{Theme: bracketTheme(), Focused: true, Start: 4, End: 4, HasSelection: true})
	if want := "ABCD[ ]"; got != want {
		t.Fatalf("end caret paint: got %q, want %q", got, want)
	}

	got = Paint(root, PaintOptions{Theme: bracketTheme(), Focused: true, Start: 1, End: 3, HasSelection: true})
	if want := "AbcD"; got != want {
		t.Fatalf("selection paint: got %q, want %q", got, want)
	}

	got = Paint(root, PaintOptions{Theme: bracketTheme(), Focused: false, Start: 1, End: 1, HasSelection: true})
	if want := "ABCD"; got != want {
		t.Fatalf("blurred paint: got %q, want %q", got, want)
	}
}

func TestPaint_Wraps(t *testing.T) {
	root := Render(run.Runs{{Text: "abcdef", Style: f1c1}}, 1, RenderOptions{})
	got := Paint(root, PaintOptions{Theme: bracketTheme(), Width: 4})
	if want := "abcd\nef"; got != want {
		t.Fatalf("wrapped paint: got %q, want %q", got, want)
	}
}

func TestTheme_TerminalColor(t *testing.T) {
	if _, ok := TerminalColor("#FF3B30"); !ok {
		t.Fatalf("valid hex should parse")
	}
	if _, ok := TerminalColor("tomato"); ok {
		t.Fatalf("named color should not parse")
	}
}

func TestDefaultTheme_CoversEveryFont(t *testing.T) {
	fonts := []string{"a", "b", "c", "d", "e", "f", "g"}
	th := DefaultTheme(fonts)
	for _, f := range fonts {
		if _, ok := th.Fonts[f]; !ok {
			t.Fatalf("font %q missing from theme", f)
		}
	}
}

func TestLayout_WordWrap(t *testing.T) {
	root := Render(run.Runs{{Text: "ab cd", Style: f1c1}, {Text: " ef", Style: f2c2}}, 1, RenderOptions{})
	l := LayoutWrapped(root, 5, WrapWord)

	want := []struct{ x, y int }{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}, {4, 1}}
	if len(l.Cells) != len(want) {
		t.Fatalf("cells: got %d, want %d", len(l.Cells), len(want))
	}
	for i, w := range want {
		c := l.Cells[i]
		if c.X != w.x || c.Y != w.y {
			t.Fatalf("cell %d (%q): got (%d,%d), want (%d,%d)", i, c.Text, c.X, c.Y, w.x, w.y)
		}
	}
	if got, want := l.HitTest(9, 0), 3; got != want {
		t.Fatalf("HitTest past first row: got %d, want %d", got, want)
	}

	got := Paint(root, PaintOptions{Theme: bracketTheme(), Width: 5, Wrap: WrapWord})
	if want := "ab \ncd ef\n"; got != want {
		t.Fatalf("paint: got %q, want %q", got, want)
	}
}

func TestLayout_WordWrapFallsBackForLongWords(t *testing.T) {
	root := Render(run.Runs{{Text: "abcdefg", Style: f1c1}}, 1, RenderOptions{})
	word := LayoutWrapped(root, 3, WrapWord)
	cell := LayoutRoot(root, 3)

	if len(word.Cells) != len(cell.Cells) {
		t.Fatalf("cells: got %d, want %d", len(word.Cells), len(cell.Cells))
	}
	for i := range word.Cells {
		if word.Cells[i] != cell.Cells[i] {
			t.Fatalf("cell %d: got %+v, want %+v", i, word.Cells[i], cell.Cells[i])
		}
	}
}

func TestLayout_ClusterAcrossRunBoundary(t *testing.T) {
	// "e" and its combining accent carry different styles.
	root := Render(run.Runs{{Text: "ae", Style: f1c1}, {Text: "\u0301b", Style: f2c2}}, 1, RenderOptions{})
	l := LayoutRoot(root, 0)

	want := []struct {
		text        string
		offset, run int
	}{{"a", 0, 0}, {"e\u0301", 1, 0}, {"b", 3, 1}}
	if len(l.Cells) != len(want) {
		t.Fatalf("cells: got %d, want %d", len(l.Cells), len(want))
	}
	for i, w := range want {
		c := l.Cells[i]
		if c.Text != w.text || c.Offset != w.offset || c.Run != w.run {
			t.Fatalf("cell %d: got (%q,%d,%d), want (%q,%d,%d)", i, c.Text, c.Offset, c.Run, w.text, w.offset, w.run)
		}
	}
	for x := 0; x < 4; x++ {
		if got := l.HitTest(x, 0); got == 2 {
			t.Fatalf("HitTest(%d,0) landed inside the cluster", x)
		}
	}
	if got, want := l.HitTest(1, 0), 1; got != want {
		t.Fatalf("HitTest(1,0): got %d, want %d", got, want)
	}
	if got, want := l.HitTest(2, 0), 3; got != want {
		t.Fatalf("HitTest(2,0): got %d, want %d", got, want)
	}
}
