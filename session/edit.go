package session

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/stylerun/internal/grapheme"
	"github.com/iw2rmb/stylerun/run"
)

// EditKind is a classified input intent.
type EditKind uint8

const (
	InsertText EditKind = iota
	DeleteBackward
	InsertFromPaste
	InsertLineBreak
)

var editKindNames = [...]string{
	InsertText:      "insertText",
	DeleteBackward:  "deleteContentBackward",
	InsertFromPaste: "insertFromPaste",
	InsertLineBreak: "insertLineBreak",
}

// String returns the host input-type name of k.
func (k EditKind) String() string {
	if int(k) < len(editKindNames) {
		return editKindNames[k]
	}
	return "unknown"
}

// Classify maps a host input-type name to an EditKind. Unrecognized names
// report false and must be left to the host's native handling.
func Classify(inputType string) (EditKind, bool) {
	for k, name := range editKindNames {
		if name == inputType {
			return EditKind(k), true
		}
	}
	return 0, false
}

// EditInput is everything Apply needs.
type EditInput struct {
	Kind    EditKind
	Payload string
	Runs    run.Runs
	// Start and End are the selection offsets; they are clamped and ordered.
	Start, End int
	// Style is the active style for inserted text and the empty document.
	Style run.Style
}

// Result is the next run sequence and the caret offset to restore.
type Result struct {
	Runs  run.Runs
	Caret int
}

// Apply computes the effect of one edit. It never returns zero runs: an edit
// that empties the document yields the empty run in the active style with the
// caret at 0.
//
// A collapsed DeleteBackward removes the whole grapheme cluster before the
// caret, which may be several runes (e + U+0301, emoji sequences); for plain
// text that is a single rune.
func Apply(in EditInput) Result {
	start, end := run.OrderedRange(in.Start, in.End, in.Runs.Len())

	var res Result
	switch in.Kind {
	case InsertText:
		res = insert(in.Runs, start, end, in.Payload, in.Style)
	case InsertFromPaste:
		res = insert(in.Runs, start, end, FlattenNewlines(in.Payload), in.Style)
	case InsertLineBreak:
		res = insert(in.Runs, start, end, " ", in.Style)
	case DeleteBackward:
		res = deleteBackward(in.Runs, start, end, in.Style)
	default:
		res = Result{Runs: in.Runs.Clone(), Caret: start}
	}

	if len(res.Runs) == 0 {
		return Result{Runs: run.Empty(in.Style), Caret: 0}
	}
	return res
}

func insert(rs run.Runs, start, end int, text string, style run.Style) Result {
	n := utf8.RuneCountInString(text)
	if len(rs) == 0 {
		return Result{Runs: run.Runs{{Text: text, Style: style}}, Caret: n}
	}
	return Result{
		Runs:  run.ReplaceRange(rs, start, end, text, style),
		Caret: start + n,
	}
}

func deleteBackward(rs run.Runs, start, end int, style run.Style) Result {
	if start != end {
		return Result{Runs: run.ReplaceRange(rs, start, end, "", style), Caret: start}
	}
	if start == 0 {
		return Result{Runs: rs.Clone(), Caret: 0}
	}
	prev := grapheme.PrevBoundary(rs.Text(), start)
	return Result{Runs: run.ReplaceRange(rs, prev, start, "", style), Caret: prev}
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FlattenNewlines replaces every line break in s with a single space.
func FlattenNewlines(s string) string {
	return newlineReplacer.Replace(s)
}
