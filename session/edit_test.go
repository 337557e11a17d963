package session

import (
	"testing"

	"github.com/iw2rmb/stylerun/run"
)

var (
	f1c1 = run.Style{FontFamily: "F1", Color: "C1"}
	f2c2 = run.Style{FontFamily: "F2", Color: "C2"}
)

func TestApply_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		in        EditInput
		want      run.Runs
		wantCaret int
	}{
		{
			name:      "insert at end",
			in:        EditInput{Kind: InsertText, Payload: "X", Runs: run.Runs{{Text: "HELLO", Style: f1c1}}, Start: 5, End: 5, Style: f1c1},
			want:      run.Runs{{Text: "HELLOX", Style: f1c1}},
			wantCaret: 6,
		},
		{
			name:      "backspace first char",
			in:        EditInput{Kind: DeleteBackward, Runs: run.Runs{{Text: "AB", Style: f1c1}}, Start: 1, End: 1, Style: f1c1},
			want:      run.Runs{{Text: "B", Style: f1c1}},
			wantCaret: 0,
		},
		{
			name:      "backspace last char leaves empty run",
			in:        EditInput{Kind: DeleteBackward, Runs: run.Runs{{Text: "A", Style: f1c1}}, Start: 1, End: 1, Style: f1c1},
			want:      run.Runs{{Text: "", Style: f1c1}},
			wantCaret: 0,
		},
		{
			name:      "paste flattens newlines",
			in:        EditInput{Kind: InsertFromPaste, Payload: "line1\nline2", Runs: run.Runs{{Text: "", Style: f1c1}}, Style: f1c1},
			want:      run.Runs{{Text: "line1 line2", Style: f1c1}},
			wantCaret: 11,
		},
		{
			name:      "line break inserts space",
			in:        EditInput{Kind: InsertLineBreak, Runs: run.Runs{{Text: "ab", Style: f1c1}}, Start: 1, End: 1, Style: f1c1},
			want:      run.Runs{{Text: "a b", Style: f1c1}},
			wantCaret: 2,
		},
		{
			name:      "insert replaces selection in active style",
			in:        EditInput{Kind: InsertText, Payload: "Z", Runs: run.Runs{{Text: "abcd", Style: f1c1}}, Start: 3, End: 1, Style: f2c2},
			want:      run.Runs{{Text: "a", Style: f1c1}, {Text: "Z", Style: f2c2}, {Text: "d", Style: f1c1}},
			wantCaret: 2,
		},
		{
			name:      "backspace deletes selection",
			in:        EditInput{Kind: DeleteBackward, Runs: run.Runs{{Text: "ab", Style: f1c1}, {Text: "cd", Style: f2c2}}, Start: 1, End: 3, Style: f1c1},
			want:      run.Runs{{Text: "a", Style: f1c1}, {Text: "d", Style: f2c2}},
			wantCaret: 1,
		},
		{
			name:      "backspace at start is a no-op",
			in:        EditInput{Kind: DeleteBackward, Runs: run.Runs{{Text: "ab", Style: f1c1}}, Style: f1c1},
			want:      run.Runs{{Text: "ab", Style: f1c1}},
			wantCaret: 0,
		},
		{
			name:      "backspace removes a whole grapheme",
			in:        EditInput{Kind: DeleteBackward, Runs: run.Runs{{Text: "xe\u0301", Style: f1c1}}, Start: 3, End: 3, Style: f1c1},
			want:      run.Runs{{Text: "x", Style: f1c1}},
			wantCaret: 1,
		},
		{
			name:      "delete everything uses active style",
			in:        EditInput{Kind: DeleteBackward, Runs: run.Runs{{Text: "ab", Style: f1c1}}, Start: 0, End: 2, Style: f2c2},
			want:      run.Runs{{Text: "", Style: f2c2}},
			wantCaret: 0,
		},
		{
			name:      "insert into zero runs",
			in:        EditInput{Kind: InsertText, Payload: "hi", Style: f2c2},
			want:      run.Runs{{Text: "hi", Style: f2c2}},
			wantCaret: 2,
		},
		{
			name:      "out of range offsets are clamped",
			in:        EditInput{Kind: InsertText, Payload: "!", Runs: run.Runs{{Text: "ab", Style: f1c1}}, Start: 9, End: 9, Style: f1c1},
			want:      run.Runs{{Text: "ab!", Style: f1c1}},
			wantCaret: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.in)
			if !got.Runs.Equal(tt.want) {
				t.Fatalf("runs=%#v, want %#v", got.Runs, tt.want)
			}
			if got.Caret != tt.wantCaret {
				t.Fatalf("caret=%d, want %d", got.Caret, tt.wantCaret)
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := run.Runs{{Text: "abc", Style: f1c1}}
	orig := in.Clone()
	_ = Apply(EditInput{Kind: DeleteBackward, Runs: in, Start: 2, End: 2, Style: f1c1})
	_ = Apply(EditInput{Kind: InsertText, Payload: "z", Runs: in, Start: 1, End: 1, Style: f2c2})
	if !in.Equal(orig) {
		t.Fatalf("input mutated: %#v", in)
	}
}

func TestClassify(t *testing.T) {
	for _, k := range []EditKind{InsertText, DeleteBackward, InsertFromPaste, InsertLineBreak} {
		got, ok := Classify(k.String())
		if !ok || got != k {
			t.Fatalf("Classify(%q)=(%v,%v), want (%v,true)", k.String(), got, ok, k)
		}
	}
	for _, name := range []string{"", "insertReplacementText", "deleteWordBackward", "historyUndo"} {
		if _, ok := Classify(name); ok {
			t.Fatalf("Classify(%q) recognized, want passthrough", name)
		}
	}
	if got, want := EditKind(42).String(), "unknown"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}

func TestFlattenNewlines(t *testing.T) {
	tests := map[string]string{
		"line1\nline2":   "line1 line2",
		"a\r\nb":         "a b",
		"a\rb":           "a b",
		"\n\n":           "  ",
		"no breaks here": "no breaks here",
	}
	for in, want := range tests {
		if got := FlattenNewlines(in); got != want {
			t.Fatalf("FlattenNewlines(%q)=%q, want %q", in, got, want)
		}
	}
}
