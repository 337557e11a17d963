package run

import "unicode/utf8"

// SplitAt splits rs at offset, clamped to [0, rs.Len()].
//
// A run containing offset strictly inside its text is split into two runs of
// the same style; a boundary offset splits nothing. left.Len() equals the
// clamped offset and left.Text()+right.Text() equals rs.Text(). Both halves are
// fresh slices.
func SplitAt(rs Runs, offset int) (left, right Runs) {
	offset = Clamp(offset, rs.Len())
	if offset == 0 {
		return Runs{}, append(Runs{}, rs...)
	}

	acc := 0
	left = make(Runs, 0, len(rs))
	for i, r := range rs {
		next := acc + utf8.RuneCountInString(r.Text)

		if offset < next {
			k := offset - acc
			if k > 0 {
				cut := byteIndex(r.Text, k)
				left = append(left, Run{Text: r.Text[:cut], Style: r.Style})
				right = make(Runs, 0, len(rs)-i)
				right = append(right, Run{Text: r.Text[cut:], Style: r.Style})
			} else {
				right = make(Runs, 0, len(rs)-i)
				right = append(right, r)
			}
			right = append(right, rs[i+1:]...)
			return left, right
		}

		left = append(left, r)
		if offset == next {
			return left, append(Runs{}, rs[i+1:]...)
		}
		acc = next
	}
	return left, Runs{}
}

// MergeAdjacent folds consecutive runs sharing a style into one run,
// preserving order. It is idempotent.
func MergeAdjacent(rs Runs) Runs {
	out := make(Runs, 0, len(rs))
	for _, r := range rs {
		if n := len(out); n > 0 && out[n-1].Style == r.Style {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// ReplaceRange replaces [start, end) with insert in style.
//
// start and end are clamped into [0, rs.Len()] and ordered. The result is
// MergeAdjacent(prefix ++ [insert run] ++ suffix), with the insert run present
// only when insert is non-empty. Empty runs never survive construction, so the
// result is empty when the whole document was deleted.
func ReplaceRange(rs Runs, start, end int, insert string, style Style) Runs {
	start, end = OrderedRange(start, end, rs.Len())

	prefix, tail := SplitAt(rs, start)
	_, suffix := SplitAt(tail, end-start)

	parts := make(Runs, 0, len(prefix)+1+len(suffix))
	parts = append(parts, prefix...)
	if insert != "" {
		parts = append(parts, Run{Text: insert, Style: style})
	}
	parts = append(parts, suffix...)
	return MergeAdjacent(dropEmpty(parts))
}

// TextInRange returns the flattened text of [start, end) without mutating rs.
func TextInRange(rs Runs, start, end int) string {
	start, end = OrderedRange(start, end, rs.Len())
	_, tail := SplitAt(rs, start)
	mid, _ := SplitAt(tail, end-start)
	return mid.Text()
}
