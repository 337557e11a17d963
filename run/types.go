package run

import (
	"strings"
	"unicode/utf8"
)

// Style is the pair of attributes a run carries.
type Style struct {
	FontFamily string `json:"fontFamily"`
	Color      string `json:"color"`
}

// Run is a span of text sharing one Style.
//
// Text may be empty only when the run is the sole run of a document.
type Run struct {
	Text string `json:"text"`
	Style
}

// Runs is an ordered run sequence.
type Runs []Run

// Empty returns the empty-document sentinel: one empty run in style s.
func Empty(s Style) Runs {
	return Runs{{Style: s}}
}

// Len returns the rune length of the flattened text.
func (rs Runs) Len() int {
	n := 0
	for _, r := range rs {
		n += utf8.RuneCountInString(r.Text)
	}
	return n
}

// Text returns the flattened text.
func (rs Runs) Text() string {
	switch len(rs) {
	case 0:
		return ""
	case 1:
		return rs[0].Text
	}
	var sb strings.Builder
	for _, r := range rs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func (rs Runs) Clone() Runs {
	if rs == nil {
		return nil
	}
	out := make(Runs, len(rs))
	copy(out, rs)
	return out
}

func (rs Runs) Equal(other Runs) bool {
	if len(rs) != len(other) {
		return false
	}
	for i := range rs {
		if rs[i] != other[i] {
			return false
		}
	}
	return true
}

// IsEmptyDocument reports whether rs is empty or holds only the sentinel run.
func (rs Runs) IsEmptyDocument() bool {
	return len(rs) == 0 || (len(rs) == 1 && rs[0].Text == "")
}

// IsNormalized reports whether rs satisfies the run invariants: no two
// adjacent runs share a style, and no empty run exists next to other runs.
func (rs Runs) IsNormalized() bool {
	for i, r := range rs {
		if r.Text == "" && len(rs) > 1 {
			return false
		}
		if i > 0 && rs[i-1].Style == r.Style {
			return false
		}
	}
	return true
}

// StyleAt returns the style of the run that owns the rune at offset, or the
// last run's style when offset is at the end. ok is false for zero runs.
func (rs Runs) StyleAt(offset int) (Style, bool) {
	if len(rs) == 0 {
		return Style{}, false
	}
	offset = Clamp(offset, rs.Len())
	acc := 0
	for _, r := range rs {
		next := acc + utf8.RuneCountInString(r.Text)
		if offset < next {
			return r.Style, true
		}
		acc = next
	}
	return rs[len(rs)-1].Style, true
}

// Normalize drops empty runs and merges same-style neighbours. If nothing
// remains, the sentinel in fallback style is returned.
func Normalize(rs Runs, fallback Style) Runs {
	out := MergeAdjacent(dropEmpty(rs))
	if len(out) == 0 {
		return Empty(fallback)
	}
	return out
}

// Clamp clamps offset into [0, total].
func Clamp(offset, total int) int {
	if total < 0 {
		total = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > total {
		return total
	}
	return offset
}

// OrderedRange clamps start and end into [0, total] and orders them.
func OrderedRange(start, end, total int) (int, int) {
	start = Clamp(start, total)
	end = Clamp(end, total)
	if end < start {
		start, end = end, start
	}
	return start, end
}

func dropEmpty(rs Runs) Runs {
	out := make(Runs, 0, len(rs))
	for _, r := range rs {
		if r.Text != "" {
			out = append(out, r)
		}
	}
	return out
}

// byteIndex returns the byte index of the rune at rune offset k in s.
// k is expected to be within [0, RuneCount(s)].
func byteIndex(s string, k int) int {
	if k <= 0 {
		return 0
	}
	i := 0
	for j := range s {
		if i == k {
			return j
		}
		i++
	}
	return len(s)
}
