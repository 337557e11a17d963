// Package grapheme finds user-perceived character boundaries in rune offsets.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the rune offsets at which grapheme clusters start, plus
// the total rune count as the final entry. Empty text yields [0].
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// PrevBoundary returns the rune offset of the cluster boundary strictly before
// off. Offsets inside a cluster snap to that cluster's start. 0 stays 0.
func PrevBoundary(text string, off int) int {
	if off <= 0 {
		return 0
	}
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= off {
			return prev
		}
		prev = b
	}
	return prev
}

// NextBoundary returns the rune offset of the cluster boundary strictly after
// off, or the text length when off is at or past the end.
func NextBoundary(text string, off int) int {
	bs := Boundaries(text)
	for _, b := range bs {
		if b > off {
			return b
		}
	}
	return bs[len(bs)-1]
}
