// Package run implements the pure styled-run document model.
//
// A document is an ordered sequence of runs, each carrying text plus one
// (font family, color) style. Offsets are 0-based indices into the flattened
// text, counted in runes. Ranges are half-open: [start, end).
package run
