// Package selection converts between flat run offsets and host selection
// coordinates.
//
// The host renders each run as an individually indexed element, in document
// order, under one editable root. Selection endpoints are (node, offset)
// points: inside a text node the offset counts runes, on an element it counts
// child nodes. All flat offsets are rune offsets into the flattened text.
package selection
