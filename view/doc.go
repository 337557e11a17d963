// Package view is the terminal host for run documents.
//
// Render turns a run sequence into an element tree with one indexed element
// per run, Surface keeps that tree together with the host selection, and
// Paint/HitTest draw the tree into terminal cells and map cells back to flat
// offsets.
package view
