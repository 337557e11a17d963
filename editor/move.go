package editor

import (
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/stylerun/internal/grapheme"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveRow
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // row start (or doc start for MoveDoc)
	DirEnd  // row end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus; if false collapses
}

func (m Model) applyMove(mv Move) Model {
	anchor, focus := m.selectionEnds()
	start, end := anchor, focus
	if start > end {
		start, end = end, start
	}

	var next int
	switch {
	case !mv.Extend && start != end && mv.Unit == MoveGrapheme && mv.Dir == DirLeft:
		next = start
	case !mv.Extend && start != end && mv.Unit == MoveGrapheme && mv.Dir == DirRight:
		next = end
	default:
		next = m.moveOffset(focus, mv)
	}

	if mv.Extend {
		m.surf.Select(anchor, next)
	} else {
		m.surf.Select(next, next)
	}
	return m
}

func (m Model) selectionEnds() (anchor, focus int) {
	focus, ok := m.surf.FocusOffset()
	if !ok {
		return 0, 0
	}
	anchor, _ = m.surf.AnchorOffset()
	return anchor, focus
}

func (m Model) moveOffset(off int, mv Move) int {
	text := m.sess.Text()
	switch mv.Unit {
	case MoveGrapheme:
		switch mv.Dir {
		case DirLeft:
			return grapheme.PrevBoundary(text, off)
		case DirRight:
			return grapheme.NextBoundary(text, off)
		}
	case MoveWord:
		switch mv.Dir {
		case DirLeft:
			return prevWordBoundary(text, off)
		case DirRight:
			return nextWordBoundary(text, off)
		}
	case MoveRow:
		return m.moveRow(off, mv.Dir)
	case MoveDoc:
		switch mv.Dir {
		case DirHome, DirUp:
			return 0
		case DirEnd, DirDown:
			return utf8.RuneCountInString(text)
		}
	}
	return off
}

// moveRow moves along the wrapped rows of the painted document.
func (m Model) moveRow(off int, dir MoveDir) int {
	l := m.layout()
	x, y := l.CaretPos(off)
	switch dir {
	case DirHome:
		return l.HitTest(0, y)
	case DirEnd:
		return l.HitTest(int(^uint(0)>>1), y)
	case DirUp:
		if y == 0 {
			return 0
		}
		return l.HitTest(x, y-1)
	case DirDown:
		if y >= l.Rows-1 {
			return l.Total
		}
		return l.HitTest(x, y+1)
	default:
		return off
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - clusters are the unit, so combining marks stay with their base
func prevWordBoundary(text string, off int) int {
	bs := grapheme.Boundaries(text)
	cs := grapheme.Split(text)
	i := clusterIndex(bs, off)
	for i > 0 && isSpaceCluster(cs[i-1]) {
		i--
	}
	for i > 0 && !isSpaceCluster(cs[i-1]) {
		i--
	}
	return bs[i]
}

func nextWordBoundary(text string, off int) int {
	bs := grapheme.Boundaries(text)
	cs := grapheme.Split(text)
	i := clusterIndex(bs, off)
	for i < len(cs) && isSpaceCluster(cs[i]) {
		i++
	}
	for i < len(cs) && !isSpaceCluster(cs[i]) {
		i++
	}
	return bs[i]
}

// clusterIndex returns the index of the last boundary at or before off.
func clusterIndex(bs []int, off int) int {
	i := 0
	for i+1 < len(bs) && bs[i+1] <= off {
		i++
	}
	return i
}

func isSpaceCluster(c string) bool {
	r, _ := utf8.DecodeRuneInString(c)
	return unicode.IsSpace(r)
}
