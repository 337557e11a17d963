package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	SelectAll                                 key.Binding

	Backspace key.Binding
	Enter     key.Binding

	Copy, Cut, Paste key.Binding

	NextFont, NextColor, Shuffle key.Binding

	Done key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "row start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "row end")),
		ShiftHome: key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to row start")),
		ShiftEnd:  key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to row end")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "line break")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		NextFont:  key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "next font")),
		NextColor: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "next color")),
		Shuffle:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "shuffle")),

		Done: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "done")),
	}
}

// ShortHelp lists the bindings shown in a one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFont, k.NextColor, k.Shuffle, k.Done}
}

// FullHelp groups every binding for an expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.WordLeft, k.WordRight, k.Home, k.End},
		{k.ShiftLeft, k.ShiftRight, k.ShiftUp, k.ShiftDown, k.ShiftHome, k.ShiftEnd, k.SelectAll},
		{k.Backspace, k.Enter, k.Copy, k.Cut, k.Paste},
		{k.NextFont, k.NextColor, k.Shuffle, k.Done},
	}
}
