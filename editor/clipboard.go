package editor

// Clipboard backs copy, cut and paste. Copied text is the plain text of the
// selected runs; styles are not carried. A read or write error leaves the
// document untouched.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
