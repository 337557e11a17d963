// Package session applies edit intents to a run document.
//
// Apply and Restyle are pure functions over run sequences. Session wraps them
// with the per-editor context: the current runs, the active style used for new
// text, and the caret that must be restored once the host has re-rendered.
package session
