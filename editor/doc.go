// Package editor provides a Bubble Tea component for editing styled text
// runs.
//
// The Model owns a session.Session and a view.Surface. Key and mouse input is
// classified into edits, restyles and caret moves. Edits and restyles go
// through the session; the surface is then re-rendered and the session's
// pending caret is restored into the fresh tree. Keys the editor does not
// recognize are left to the host.
package editor
