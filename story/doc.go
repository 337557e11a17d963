// Package story submits finished documents to the story backend.
//
// A submission carries the run sequence and the four-digit PIN shown on the
// installation. The backend answers with a JSON object holding a human
// readable message and, on success, the millisecond timestamp it stored the
// story under.
package story
