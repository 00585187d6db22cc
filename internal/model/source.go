// Package model defines the data structures shared by the query pipeline.
package model

// Path represents a file system path.
type Path string

// Selection is an editor selection expressed in 1-based character positions,
// the way editors count points. End is zero (or equal to Start) for a single
// cursor position.
//
// A positive Line selects the cursor by 1-based line and column instead;
// Start and End are then ignored.
type Selection struct {
	Start  int
	End    int
	Line   int
	Column int
}

// IsPoint reports whether the selection is a single cursor position.
func (s Selection) IsPoint() bool {
	return s.End == 0 || s.End == s.Start
}

// Document is the editor's current document as seen by a query.
type Document struct {
	// Path is the backing file. Empty for scratch buffers.
	Path Path
	// Modified is set by the editor when the buffer has unsaved edits.
	Modified bool
	// Buffer optionally carries the in-memory content so it can be compared
	// with the bytes on disk.
	Buffer    []byte
	Selection Selection
}
