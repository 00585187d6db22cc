package model

import "fmt"

// PositionDescriptor identifies the query target as zero-based byte offsets
// into the file's on-disk content.
type PositionDescriptor struct {
	Path   Path
	Start  int
	End    int
	HasEnd bool
}

// String renders the descriptor in the tool's -pos syntax: path:start for a
// point, path:start-end for a range.
func (p PositionDescriptor) String() string {
	if !p.HasEnd {
		return fmt.Sprintf("%s:%d", p.Path, p.Start)
	}

	return fmt.Sprintf("%s:%d-%d", p.Path, p.Start, p.End)
}
