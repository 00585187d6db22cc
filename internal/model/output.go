package model

import (
	"fmt"
	"strings"
)

// Location is a source position referenced by the tool's output.
type Location struct {
	Path   Path
	Line   int
	Column int
}

// String renders the location in path:line:col form.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Path, l.Line, l.Column)
}

// Annotation marks a byte range of an output line as a navigation marker.
type Annotation struct {
	Start    int
	End      int
	Location Location
}

// Line is one line of tool output with at most one navigation marker.
type Line struct {
	Text string
	Nav  *Annotation
}

// OutputDocument holds the output of a single invocation, line by line.
type OutputDocument struct {
	Mode  Mode
	Lines []Line
}

// NewOutputDocument splits raw combined output into lines. A trailing newline
// does not produce an empty last line.
func NewOutputDocument(mode Mode, raw []byte) OutputDocument {
	doc := OutputDocument{Mode: mode}

	text := strings.TrimSuffix(string(raw), "\n")
	if text == "" && len(raw) <= 1 {
		return doc
	}

	for _, line := range strings.Split(text, "\n") {
		doc.Lines = append(doc.Lines, Line{Text: line})
	}

	return doc
}

// Text joins the lines back together, each terminated by a newline.
func (d OutputDocument) Text() string {
	var b strings.Builder

	for _, line := range d.Lines {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}

	return b.String()
}

// Annotated returns the lines that carry a navigation marker.
func (d OutputDocument) Annotated() []Line {
	var lines []Line

	for _, line := range d.Lines {
		if line.Nav != nil {
			lines = append(lines, line)
		}
	}

	return lines
}
