package domain

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	m "github.com/mouse-blink/goracle/internal/model"
)

// markerPattern matches the path:line:col: prefix the tool writes at the
// start of a diagnostic line, plus one following blank. No part of it
// matches a newline, so every match lies within a single line.
var markerPattern = regexp.MustCompile(`(?m)^([^:\s][^:\n]*):(\d+):(\d+):[ \t]?`)

// Annotator replaces location prefixes in tool output with a compact
// navigation glyph.
type Annotator struct {
	glyph string
}

// NewAnnotator constructs an Annotator using glyph as the marker.
func NewAnnotator(glyph string) *Annotator {
	return &Annotator{glyph: glyph}
}

// Annotate returns a copy of doc in which every line starting with a
// location marker has that marker replaced by the glyph and one blank, and
// carries the parsed location. doc is left untouched. The scan is a single
// left to right pass.
func (a *Annotator) Annotate(doc m.OutputDocument) m.OutputDocument {
	out := m.OutputDocument{
		Mode:  doc.Mode,
		Lines: make([]m.Line, len(doc.Lines)),
	}
	copy(out.Lines, doc.Lines)

	text := doc.Text()
	starts := lineOffsets(doc.Lines)

	for _, match := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := match[0], match[1]

		idx := sort.SearchInts(starts, start+1) - 1
		line := out.Lines[idx]
		lineStart := starts[idx]

		loc, ok := parseLocation(text, match)
		if !ok {
			continue
		}

		out.Lines[idx] = m.Line{
			Text: a.glyph + " " + line.Text[end-lineStart:],
			Nav: &m.Annotation{
				Start:    start - lineStart,
				End:      start - lineStart + len(a.glyph),
				Location: loc,
			},
		}
	}

	return out
}

// parseLocation reads the submatches of a marker. A path made only of digits
// is a number in the output, not a file.
func parseLocation(text string, match []int) (m.Location, bool) {
	path := text[match[2]:match[3]]
	if strings.IndexFunc(path, isNotDigit) < 0 {
		return m.Location{}, false
	}

	line, err := strconv.Atoi(text[match[4]:match[5]])
	if err != nil {
		return m.Location{}, false
	}

	col, err := strconv.Atoi(text[match[6]:match[7]])
	if err != nil {
		return m.Location{}, false
	}

	return m.Location{
		Path:   m.Path(path),
		Line:   line,
		Column: col,
	}, true
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}

// lineOffsets returns the byte offset at which each line starts in the
// document text.
func lineOffsets(lines []m.Line) []int {
	offsets := make([]int, len(lines))
	offset := 0

	for i, line := range lines {
		offsets[i] = offset
		offset += len(line.Text) + 1
	}

	return offsets
}
