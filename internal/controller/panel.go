package controller

import (
	"strings"

	m "github.com/mouse-blink/goracle/internal/model"
)

// Panel is the reusable output surface of a session. Each Present resets it
// before writing, so nothing from an earlier query survives.
type Panel struct {
	banner string
	lines  []m.Line
}

// NewPanel constructs an empty Panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Reset clears the banner and all lines.
func (p *Panel) Reset() {
	p.banner = ""
	p.lines = nil
}

// Write sets the banner for doc's mode and appends doc's lines.
func (p *Panel) Write(doc m.OutputDocument) {
	p.banner = Banner(doc.Mode)
	p.lines = append(p.lines, doc.Lines...)
}

// Banner returns the first line of the panel.
func (p *Panel) Banner() string {
	return p.banner
}

// Lines returns the body lines.
func (p *Panel) Lines() []m.Line {
	return p.lines
}

// Height is the number of lines the panel needs, banner included, capped at
// maxHeight when it is positive.
func (p *Panel) Height(maxHeight int) int {
	height := len(p.lines) + 1
	if maxHeight > 0 && height > maxHeight {
		return maxHeight
	}

	return height
}

// String renders the panel as plain text.
func (p *Panel) String() string {
	var b strings.Builder

	b.WriteString(p.banner)
	b.WriteByte('\n')

	for _, line := range p.lines {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}

	return b.String()
}

// Banner is the fixed header line for a query in mode.
func Banner(mode m.Mode) string {
	return "Go Oracle: " + string(mode)
}
