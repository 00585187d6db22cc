package controller

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/goracle/internal/model"
)

// hyperlink wraps text in an OSC 8 terminal hyperlink to loc.
func hyperlink(text string, loc m.Location) string {
	target := url.URL{Scheme: "file", Path: string(loc.Path), Fragment: strconv.Itoa(loc.Line)}

	return "\x1b]8;;" + target.String() + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// renderLine returns line.Text with its navigation glyph passed through
// decorate. Lines without a marker are returned as is.
func renderLine(line m.Line, decorate func(glyph string, loc m.Location) string) string {
	if line.Nav == nil || line.Nav.End > len(line.Text) {
		return line.Text
	}

	nav := line.Nav

	return line.Text[:nav.Start] + decorate(line.Text[nav.Start:nav.End], nav.Location) + line.Text[nav.End:]
}

// renderPanel renders the whole panel as text, linking glyphs when asked.
func renderPanel(p *Panel, hyperlinks bool) string {
	if !hyperlinks {
		return p.String()
	}

	var b strings.Builder

	b.WriteString(p.Banner())
	b.WriteByte('\n')

	for _, line := range p.Lines() {
		b.WriteString(renderLine(line, hyperlink))
		b.WriteByte('\n')
	}

	return b.String()
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
