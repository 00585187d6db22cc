package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/goracle/internal/model"
)

// panelChrome is the number of screen lines around the viewport: the banner
// above and the status line below.
const panelChrome = 2

const panelHelp = "↑/k ↓/j move • n/p next/prev location • enter open • r re-run • q quit"

// panelModel is the Bubble Tea model of the output panel.
type panelModel struct {
	panel    *Panel
	settings Settings
	rerun    RerunFunc
	viewport viewport.Model
	cursor   int
	width    int
	height   int
	status   string
	quitting bool
}

func newPanelModel(panel *Panel, settings Settings, rerun RerunFunc) panelModel {
	pm := panelModel{
		panel:    panel,
		settings: settings,
		rerun:    rerun,
	}
	pm.viewport = viewport.New(0, pm.bodyHeight())
	pm.refresh()
	pm.viewport.GotoTop()

	return pm
}

func (pm panelModel) Init() tea.Cmd {
	return nil
}

func (pm panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)

	case rerunMsg:
		return pm.handleRerun(msg), nil

	case openedMsg:
		if msg.err != nil {
			pm.status = errorStyle.Render(fmt.Sprintf("open %s: %v", msg.loc, msg.err))
		} else {
			pm.status = "opened " + msg.loc.String()
		}

		return pm, nil
	}

	return pm, nil
}

//nolint:cyclop // Key handling requires multiple cases for panel navigation
func (pm panelModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		pm.quitting = true
		return pm, tea.Quit

	case "down", "j":
		pm = pm.moveTo(pm.cursor + 1)

	case "up", "k":
		pm = pm.moveTo(pm.cursor - 1)

	case "n", "tab":
		pm = pm.moveTo(pm.nextLocation(pm.cursor, 1))

	case "p", "shift+tab":
		pm = pm.moveTo(pm.nextLocation(pm.cursor, -1))

	case "g", "home":
		pm = pm.moveTo(0)

	case "G", "end":
		pm = pm.moveTo(len(pm.panel.Lines()) - 1)

	case "enter":
		return pm, pm.openCmd()

	case "r":
		if pm.rerun == nil {
			return pm, nil
		}

		pm.status = "running…"

		return pm, pm.rerunCmd()
	}

	return pm, nil
}

func (pm panelModel) openCmd() tea.Cmd {
	lines := pm.panel.Lines()
	if pm.cursor >= len(lines) || lines[pm.cursor].Nav == nil || pm.settings.Opener == nil {
		return nil
	}

	loc := lines[pm.cursor].Nav.Location

	cmd, err := pm.settings.Opener.Command(loc)
	if err != nil {
		return func() tea.Msg { return openedMsg{loc: loc, err: err} }
	}

	// The program releases the terminal until the editor exits.
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return openedMsg{loc: loc, err: err}
	})
}

func (pm panelModel) rerunCmd() tea.Cmd {
	rerun := pm.rerun

	return func() tea.Msg {
		doc, err := rerun(context.Background())
		return rerunMsg{doc: doc, err: err}
	}
}

func (pm panelModel) handleRerun(msg rerunMsg) panelModel {
	if msg.err != nil {
		pm.status = errorStyle.Render(msg.err.Error())
		return pm
	}

	pm.panel.Reset()
	pm.panel.Write(msg.doc)
	pm.cursor = 0
	pm.status = ""
	pm.viewport.Height = pm.bodyHeight()
	pm.refresh()
	pm.viewport.GotoTop()

	return pm
}

// nextLocation finds the next annotated line from cursor in direction step,
// staying put when there is none.
func (pm panelModel) nextLocation(from, step int) int {
	lines := pm.panel.Lines()

	for i := from + step; i >= 0 && i < len(lines); i += step {
		if lines[i].Nav != nil {
			return i
		}
	}

	return from
}

func (pm panelModel) moveTo(line int) panelModel {
	last := len(pm.panel.Lines()) - 1
	if line > last {
		line = last
	}

	if line < 0 {
		line = 0
	}

	pm.cursor = line
	pm.refresh()

	switch {
	case pm.cursor < pm.viewport.YOffset:
		pm.viewport.SetYOffset(pm.cursor)
	case pm.cursor >= pm.viewport.YOffset+pm.viewport.Height:
		pm.viewport.SetYOffset(pm.cursor - pm.viewport.Height + 1)
	}

	return pm
}

func (pm panelModel) resize(width, height int) panelModel {
	pm.width = width
	pm.height = height
	pm.viewport.Width = width
	pm.viewport.Height = pm.bodyHeight()
	pm.refresh()

	return pm
}

// bodyHeight is the number of output lines the viewport shows: the content
// height, capped by the configured maximum and the terminal.
func (pm panelModel) bodyHeight() int {
	height := pm.panel.Height(pm.settings.MaxHeight) - 1

	if pm.height > 0 && height > pm.height-panelChrome {
		height = pm.height - panelChrome
	}

	if height < 1 {
		return 1
	}

	return height
}

// needsPagination returns true if the output does not fit on screen.
func (pm panelModel) needsPagination() bool {
	return pm.height > 0 && len(pm.panel.Lines()) > pm.bodyHeight()
}

func (pm *panelModel) refresh() {
	lines := pm.panel.Lines()
	rendered := make([]string, len(lines))

	for i, line := range lines {
		text := line.Text
		if pm.width > 0 {
			text = truncateToWidth(text, pm.width)
		}

		if i == pm.cursor {
			rendered[i] = cursorStyle.Render(text)
			continue
		}

		rendered[i] = renderLine(m.Line{Text: text, Nav: line.Nav}, func(glyph string, _ m.Location) string {
			return glyphStyle.Render(glyph)
		})
	}

	pm.viewport.SetContent(strings.Join(rendered, "\n"))
}

func (pm panelModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := pm.status
	if footer == "" {
		footer = mutedStyle.Render(panelHelp)
	}

	return bannerStyle.Render(pm.panel.Banner()) + "\n" + pm.viewport.View() + "\n" + footer
}
