package controller

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel is a single-line text input with history recall on ↑/↓.
type promptModel struct {
	input     textinput.Model
	history   []string
	index     int // -1 while editing the draft
	draft     string
	cancelled bool
	done      bool
}

func newPromptModel(title, initial string, history []string) promptModel {
	input := textinput.New()
	input.Prompt = title + ": "
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()

	return promptModel{
		input:   input,
		history: history,
		index:   -1,
	}
}

func (pm promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		pm.input, cmd = pm.input.Update(msg)

		return pm, cmd
	}

	//nolint:exhaustive // every other key goes to the text input
	switch keyMsg.Type {
	case tea.KeyEnter:
		pm.done = true
		return pm, tea.Quit

	case tea.KeyEsc, tea.KeyCtrlC:
		pm.cancelled = true
		return pm, tea.Quit

	case tea.KeyUp:
		if pm.index+1 < len(pm.history) {
			if pm.index == -1 {
				pm.draft = pm.input.Value()
			}

			pm.index++
			pm.recall(pm.history[pm.index])
		}

		return pm, nil

	case tea.KeyDown:
		if pm.index >= 0 {
			pm.index--

			if pm.index == -1 {
				pm.recall(pm.draft)
			} else {
				pm.recall(pm.history[pm.index])
			}
		}

		return pm, nil
	}

	var cmd tea.Cmd
	pm.input, cmd = pm.input.Update(msg)

	return pm, cmd
}

func (pm *promptModel) recall(value string) {
	pm.input.SetValue(value)
	pm.input.CursorEnd()
}

func (pm promptModel) View() string {
	if pm.done || pm.cancelled {
		return ""
	}

	view := pm.input.View() + "\n"
	if len(pm.history) > 0 {
		view += mutedStyle.Render("↑/↓ history • enter confirm • esc cancel") + "\n"
	}

	return view
}
