package controller

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/goracle/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	input    io.Reader
	output   io.Writer
	settings Settings
	panel    *Panel
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer, settings Settings) *TUI {
	return &TUI{input: input, output: output, settings: settings}
}

// Present shows doc in the panel. Content that fits on screen is printed
// once; longer content opens a scrollable panel.
func (t *TUI) Present(doc m.OutputDocument, options ...PresentOption) error {
	cfg := newPresentConfig(options)

	panel := t.ensurePanel()
	panel.Reset()
	panel.Write(doc)

	model := newPanelModel(panel, t.settings, cfg.rerun)

	if width, height, ok := t.terminalSize(); ok {
		model = model.resize(width, height)
	}

	if !model.needsPagination() {
		_, err := io.WriteString(t.output, renderPanel(panel, t.settings.Hyperlinks))
		return err
	}

	return t.run(model)
}

// PromptScope asks for a scope in a text input with history recall.
func (t *TUI) PromptScope(initial string, history []string) (string, error) {
	return t.prompt(newPromptModel("Analysis scope", initial, history))
}

// ReadLine reads a session command.
func (t *TUI) ReadLine(prompt string) (string, error) {
	value, err := t.prompt(newPromptModel(strings.TrimSpace(prompt), "", nil))
	if errors.Is(err, ErrPromptCancelled) {
		return "", io.EOF
	}

	return value, err
}

// DisplayHistory lists past scopes, most recent first.
func (t *TUI) DisplayHistory(current string, history []string) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(t.output, mutedStyle.Render("No scope set"))
		return err
	}

	var b strings.Builder

	for i, scope := range history {
		line := fmt.Sprintf("%3d  %s", i+1, scope)
		if i == 0 && scope == current {
			line = currentStyle.Render(line + "  (current)")
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(t.output, b.String())

	return err
}

// DisplayModes lists the supported modes.
func (t *TUI) DisplayModes(modes []m.Mode) error {
	var b strings.Builder

	for _, mode := range modes {
		b.WriteString(modeStyle.Render(fmt.Sprintf("%-11s", mode)))
		b.WriteString(" ")
		b.WriteString(mode.Summary())
		b.WriteByte('\n')
	}

	_, err := io.WriteString(t.output, b.String())

	return err
}

// DisplayMessage prints a single informational line.
func (t *TUI) DisplayMessage(format string, args ...any) {
	_, _ = fmt.Fprintln(t.output, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (t *TUI) prompt(model promptModel) (string, error) {
	final, err := tea.NewProgram(model, tea.WithInput(t.input), tea.WithOutput(t.output)).Run()
	if err != nil {
		return "", err
	}

	result, ok := final.(promptModel)
	if !ok || result.cancelled {
		return "", ErrPromptCancelled
	}

	return result.input.Value(), nil
}

func (t *TUI) run(model panelModel) error {
	program := tea.NewProgram(model, tea.WithInput(t.input), tea.WithOutput(t.output), tea.WithAltScreen())
	_, err := program.Run()

	return err
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

func (t *TUI) ensurePanel() *Panel {
	if t.panel == nil {
		t.panel = NewPanel()
	}

	return t.panel
}

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	modeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
