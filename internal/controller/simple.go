package controller

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/goracle/internal/model"
)

// SimpleUI implements UI with line-oriented text over the command's streams.
// It is what editors talk to through a pipe.
type SimpleUI struct {
	cmd      *cobra.Command
	settings Settings
	reader   *bufio.Reader
	panel    *Panel
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, settings Settings) *SimpleUI {
	return &SimpleUI{cmd: cmd, settings: settings}
}

// Present writes the panel to the command output.
func (s *SimpleUI) Present(doc m.OutputDocument, _ ...PresentOption) error {
	panel := s.ensurePanel()
	panel.Reset()
	panel.Write(doc)

	_, err := io.WriteString(s.cmd.OutOrStdout(), renderPanel(panel, s.settings.Hyperlinks))

	return err
}

// PromptScope asks for a scope on the command streams. An empty answer
// accepts initial; "!N" recalls the N-th most recent history entry. An
// unknown "!N" is reported and answered as blank, so the caller asks again.
func (s *SimpleUI) PromptScope(initial string, history []string) (string, error) {
	prompt := "Analysis scope: "
	if initial != "" {
		prompt = fmt.Sprintf("Analysis scope [%s]: ", initial)
	}

	answer, err := s.ReadLine(prompt)
	if errors.Is(err, io.EOF) {
		return "", ErrPromptCancelled
	}

	if err != nil {
		return "", err
	}

	switch {
	case answer == "" && initial != "":
		return initial, nil
	case strings.HasPrefix(answer, "!"):
		scope, ok := recallHistory(answer, history)
		if !ok {
			s.printf("no history entry %s\n", answer)
		}

		return scope, nil
	default:
		return answer, nil
	}
}

func recallHistory(answer string, history []string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(answer, "!"))
	if err != nil || n < 1 || n > len(history) {
		return "", false
	}

	return history[n-1], true
}

// ReadLine prints prompt and reads a line, without its line terminator.
func (s *SimpleUI) ReadLine(prompt string) (string, error) {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	s.printf("%s", prompt)

	line, err := s.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// DisplayHistory prints the scope history as a table.
func (s *SimpleUI) DisplayHistory(current string, history []string) error {
	if len(history) == 0 {
		s.printf("No scope set\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Scope", ""})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for i, scope := range history {
		marker := ""
		if i == 0 && scope == current {
			marker = "current"
		}

		table.Append([]string{strconv.Itoa(i + 1), scope, marker})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayModes prints the supported modes and what they do.
func (s *SimpleUI) DisplayModes(modes []m.Mode) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mode", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, mode := range modes {
		table.Append([]string{string(mode), mode.Summary()})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplayMessage prints a single informational line.
func (s *SimpleUI) DisplayMessage(format string, args ...any) {
	s.printf(format+"\n", args...)
}

func (s *SimpleUI) ensurePanel() *Panel {
	if s.panel == nil {
		s.panel = NewPanel()
	}

	return s.panel
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
