package adapter

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"strings"

	m "github.com/mouse-blink/goracle/internal/model"
)

// ErrNoEditor is returned when the editor template is blank.
var ErrNoEditor = errors.New("no editor configured")

// EditorAdapter builds the command that opens a source location in the
// user's editor. The caller owns running and waiting on it.
type EditorAdapter interface {
	Command(loc m.Location) (*exec.Cmd, error)
}

// CommandEditorAdapter expands a command template such as
// "vi +{line} {path}".
type CommandEditorAdapter struct {
	template string
}

// NewCommandEditorAdapter constructs an editor launcher for template. The
// placeholders {path}, {line} and {col} are replaced per location.
func NewCommandEditorAdapter(template string) *CommandEditorAdapter {
	return &CommandEditorAdapter{template: template}
}

// Args returns the argument vector for loc.
func (a *CommandEditorAdapter) Args(loc m.Location) []string {
	replacer := strings.NewReplacer(
		"{path}", string(loc.Path),
		"{line}", strconv.Itoa(loc.Line),
		"{col}", strconv.Itoa(loc.Column),
	)

	fields := strings.Fields(a.template)
	for i, field := range fields {
		fields[i] = replacer.Replace(field)
	}

	return fields
}

// Command returns an unstarted editor process for loc attached to the
// current terminal.
func (a *CommandEditorAdapter) Command(loc m.Location) (*exec.Cmd, error) {
	args := a.Args(loc)
	if len(args) == 0 {
		return nil, ErrNoEditor
	}

	// #nosec G204 - the template comes from the user's own configuration
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}
