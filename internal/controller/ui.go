// Package controller renders query results and talks to the user: a plain
// text UI for pipes and editors, and a Bubble Tea UI for terminals.
package controller

import (
	"context"
	"errors"
	"os/exec"

	m "github.com/mouse-blink/goracle/internal/model"
)

// ErrPromptCancelled is returned by prompts the user dismissed.
var ErrPromptCancelled = errors.New("prompt cancelled")

// RerunFunc runs the presented query again and returns its annotated output.
type RerunFunc func(ctx context.Context) (m.OutputDocument, error)

// PresentOption is a functional option for Present.
type PresentOption func(*PresentConfig)

// PresentConfig holds per-call presentation settings.
type PresentConfig struct {
	rerun RerunFunc
}

// WithRerun lets the panel re-run the query on request.
func WithRerun(rerun RerunFunc) PresentOption {
	return func(c *PresentConfig) {
		c.rerun = rerun
	}
}

// Rerun returns the function set by WithRerun, or nil.
func (c PresentConfig) Rerun() RerunFunc {
	return c.rerun
}

func newPresentConfig(options []PresentOption) PresentConfig {
	var cfg PresentConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// Opener builds the process that opens a source location, typically an
// editor. The UI runs it in the foreground and waits for it to exit.
type Opener interface {
	Command(loc m.Location) (*exec.Cmd, error)
}

// Settings configures a UI.
type Settings struct {
	// MaxHeight caps the number of panel lines shown at once.
	MaxHeight int
	// Hyperlinks wraps navigation glyphs in terminal hyperlinks.
	Hyperlinks bool
	Opener     Opener
}

// Prompter asks the user for an analysis scope.
type Prompter interface {
	// PromptScope asks for a scope, pre-filled with initial. history holds
	// earlier scopes, most recent first, for recall. A dismissed prompt
	// returns ErrPromptCancelled.
	PromptScope(initial string, history []string) (string, error)
}

// Presenter shows an annotated document in the session's output panel.
type Presenter interface {
	// Present replaces the panel content with doc and brings it into view.
	Present(doc m.OutputDocument, options ...PresentOption) error
}

// UI defines everything a session needs from its front end.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Prompter
	Presenter
	// ReadLine reads one command line; io.EOF ends the session.
	ReadLine(prompt string) (string, error)
	DisplayHistory(current string, history []string) error
	DisplayModes(modes []m.Mode) error
	DisplayMessage(format string, args ...any)
}
