package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mouse-blink/goracle/internal/adapter"
	"github.com/mouse-blink/goracle/internal/controller"
	m "github.com/mouse-blink/goracle/internal/model"
)

// maxScopePrompts bounds how often a blank answer re-issues the scope prompt.
const maxScopePrompts = 3

// Invoker checks the preconditions of a query, builds its Invocation and runs
// the analysis tool.
type Invoker interface {
	// Prepare validates the document, obtains a scope and encodes the
	// selection. A line and column selection is resolved only after the
	// file and unsaved checks pass. Nothing is launched.
	Prepare(ctx context.Context, sess *Session, doc m.Document, mode m.Mode) (m.Invocation, error)
	// Execute runs the tool for inv and captures its combined output.
	Execute(ctx context.Context, sess *Session, inv m.Invocation) (m.OutputDocument, error)
	// Run is Prepare followed by Execute.
	Run(ctx context.Context, sess *Session, doc m.Document, mode m.Mode) (m.OutputDocument, error)
}

type invoker struct {
	fsAdapter   adapter.SourceFSAdapter
	toolAdapter adapter.ToolRunnerAdapter
	encoder     *PositionEncoder
	suggester   *ScopeSuggester
	prompter    controller.Prompter
}

// NewInvoker constructs an Invoker backed by the provided adapters. prompter
// is asked for a scope when the session has none.
func NewInvoker(
	fsAdapter adapter.SourceFSAdapter,
	toolAdapter adapter.ToolRunnerAdapter,
	encoder *PositionEncoder,
	suggester *ScopeSuggester,
	prompter controller.Prompter,
) Invoker {
	return &invoker{
		fsAdapter:   fsAdapter,
		toolAdapter: toolAdapter,
		encoder:     encoder,
		suggester:   suggester,
		prompter:    prompter,
	}
}

func (iv *invoker) Run(ctx context.Context, sess *Session, doc m.Document, mode m.Mode) (m.OutputDocument, error) {
	inv, err := iv.Prepare(ctx, sess, doc, mode)
	if err != nil {
		return m.OutputDocument{}, err
	}

	return iv.Execute(ctx, sess, inv)
}

func (iv *invoker) Prepare(_ context.Context, sess *Session, doc m.Document, mode m.Mode) (m.Invocation, error) {
	path, err := iv.checkFile(doc)
	if err != nil {
		return m.Invocation{}, err
	}

	if err := iv.checkSaved(path, doc); err != nil {
		return m.Invocation{}, err
	}

	sel, err := iv.resolveSelection(path, doc.Selection)
	if err != nil {
		return m.Invocation{}, err
	}

	scope, err := iv.ensureScope(sess, path)
	if err != nil {
		return m.Invocation{}, err
	}

	pos, err := iv.encoder.Encode(path, sel)
	if err != nil {
		return m.Invocation{}, fmt.Errorf("failed to encode position: %w", err)
	}

	return m.Invocation{
		Mode:     mode,
		Scope:    scope,
		Position: pos,
		ExtraEnv: sess.ToolEnv(),
	}, nil
}

func (iv *invoker) Execute(ctx context.Context, sess *Session, inv m.Invocation) (m.OutputDocument, error) {
	argv := inv.Args(sess.Tool)

	slog.Debug("running query", "mode", inv.Mode, "pos", inv.Position.String(), "env", inv.ExtraEnv)

	result, err := iv.toolAdapter.Run(ctx, argv, inv.Env(os.Environ()))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return m.OutputDocument{}, ctxErr
		}

		return m.OutputDocument{}, &LaunchError{Tool: sess.Tool, Err: err}
	}

	if result.ExitCode != 0 {
		slog.Debug("analysis tool reported failure", "exit", result.ExitCode)
	}

	return m.NewOutputDocument(inv.Mode, result.Output), nil
}

// resolveSelection turns a line and column selection into a character
// position. Other selections are returned as is.
func (iv *invoker) resolveSelection(path m.Path, sel m.Selection) (m.Selection, error) {
	if sel.Line <= 0 {
		return sel, nil
	}

	pos, err := iv.encoder.PointAt(path, sel.Line, sel.Column)
	if err != nil {
		return m.Selection{}, fmt.Errorf("failed to locate %d:%d: %w", sel.Line, sel.Column, err)
	}

	return m.Selection{Start: pos}, nil
}

// checkFile returns the resolved backing file of doc.
func (iv *invoker) checkFile(doc m.Document) (m.Path, error) {
	if doc.Path == "" {
		return "", ErrNoFile
	}

	path, err := iv.fsAdapter.ResolvePath(doc.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoFile, err)
	}

	info, err := iv.fsAdapter.FileInfo(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoFile, err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNoFile, path)
	}

	return path, nil
}

// checkSaved refuses to run on a buffer whose content may differ from the
// bytes on disk, since offsets are computed against the latter.
func (iv *invoker) checkSaved(path m.Path, doc m.Document) error {
	if doc.Modified {
		return ErrUnsavedChanges
	}

	if doc.Buffer == nil {
		return nil
	}

	onDisk, err := iv.fsAdapter.HashFile(path)
	if err != nil {
		return fmt.Errorf("failed to hash %s: %w", path, err)
	}

	if onDisk != adapter.HashBytes(doc.Buffer) {
		return ErrUnsavedChanges
	}

	return nil
}

// ensureScope returns the session scope, prompting for one when it is empty.
func (iv *invoker) ensureScope(sess *Session, path m.Path) (string, error) {
	if scope := sess.Scopes.Scope(); scope != "" {
		return scope, nil
	}

	initial := ""
	if iv.suggester != nil {
		initial = iv.suggester.Suggest(path)
	}

	for range maxScopePrompts {
		candidate, err := iv.prompter.PromptScope(initial, sess.Scopes.History())
		if errors.Is(err, controller.ErrPromptCancelled) {
			return "", ErrNoScope
		}

		if err != nil {
			return "", fmt.Errorf("failed to read scope: %w", err)
		}

		scope, err := sess.Scopes.SetScope(candidate)
		if errors.Is(err, ErrEmptyScope) {
			initial = ""

			continue
		}

		return scope, err
	}

	return "", ErrEmptyScope
}
