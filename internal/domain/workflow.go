package domain

import (
	"context"

	"github.com/mouse-blink/goracle/internal/controller"
	m "github.com/mouse-blink/goracle/internal/model"
)

// QueryArgs describes one user request.
type QueryArgs struct {
	Document m.Document
	Mode     m.Mode
	// Line and Column, when Line is positive, replace Document.Selection
	// with the character at that 1-based line and column. They are resolved
	// against the file only after its preconditions hold.
	Line   int
	Column int
}

// Workflow defines the user-facing operations of a session.
type Workflow interface {
	Query(ctx context.Context, args QueryArgs) error
	Scope() string
	SetScope(candidate string) (string, error)
	ShowHistory() error
	ShowModes() error
}

type workflow struct {
	session    *Session
	invoker    Invoker
	annotator  *Annotator
	dispatcher *Dispatcher
	ui         controller.UI
}

// NewWorkflow creates a new Workflow for sess.
func NewWorkflow(sess *Session, invoker Invoker, annotator *Annotator, ui controller.UI) Workflow {
	w := &workflow{
		session:   sess,
		invoker:   invoker,
		annotator: annotator,
		ui:        ui,
	}
	w.dispatcher = NewDispatcher(w.execute)

	return w
}

// Query validates the request, runs the tool and presents the annotated
// result. Re-running from the result panel goes through the same dispatcher,
// so it is refused while a run is in flight.
func (w *workflow) Query(ctx context.Context, args QueryArgs) error {
	doc := args.Document

	if args.Line > 0 {
		doc.Selection = m.Selection{Line: args.Line, Column: args.Column}
	}

	inv, err := w.invoker.Prepare(ctx, w.session, doc, args.Mode)
	if err != nil {
		return err
	}

	out, err := w.dispatcher.Await(ctx, inv)
	if err != nil {
		return err
	}

	rerun := func(ctx context.Context) (m.OutputDocument, error) {
		return w.dispatcher.Await(ctx, inv)
	}

	return w.ui.Present(out, controller.WithRerun(rerun))
}

func (w *workflow) execute(ctx context.Context, inv m.Invocation) (m.OutputDocument, error) {
	raw, err := w.invoker.Execute(ctx, w.session, inv)
	if err != nil {
		return m.OutputDocument{}, err
	}

	return w.annotator.Annotate(raw), nil
}

func (w *workflow) Scope() string {
	return w.session.Scopes.Scope()
}

func (w *workflow) SetScope(candidate string) (string, error) {
	return w.session.Scopes.SetScope(candidate)
}

func (w *workflow) ShowHistory() error {
	return w.ui.DisplayHistory(w.session.Scopes.Scope(), w.session.Scopes.History())
}

func (w *workflow) ShowModes() error {
	return w.ui.DisplayModes(m.Modes)
}
