package domain

import (
	"context"

	"golang.org/x/sync/semaphore"

	m "github.com/mouse-blink/goracle/internal/model"
)

// Outcome is the result of one dispatched invocation.
type Outcome struct {
	Doc m.OutputDocument
	Err error
}

// ExecuteFunc runs one invocation to completion.
type ExecuteFunc func(ctx context.Context, inv m.Invocation) (m.OutputDocument, error)

// Dispatcher runs invocations on a worker goroutine and hands the result back
// through a channel. Only one invocation may be in flight.
type Dispatcher struct {
	sem     *semaphore.Weighted
	execute ExecuteFunc
}

// NewDispatcher constructs a Dispatcher around execute.
func NewDispatcher(execute ExecuteFunc) *Dispatcher {
	return &Dispatcher{
		sem:     semaphore.NewWeighted(1),
		execute: execute,
	}
}

// Submit starts inv and returns a channel receiving exactly one Outcome. It
// fails with ErrBusy while a previous invocation is still running.
func (d *Dispatcher) Submit(ctx context.Context, inv m.Invocation) (<-chan Outcome, error) {
	if !d.sem.TryAcquire(1) {
		return nil, ErrBusy
	}

	done := make(chan Outcome, 1)

	go func() {
		doc, err := d.execute(ctx, inv)
		d.sem.Release(1)

		done <- Outcome{Doc: doc, Err: err}
		close(done)
	}()

	return done, nil
}

// Await submits inv and waits for its outcome or for ctx to end.
func (d *Dispatcher) Await(ctx context.Context, inv m.Invocation) (m.OutputDocument, error) {
	done, err := d.Submit(ctx, inv)
	if err != nil {
		return m.OutputDocument{}, err
	}

	select {
	case outcome := <-done:
		return outcome.Doc, outcome.Err
	case <-ctx.Done():
		return m.OutputDocument{}, ctx.Err()
	}
}
