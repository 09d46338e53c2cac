// Package inject replays a list of codes into the focused application, each
// followed by Enter, with a delay before every item.
package inject

import (
	"context"
	"sync"
	"time"
)

// Request is one injection run. It is only read, never modified.
type Request struct {
	Items        []string
	InitialDelay time.Duration
	ItemDelay    time.Duration
}

// Delay returns the wait that precedes item i.
func (r Request) Delay(i int) time.Duration {
	if i == 0 {
		return r.InitialDelay
	}
	return r.ItemDelay
}

type Option func(*Engine)

func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// Engine runs Requests against a Backend. Runs may be started concurrently;
// they share one emission lock, so items of different runs can interleave
// but the text and Enter of a single item never do.
type Engine struct {
	backend  Backend
	clock    Clock
	observer Observer

	mu sync.Mutex // held only around one item's text+Enter pair
}

func New(backend Backend, opts ...Option) *Engine {
	e := &Engine{
		backend:  backend,
		clock:    SystemClock,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Backend() Backend { return e.backend }

// Run delivers req.Items in order. An empty request succeeds without opening
// the backend or waiting. The first failure aborts the run and is returned as
// an *Error; nothing already typed is undone.
func (e *Engine) Run(ctx context.Context, req Request) error {
	if len(req.Items) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return &Error{Kind: KindCanceled, Index: 0, Err: err}
	}

	dev, err := e.backend.Open()
	if err != nil {
		return &Error{Kind: KindInit, Index: NoIndex, Err: err}
	}
	defer dev.Close()

	e.observer.RunStarted(len(req.Items))
	for i, item := range req.Items {
		d := req.Delay(i)
		e.observer.Waiting(i, d)
		if err := e.clock.Sleep(ctx, d); err != nil {
			return &Error{Kind: KindCanceled, Index: i, Err: err}
		}
		if err := e.emit(dev, i, item); err != nil {
			return err
		}
		e.observer.ItemSent(i, item)
	}
	return nil
}

func (e *Engine) emit(dev Device, i int, item string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := dev.Text(item); err != nil {
		return &Error{Kind: KindText, Index: i, Err: err}
	}
	if err := dev.Enter(); err != nil {
		return &Error{Kind: KindKey, Index: i, Err: err}
	}
	return nil
}
