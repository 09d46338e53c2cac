package main

import (
	"context"
	"sync"

	"wedge/hotkey"
	"wedge/log"
)

// runner allows at most one active run and can cancel it.
type runner struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// tryStart launches fn unless a run is already active.
func (r *runner) tryStart(ctx context.Context, fn func(ctx context.Context)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return false
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			r.mu.Lock()
			r.cancel = nil
			r.mu.Unlock()
			cancel()
		}()
		fn(runCtx)
	}()
	return true
}

func (r *runner) active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *runner) cancelActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel == nil {
		return false
	}
	r.cancel()
	return true
}

func (r *runner) wait() { r.wg.Wait() }

// serveHotkey replays a run on every trigger until ctx is done. Triggers
// that arrive while a run is active are dropped; a long press cancels it.
func serveHotkey(ctx context.Context, trig *hotkey.Trigger, status func(string), fn func(ctx context.Context)) {
	var r runner
	defer r.wait()

	for {
		select {
		case <-ctx.Done():
			r.cancelActive()
			return
		case <-trig.Fire():
			if !r.tryStart(ctx, fn) {
				log.Info("trigger dropped: run in progress")
				status("busy: run in progress (hold " + hotkey.Chord + " to cancel)")
			}
		case <-trig.Cancel():
			if r.cancelActive() {
				log.Info("run canceled by hotkey")
				status("canceled")
			}
		}
	}
}
