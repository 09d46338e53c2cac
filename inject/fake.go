package inject

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Trace is an ordered, concurrency-safe event log shared by the fakes.
type Trace struct {
	mu     sync.Mutex
	events []string
}

func (t *Trace) Add(ev string) {
	t.mu.Lock()
	t.events = append(t.events, ev)
	t.mu.Unlock()
}

func (t *Trace) Events() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.events))
	copy(out, t.events)
	return out
}

// Count returns how many events equal ev or start with ev+":".
func (t *Trace) Count(ev string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, e := range t.events {
		if e == ev || len(e) > len(ev) && e[:len(ev)+1] == ev+":" {
			n++
		}
	}
	return n
}

// FakeBackend records device activity into a Trace as "open", "text:<s>",
// "enter" and "close". Text and Enter calls are counted from 0 across all
// devices it opens.
type FakeBackend struct {
	trace *Trace

	mu        sync.Mutex
	openErr   error
	closeErr  error
	textErrAt int
	textErr   error
	keyErrAt  int
	keyErr    error
	texts     int
	keys      int
	open      int
	hook      func(ev string)
}

func NewFake(trace *Trace) *FakeBackend {
	return &FakeBackend{trace: trace, textErrAt: -1, keyErrAt: -1}
}

func (f *FakeBackend) Name() string { return "fake" }

// FailOpen makes Open return err.
func (f *FakeBackend) FailOpen(err error) { f.openErr = err }

// FailClose makes device Close return err after releasing the device.
func (f *FakeBackend) FailClose(err error) { f.closeErr = err }

// FailText makes the n-th Text call return err.
func (f *FakeBackend) FailText(n int, err error) { f.textErrAt, f.textErr = n, err }

// FailEnter makes the n-th Enter call return err.
func (f *FakeBackend) FailEnter(n int, err error) { f.keyErrAt, f.keyErr = n, err }

// OnEvent installs a hook called after each recorded event.
func (f *FakeBackend) OnEvent(fn func(ev string)) { f.hook = fn }

// Opened reports how many devices are currently open.
func (f *FakeBackend) Opened() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *FakeBackend) record(ev string) {
	f.trace.Add(ev)
	if f.hook != nil {
		f.hook(ev)
	}
}

func (f *FakeBackend) Open() (Device, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	f.mu.Lock()
	f.open++
	f.mu.Unlock()
	f.record("open")
	return &fakeDevice{b: f}, nil
}

type fakeDevice struct {
	b      *FakeBackend
	closed bool
}

func (d *fakeDevice) Text(s string) error {
	d.b.mu.Lock()
	n := d.b.texts
	d.b.texts++
	d.b.mu.Unlock()
	if n == d.b.textErrAt {
		return d.b.textErr
	}
	d.b.record("text:" + s)
	return nil
}

func (d *fakeDevice) Enter() error {
	d.b.mu.Lock()
	n := d.b.keys
	d.b.keys++
	d.b.mu.Unlock()
	if n == d.b.keyErrAt {
		return d.b.keyErr
	}
	d.b.record("enter")
	return nil
}

func (d *fakeDevice) Close() error {
	if d.closed {
		return fmt.Errorf("fake device closed twice")
	}
	d.closed = true
	d.b.mu.Lock()
	d.b.open--
	d.b.mu.Unlock()
	d.b.record("close")
	return d.b.closeErr
}

// FakeClock is a virtual clock: Sleep returns at once and records
// "sleep:<d>" into the trace. Elapsed is the sum of all requested sleeps.
type FakeClock struct {
	trace *Trace

	mu      sync.Mutex
	elapsed time.Duration
	block   chan struct{}
}

func NewFakeClock(trace *Trace) *FakeClock {
	return &FakeClock{trace: trace}
}

// Hold makes subsequent Sleeps block until Release or ctx cancellation.
func (c *FakeClock) Hold() {
	c.mu.Lock()
	c.block = make(chan struct{})
	c.mu.Unlock()
}

func (c *FakeClock) Release() {
	c.mu.Lock()
	if c.block != nil {
		close(c.block)
		c.block = nil
	}
	c.mu.Unlock()
}

func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

func (c *FakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.elapsed += d
	block := c.block
	c.mu.Unlock()
	c.trace.Add("sleep:" + d.String())

	if block == nil {
		return ctx.Err()
	}
	select {
	case <-block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
