package hotkey

import "time"

// Trigger turns raw chord presses into actions. A tap fires on release so
// held modifiers are up before anything is typed; holding the chord for at
// least the hold threshold asks to cancel instead.
type Trigger struct {
	fireCh   chan struct{}
	cancelCh chan struct{}
	done     chan struct{}
}

func NewTrigger(hk Hotkey, hold time.Duration) *Trigger {
	t := &Trigger{
		fireCh:   make(chan struct{}, 1),
		cancelCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go t.run(hk, hold)
	return t
}

// Fire is signaled after a short press is released.
func (t *Trigger) Fire() <-chan struct{} { return t.fireCh }

// Cancel is signaled after a long press is released.
func (t *Trigger) Cancel() <-chan struct{} { return t.cancelCh }

func (t *Trigger) Stop() { close(t.done) }

func (t *Trigger) run(hk Hotkey, hold time.Duration) {
	for {
		select {
		case <-t.done:
			return
		case <-hk.Keydown():
		}
		pressed := time.Now()
		select {
		case <-t.done:
			return
		case <-hk.Keyup():
		}
		// A pending signal already covers this press
		out := t.fireCh
		if time.Since(pressed) >= hold {
			out = t.cancelCh
		}
		select {
		case out <- struct{}{}:
		default:
		}
	}
}
