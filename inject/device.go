package inject

import "time"

// Device is an exclusively owned connection to something that can
// synthesize keyboard input on the host.
type Device interface {
	// Text inserts s as if typed.
	Text(s string) error
	// Enter presses and releases the Enter key.
	Enter() error
	Close() error
}

// Backend opens Devices. Each run opens its own Device and closes it when done.
type Backend interface {
	Name() string
	Open() (Device, error)
}

// Observer receives progress callbacks from a run. Callbacks are invoked
// from the goroutine executing Run and never while the emission lock is held.
type Observer interface {
	RunStarted(n int)
	Waiting(index int, d time.Duration)
	ItemSent(index int, item string)
}

type nopObserver struct{}

func (nopObserver) RunStarted(int)             {}
func (nopObserver) Waiting(int, time.Duration) {}
func (nopObserver) ItemSent(int, string)       {}
