// Package hotkey listens for the global Ctrl+Shift+B trigger chord.
package hotkey

type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
}

// Chord is the human-readable trigger combination.
const Chord = "Ctrl+Shift+B"
