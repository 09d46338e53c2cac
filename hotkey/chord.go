package hotkey

// evdev key codes
const (
	evKey      = 1
	keyPress   = 1
	keyRelease = 0
	keyLCtrl   = 29
	keyRCtrl   = 97
	keyLShift  = 42
	keyRShift  = 54
	keyB       = 48
)

type edge int

const (
	edgeNone edge = iota
	edgeDown
	edgeUp
)

// chordState tracks modifier state from raw key events on one device and
// reports the press and release of the trigger key while Ctrl and Shift are
// held. Autorepeat (value 2) is ignored.
type chordState struct {
	ctrl, shift, held bool
}

func (c *chordState) feed(code uint16, value int32) edge {
	pressed := value == keyPress
	released := value == keyRelease

	switch code {
	case keyLCtrl, keyRCtrl:
		c.ctrl = pressed || (!released && c.ctrl)
	case keyLShift, keyRShift:
		c.shift = pressed || (!released && c.shift)
	case keyB:
		if pressed && !c.held && c.ctrl && c.shift {
			c.held = true
			return edgeDown
		}
		if released && c.held {
			c.held = false
			return edgeUp
		}
	}
	return edgeNone
}
