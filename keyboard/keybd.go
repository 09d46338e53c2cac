package keyboard

import (
	"sync"
	"time"

	"github.com/micmonay/keybd_event"

	"wedge/inject"
)

type keybdDevice struct {
	kb keybd_event.KeyBonding
}

// settler waits once per process for the OS to register the virtual
// keyboard; later opens reuse the already registered device node.
type settler struct {
	once  sync.Once
	d     time.Duration
	sleep func(time.Duration)
}

func (s *settler) wait() {
	s.once.Do(func() {
		if s.d > 0 {
			s.sleep(s.d)
		}
	})
}

var keybdReady = &settler{d: keybdSettle, sleep: time.Sleep}

func openKeybd() (inject.Device, error) {
	return newKeybdDevice()
}

func newKeybdDevice() (*keybdDevice, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, err
	}
	keybdReady.wait()
	return &keybdDevice{kb: kb}, nil
}

func (d *keybdDevice) press(k keyStroke) error {
	d.kb.SetKeys(int(k.code))
	d.kb.HasSHIFT(k.shift)
	return d.kb.Launching()
}

func (d *keybdDevice) Text(s string) error {
	ks, err := strokes(s)
	if err != nil {
		return err
	}
	for _, k := range ks {
		if err := d.press(k); err != nil {
			return err
		}
	}
	return nil
}

func (d *keybdDevice) Enter() error {
	return d.press(keyStroke{code: keyEnter})
}

// paste sends the platform paste chord and clears the modifier afterwards so
// later presses are not affected.
func (d *keybdDevice) paste() error {
	pasteModifier(&d.kb, true)
	defer pasteModifier(&d.kb, false)
	d.kb.SetKeys(keybd_event.VK_V)
	d.kb.HasSHIFT(false)
	return d.kb.Launching()
}

func (d *keybdDevice) Close() error { return nil }
