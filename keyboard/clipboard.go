package keyboard

import (
	"errors"
	"fmt"
	"time"

	cb "github.com/atotto/clipboard"

	"wedge/inject"
)

const (
	// Target applications read the clipboard asynchronously after the
	// paste chord; changing it sooner can paste the wrong code.
	pasteSettle  = 50 * time.Millisecond
	restoreDelay = 600 * time.Millisecond
)

// clipboardDevice inserts text by pasting it, which handles characters the
// key tables cannot type. The user's clipboard is restored on Close.
type clipboardDevice struct {
	keys  *keybdDevice
	prev  string
	saved bool
}

func openClipboard() (inject.Device, error) {
	if cb.Unsupported {
		return nil, errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	keys, err := newKeybdDevice()
	if err != nil {
		return nil, err
	}
	d := &clipboardDevice{keys: keys}
	if prev, err := cb.ReadAll(); err == nil {
		d.prev, d.saved = prev, true
	}
	return d, nil
}

func (d *clipboardDevice) Text(s string) error {
	if s == "" {
		return nil
	}
	if err := cb.WriteAll(s); err != nil {
		return fmt.Errorf("clipboard copy: %w", err)
	}
	if err := d.keys.paste(); err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	time.Sleep(pasteSettle)
	return nil
}

func (d *clipboardDevice) Enter() error {
	return d.keys.Enter()
}

func (d *clipboardDevice) Close() error {
	if !d.saved {
		return nil
	}
	time.Sleep(restoreDelay)
	if err := cb.WriteAll(d.prev); err != nil {
		return fmt.Errorf("clipboard restore: %w", err)
	}
	return nil
}
