//go:build linux

package keyboard

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Verify checks that the named backend can deliver input. For uinput it
// creates the device, taps Shift and reads the events back from the kernel
// input layer; other backends are opened and released.
func Verify(name string) (string, error) {
	if name == "" {
		name = Default()
	}
	if name != "uinput" {
		return verifyOpen(name)
	}

	d, err := newUinputDevice()
	if err != nil {
		return "", fmt.Errorf("uinput init: %w", err)
	}
	defer d.Close()

	evdevPath, err := findEvdev(deviceName)
	if err != nil {
		return "", err
	}
	evdev, err := os.Open(evdevPath)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", evdevPath, err)
	}
	defer evdev.Close()

	if err := d.tap(keyStroke{code: keyLeftShift}); err != nil {
		return "", fmt.Errorf("keystroke send: %w", err)
	}

	type result struct {
		down, up bool
		err      error
	}
	ch := make(chan result, 1)
	go func() {
		const size = 24
		buf := make([]byte, size*32)
		var r result
		n, err := evdev.Read(buf)
		if err != nil {
			r.err = err
			ch <- r
			return
		}
		for i := 0; i+size <= n; i += size {
			evType := binary.LittleEndian.Uint16(buf[i+16:])
			evCode := binary.LittleEndian.Uint16(buf[i+18:])
			evValue := int32(binary.LittleEndian.Uint32(buf[i+20:]))
			if evType == evKey && evCode == keyLeftShift {
				if evValue == 1 {
					r.down = true
				} else if evValue == 0 {
					r.up = true
				}
			}
		}
		ch <- r
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("reading events: %w", r.err)
		}
		if !r.down {
			return "", fmt.Errorf("missing events (down=%v, up=%v)", r.down, r.up)
		}
		return fmt.Sprintf("keystroke verified via %s", evdevPath), nil
	case <-time.After(500 * time.Millisecond):
		return "", errors.New("timed out waiting for keystroke events")
	}
}

func findEvdev(name string) (string, error) {
	entries, err := os.ReadDir("/sys/class/input")
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		data, err := os.ReadFile(filepath.Join("/sys/class/input", e.Name(), "device", "name"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) == name {
			return filepath.Join("/dev/input", e.Name()), nil
		}
	}
	return "", fmt.Errorf("%s evdev device not found", name)
}
