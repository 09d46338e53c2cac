//go:build linux

package keyboard

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"wedge/inject"
)

// ioctl constants from linux/uinput.h
const (
	uiSetEvbit   = 0x40045564 // UI_SET_EVBIT
	uiSetKeybit  = 0x40045565 // UI_SET_KEYBIT
	uiDevCreate  = 0x5501     // UI_DEV_CREATE
	uiDevDestroy = 0x5502     // UI_DEV_DESTROY
)

// input event types from linux/input-event-codes.h
const (
	evSyn = 0x00
	evKey = 0x01
)

const (
	busUSB     = 0x03
	deviceName = "wedge-kbd"

	// Time for the compositor to pick up a freshly created device.
	uinputSettle = 200 * time.Millisecond
)

type inputEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

type inputID struct {
	Bustype uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputUserDev struct {
	Name         [80]byte
	ID           inputID
	FfEffectsMax uint32
	Absmax       [64]int32
	Absmin       [64]int32
	Absfuzz      [64]int32
	Absflat      [64]int32
}

type uinputDevice struct {
	f *os.File
}

func uinputPath() (string, error) {
	for _, p := range []string{"/dev/uinput", "/dev/input/uinput"} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New("uinput device not found, try: sudo modprobe uinput")
}

func ioctl(f *os.File, req, arg uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), req, arg); errno != 0 {
		return errno
	}
	return nil
}

func openUinput() (inject.Device, error) {
	d, err := newUinputDevice()
	if err != nil {
		return nil, err
	}
	return d, nil
}

func newUinputDevice() (*uinputDevice, error) {
	path, err := uinputPath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|syscall.O_NONBLOCK, os.ModeDevice)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w (fix with: sudo chmod 660 %s && sudo chgrp input %s)", path, err, path, path)
	}
	if err := setupUinput(f); err != nil {
		f.Close()
		return nil, err
	}
	time.Sleep(uinputSettle)
	return &uinputDevice{f: f}, nil
}

func setupUinput(f *os.File) error {
	if err := ioctl(f, uiSetEvbit, evKey); err != nil {
		return fmt.Errorf("UI_SET_EVBIT EV_KEY: %w", err)
	}
	if err := ioctl(f, uiSetEvbit, evSyn); err != nil {
		return fmt.Errorf("UI_SET_EVBIT EV_SYN: %w", err)
	}
	// Register all standard keys so udev classifies this as a keyboard
	for code := uintptr(0); code < 256; code++ {
		if err := ioctl(f, uiSetKeybit, code); err != nil {
			return fmt.Errorf("UI_SET_KEYBIT %d: %w", code, err)
		}
	}
	dev := uinputUserDev{}
	copy(dev.Name[:], deviceName)
	dev.ID.Bustype = busUSB
	dev.ID.Vendor = 0x1234
	dev.ID.Product = 0x5679
	dev.ID.Version = 1
	if err := binary.Write(f, binary.LittleEndian, &dev); err != nil {
		return fmt.Errorf("write device descriptor: %w", err)
	}
	if err := ioctl(f, uiDevCreate, 0); err != nil {
		return fmt.Errorf("UI_DEV_CREATE: %w", err)
	}
	return nil
}

func (d *uinputDevice) write(typ, code uint16, value int32) error {
	ev := inputEvent{Type: typ, Code: code, Value: value}
	return binary.Write(d.f, binary.LittleEndian, &ev)
}

// key sends one key transition followed by a sync report.
func (d *uinputDevice) key(code uint16, down bool) error {
	var v int32
	if down {
		v = 1
	}
	if err := d.write(evKey, code, v); err != nil {
		return err
	}
	return d.write(evSyn, 0, 0)
}

func (d *uinputDevice) tap(k keyStroke) error {
	if k.shift {
		if err := d.key(keyLeftShift, true); err != nil {
			return err
		}
	}
	if err := d.key(k.code, true); err != nil {
		return err
	}
	if err := d.key(k.code, false); err != nil {
		return err
	}
	if k.shift {
		return d.key(keyLeftShift, false)
	}
	return nil
}

func (d *uinputDevice) Text(s string) error {
	ks, err := strokes(s)
	if err != nil {
		return err
	}
	for _, k := range ks {
		if err := d.tap(k); err != nil {
			return err
		}
	}
	return nil
}

func (d *uinputDevice) Enter() error {
	return d.tap(keyStroke{code: keyEnter})
}

func (d *uinputDevice) Close() error {
	if d.f == nil {
		return nil
	}
	err := ioctl(d.f, uiDevDestroy, 0)
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	d.f = nil
	return err
}
