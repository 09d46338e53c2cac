//go:build robotgo

package keyboard

import (
	"github.com/go-vgo/robotgo"

	"wedge/inject"
)

func init() {
	register("robotgo", func() (inject.Device, error) { return robotgoDevice{}, nil })
}

// robotgoDevice types through robotgo, which handles Unicode natively.
// Built only with -tags robotgo since it needs cgo and the X11/Cocoa headers.
type robotgoDevice struct{}

func (robotgoDevice) Text(s string) error {
	robotgo.TypeStr(s)
	return nil
}

func (robotgoDevice) Enter() error {
	return robotgo.KeyTap("enter")
}

func (robotgoDevice) Close() error { return nil }
