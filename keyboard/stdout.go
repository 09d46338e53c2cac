package keyboard

import (
	"fmt"
	"io"

	"wedge/inject"
)

// NewPrinter returns a backend that writes events to w instead of typing them.
func NewPrinter(w io.Writer) inject.Backend {
	return backend{name: "stdout", open: func() (inject.Device, error) {
		return &printDevice{w: w}, nil
	}}
}

type printDevice struct {
	w io.Writer
}

func (d *printDevice) Text(s string) error {
	_, err := fmt.Fprintf(d.w, "text %q\n", s)
	return err
}

func (d *printDevice) Enter() error {
	_, err := fmt.Fprintln(d.w, "enter")
	return err
}

func (d *printDevice) Close() error { return nil }
