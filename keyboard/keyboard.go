// Package keyboard provides the OS input backends that the injection engine
// types through.
package keyboard

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"wedge/inject"
)

type opener func() (inject.Device, error)

var registry = map[string]opener{
	"keybd":     openKeybd,
	"clipboard": openClipboard,
	"stdout":    func() (inject.Device, error) { return &printDevice{w: os.Stdout}, nil },
}

func register(name string, open opener) {
	registry[name] = open
}

type backend struct {
	name string
	open opener
}

func (b backend) Name() string                 { return b.name }
func (b backend) Open() (inject.Device, error) { return b.open() }

// Lookup returns the named backend. An empty name selects Default().
func Lookup(name string) (inject.Backend, error) {
	if name == "" {
		name = Default()
	}
	open, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown input backend %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return backend{name: name, open: open}, nil
}

// Names lists the registered backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default is the backend used when none is configured.
func Default() string {
	return defaultBackend
}

func verifyOpen(name string) (string, error) {
	b, err := Lookup(name)
	if err != nil {
		return "", err
	}
	dev, err := b.Open()
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.Name(), err)
	}
	if err := dev.Close(); err != nil {
		return "", fmt.Errorf("%s close: %w", b.Name(), err)
	}
	return fmt.Sprintf("%s backend opened and released", b.Name()), nil
}
