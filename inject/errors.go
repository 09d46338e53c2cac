package inject

import (
	"errors"
	"fmt"
)

// NoIndex marks failures that happen before any item is processed.
const NoIndex = -1

type Kind int

const (
	KindInit Kind = iota + 1
	KindText
	KindKey
	KindCanceled
)

var (
	ErrInputInit = errors.New("input initialization failed")
	ErrTextInput = errors.New("text input failed")
	ErrKeyEvent  = errors.New("enter key failed")
)

// Error is the failure outcome of a run. Items before Index were delivered
// and stay delivered; items after it were never attempted.
type Error struct {
	Kind  Kind
	Index int
	Err   error
}

func (e *Error) Error() string {
	var prefix string
	switch e.Kind {
	case KindInit:
		prefix = "Input initialization failed"
	case KindText:
		prefix = "Text input failed"
	case KindKey:
		prefix = "Enter key failed"
	case KindCanceled:
		prefix = "Injection canceled"
	default:
		prefix = fmt.Sprintf("Injection failed (kind %d)", e.Kind)
	}
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrInputInit:
		return e.Kind == KindInit
	case ErrTextInput:
		return e.Kind == KindText
	case ErrKeyEvent:
		return e.Kind == KindKey
	}
	return false
}
