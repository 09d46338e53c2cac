//go:build !linux

package keyboard

const defaultBackend = "keybd"

const keybdSettle = 0
