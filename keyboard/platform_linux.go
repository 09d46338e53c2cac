//go:build linux

package keyboard

import "time"

const defaultBackend = "uinput"

// keybd_event creates its own uinput device on linux and needs time before
// the compositor delivers its events.
const keybdSettle = 2 * time.Second

func init() {
	register("uinput", openUinput)
}
