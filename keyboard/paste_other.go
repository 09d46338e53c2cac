//go:build !darwin

package keyboard

import "github.com/micmonay/keybd_event"

func pasteModifier(kb *keybd_event.KeyBonding, on bool) {
	kb.HasCTRL(on)
}
