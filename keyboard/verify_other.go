//go:build !linux

package keyboard

// Verify opens and releases the named backend.
func Verify(name string) (string, error) {
	return verifyOpen(name)
}
