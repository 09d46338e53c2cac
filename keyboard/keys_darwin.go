//go:build darwin

package keyboard

// macOS virtual key codes (ANSI layout).
const (
	keyEnter     = 0x24
	keyLeftShift = 0x38
)

var letterCodes = [26]uint16{
	0x00, 0x0B, 0x08, 0x02, 0x0E, 0x03, 0x05, 0x04, 0x22, 0x26, // a-j
	0x28, 0x25, 0x2E, 0x2D, 0x1F, 0x23, 0x0C, 0x0F, 0x01, 0x11, // k-t
	0x20, 0x09, 0x0D, 0x07, 0x10, 0x06, // u-z
}

var digitCodes = [10]uint16{0x1D, 0x12, 0x13, 0x14, 0x15, 0x17, 0x16, 0x1A, 0x1C, 0x19}

var symbolKeys = map[rune]keyStroke{
	' ': {0x31, false}, '\t': {0x30, false}, '\n': {0x24, false},
	'.': {0x2F, false}, ',': {0x2B, false}, '/': {0x2C, false},
	';': {0x29, false}, '\'': {0x27, false}, '[': {0x21, false},
	']': {0x1E, false}, '-': {0x1B, false}, '=': {0x18, false},
	'\\': {0x2A, false}, '`': {0x32, false},
	'!': {0x12, true}, '@': {0x13, true}, '#': {0x14, true},
	'$': {0x15, true}, '%': {0x17, true}, '^': {0x16, true},
	'&': {0x1A, true}, '*': {0x1C, true}, '(': {0x19, true},
	')': {0x1D, true}, '_': {0x1B, true}, '+': {0x18, true},
	'{': {0x21, true}, '}': {0x1E, true}, '|': {0x2A, true},
	':': {0x29, true}, '"': {0x27, true}, '<': {0x2B, true},
	'>': {0x2F, true}, '?': {0x2C, true}, '~': {0x32, true},
}
