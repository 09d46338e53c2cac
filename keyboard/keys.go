package keyboard

import "fmt"

type keyStroke struct {
	code  uint16
	shift bool
}

func lookupKey(r rune) (keyStroke, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return keyStroke{letterCodes[r-'a'], false}, true
	case r >= 'A' && r <= 'Z':
		return keyStroke{letterCodes[r-'A'], true}, true
	case r >= '0' && r <= '9':
		return keyStroke{digitCodes[r-'0'], false}, true
	}
	k, ok := symbolKeys[r]
	return k, ok
}

// strokes maps all of s up front so that an unsupported rune fails the text
// event before anything is typed.
func strokes(s string) ([]keyStroke, error) {
	out := make([]keyStroke, 0, len(s))
	for i, r := range s {
		k, ok := lookupKey(r)
		if !ok {
			return nil, fmt.Errorf("no key for %q at byte %d (try the clipboard backend)", r, i)
		}
		out = append(out, k)
	}
	return out, nil
}
