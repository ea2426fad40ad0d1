package engine

import "strings"

// Sanitize strips terminal control and escape sequences from
// backend-supplied text before it reaches the render layer. The backend is
// trusted with data, not with markup: a task title containing an ANSI
// escape (or anything else below 0x20) must render as plain text, never
// restyle or corrupt the screen. Printable text, including characters like
// "<script>", passes through untouched.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}

	const (
		statePlain = iota
		stateEsc   // just saw ESC
		stateCSI   // inside an ESC[ sequence
	)

	var b strings.Builder
	b.Grow(len(s))
	state := statePlain
	for _, r := range s {
		switch state {
		case stateEsc:
			if r == '[' {
				state = stateCSI
			} else {
				// Two-character escape; the second char is consumed too.
				state = statePlain
			}
		case stateCSI:
			// Parameter and intermediate bytes run until a final byte.
			if r >= 0x40 && r <= 0x7e {
				state = statePlain
			}
		default:
			switch {
			case r == 0x1b:
				state = stateEsc
			case r == '\n' || r == '\t':
				b.WriteRune(' ')
			case r < 0x20 || r == 0x7f:
				// Drop other control characters outright.
			default:
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

// SanitizeAll sanitizes a string slice in place and returns it.
func SanitizeAll(ss []string) []string {
	for i, s := range ss {
		ss[i] = Sanitize(s)
	}
	return ss
}
