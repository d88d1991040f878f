package urlkit

// EqualFold returns the length of the common prefix of x and y
// with ASCII letters compared case-insensitively.
func EqualFold(x, y string) int {
	i := 0

	for i < len(x) && i < len(y) {
		if x[i] == y[i] {
			i++
			continue
		}

		xx := x[i] | 0x20
		yy := y[i] | 0x20

		if xx != yy || xx < 'a' || xx > 'z' {
			break
		}

		i++
	}

	return i
}

func Same(x, y string, caseSensitive bool) bool {
	if len(x) != len(y) {
		return false
	}
	if caseSensitive {
		return x == y
	}

	return EqualFold(x, y) == len(x)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}

	return c
}

func csel[T any](c bool, x, y T) T {
	if c {
		return x
	}

	return y
}
