package urlkit

const hexu = "0123456789ABCDEF"

var percent = NewWideset("%")

// sink writes into a fixed buffer and counts what did not fit.
// Once the buffer is full nothing more is written, so it always
// holds a prefix of the full output. Escapes are never cut.
type sink struct {
	b    []byte
	n    int
	full bool
}

func (w *sink) str(s string) {
	if !w.full {
		k := copy(w.b[w.n:], s)
		w.full = k < len(s)
	}

	w.n += len(s)
}

// whole writes s entirely or not at all.
func (w *sink) whole(s string) {
	if !w.full && w.n+len(s) <= len(w.b) {
		copy(w.b[w.n:], s)
	} else {
		w.full = true
	}

	w.n += len(s)
}

func (w *sink) byte(c byte) {
	if !w.full && w.n < len(w.b) {
		w.b[w.n] = c
	} else {
		w.full = true
	}

	w.n++
}

func (w *sink) esc(c byte) {
	if !w.full && w.n+3 <= len(w.b) {
		w.b[w.n] = '%'
		w.b[w.n+1] = hexu[c>>4]
		w.b[w.n+2] = hexu[c&0xf]
	} else {
		w.full = true
	}

	w.n += 3
}

// escaped writes s escaping every byte not in keep.
// If keep has '%', well formed escapes are passed through as they are.
func (w *sink) escaped(s string, keep Wideset) {
	pass := keep.Is('%')
	keep = keep.Not(percent)

	for i := 0; i < len(s); {
		done := i
		i = keep.Skip([]byte(s), i)
		w.str(s[done:i])

		if i == len(s) {
			break
		}

		if pass && s[i] == '%' && i+2 < len(s) && Hexes.Is(s[i+1]) && Hexes.Is(s[i+2]) {
			w.whole(s[i : i+3])
			i += 3
			continue
		}

		w.esc(s[i])
		i++
	}
}

func (w *sink) result() (int, Status) {
	if w.n > len(w.b) {
		return w.n, ErrBuffer
	}

	return w.n, 0
}

// Encode percent-encodes src into dst. Unreserved characters are copied,
// every other byte becomes %XX with upper case hex digits.
// It returns the full encoded length; if that is more than len(dst)
// the output is truncated and ErrBuffer is reported.
func Encode(dst, src []byte) (int, Status) {
	w := sink{b: dst}
	w.escaped(string(src), Unreserved)

	return w.result()
}

// Decode reverses Encode. A % not followed by two hex digits is copied as is.
// Truncation is reported as in Encode.
func Decode(dst, src []byte) (int, Status) {
	w := sink{b: dst}

	for i := 0; i < len(src); {
		if src[i] == '%' && i+2 < len(src) && Hexes.Is(src[i+1]) && Hexes.Is(src[i+2]) {
			w.byte(unhex(src[i+1])<<4 | unhex(src[i+2]))
			i += 3
			continue
		}

		w.byte(src[i])
		i++
	}

	return w.result()
}

func EncodedLen(src []byte) int {
	n, _ := Encode(nil, src)
	return n
}

func DecodedLen(src []byte) int {
	n, _ := Decode(nil, src)
	return n
}

func EncodeString(s string) string {
	b := make([]byte, EncodedLen([]byte(s)))
	n, _ := Encode(b, []byte(s))

	return string(b[:n])
}

func DecodeString(s string) string {
	b := make([]byte, DecodedLen([]byte(s)))
	n, _ := Decode(b, []byte(s))

	return string(b[:n])
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
