package urlkit

import (
	"encoding/base64"
	"strings"
)

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	stdDecode = decodeMap(stdAlphabet)
	urlDecode = decodeMap(urlAlphabet)
)

// Base64Encode encodes src with the standard alphabet.
// The last group is padded with = if padding is set.
// Returns the full encoded length and ErrBuffer if dst is too short;
// in that case dst holds a prefix of the encoding.
func Base64Encode(dst, src []byte, padding bool) (int, Status) {
	return base64Encode(dst, src, csel(padding, base64.StdEncoding, base64.RawStdEncoding))
}

// Base64URLEncode is Base64Encode with the URL and file name safe alphabet.
func Base64URLEncode(dst, src []byte, padding bool) (int, Status) {
	return base64Encode(dst, src, csel(padding, base64.URLEncoding, base64.RawURLEncoding))
}

// Base64Decode decodes src encoded with the standard alphabet.
// Padding is optional. Bytes listed in ignore are skipped wherever they are.
// Decoding stops at the first byte outside the alphabet with ErrAlphabet,
// or at data after padding with ErrPadding. The returned length counts
// the bytes decoded up to that point.
func Base64Decode(dst, src []byte, ignore string) (int, Status) {
	return base64Decode(dst, src, ignore, &stdDecode)
}

// Base64URLDecode is Base64Decode with the URL and file name safe alphabet.
func Base64URLDecode(dst, src []byte, ignore string) (int, Status) {
	return base64Decode(dst, src, ignore, &urlDecode)
}

func Base64EncodedLen(n int, padding bool) int {
	return csel(padding, base64.StdEncoding, base64.RawStdEncoding).EncodedLen(n)
}

func base64Encode(dst, src []byte, enc *base64.Encoding) (int, Status) {
	n := enc.EncodedLen(len(src))
	if n <= len(dst) {
		enc.Encode(dst, src)
		return n, 0
	}

	buf := make([]byte, n)
	enc.Encode(buf, src)
	copy(dst, buf)

	return n, ErrBuffer
}

func base64Decode(dst, src []byte, ignore string, dec *[256]byte) (int, Status) {
	w := sink{b: dst}

	var acc uint
	var bits int
	var pad bool

	for _, c := range src {
		if strings.IndexByte(ignore, c) >= 0 {
			continue
		}

		if c == '=' {
			pad = true
			continue
		}

		v := dec[c]
		if v == 0xff {
			n, s := w.result()
			return n, s | ErrAlphabet
		}

		if pad {
			n, s := w.result()
			return n, s | ErrPadding
		}

		acc = acc<<6 | uint(v)
		bits += 6

		if bits >= 8 {
			bits -= 8
			w.byte(byte(acc >> bits))
			acc &= 1<<bits - 1
		}
	}

	return w.result()
}

func decodeMap(alphabet string) (m [256]byte) {
	for i := range m {
		m[i] = 0xff
	}

	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}

	return m
}
