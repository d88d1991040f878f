package urlkit

import (
	"fmt"
)

// Status is a set of flags reported by the codecs and serializers.
// Zero means success.
type Status int

const (
	ErrBuffer Status = 1 << iota
	ErrAlphabet
	ErrPadding

	StatusErr = ErrBuffer | ErrAlphabet | ErrPadding
)

func (s Status) Err() bool {
	return s&StatusErr != 0
}

func (s Status) Is(f Status) bool {
	return s&f == f
}

func (s Status) Any(f Status) bool {
	return s&f != 0
}

func (s Status) Format(state fmt.State, v rune) {
	if s.Err() {
		fmt.Fprint(state, s.Error())
		return
	}

	fmt.Fprintf(state, "%#x", int(s))
}

func (s Status) Error() string {
	if !s.Err() {
		return "ok"
	}

	r := ""
	comma := false

	add := func(e Status, t string) {
		if !s.Is(e) {
			return
		}

		r += csel(comma, ", ", "")
		r += t
		comma = true
	}

	add(ErrBuffer, "short buffer")
	add(ErrAlphabet, "bad alphabet")
	add(ErrPadding, "bad padding")

	return r
}
