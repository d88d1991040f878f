package urlkit

import (
	"strconv"
)

// Style selects one of the serialization algorithms.
type Style int

const (
	// StyleStandard is scheme://[user[:password]@]host[:port]/path[?query][#fragment].
	StyleStandard Style = iota
	// StylePath is scheme:path[?query][#fragment], for schemes without authority like about: or javascript:.
	StylePath
	// StyleFile is file://[host]/path.
	StyleFile
	// StyleMailto is mailto:path[?query].
	StyleMailto
)

// Characters left as they are in each component.
// A % is kept only when it starts a valid escape.
var (
	subDelims = NewWideset("!$&'()*+,;=")

	userKeep     = Unreserved.Or(subDelims).Merge("%")
	passwordKeep = userKeep.Merge(":")
	pathKeep     = userKeep.Merge(":@/")
	queryKeep    = pathKeep.Merge("?")
)

// StyleOf returns the style a URL of type t is rendered with.
func StyleOf(t SchemeType) Style {
	switch t {
	case SchemeFile:
		return StyleFile
	case SchemeMail:
		return StyleMailto
	}

	if p := t.info(); p != nil && p.Authority {
		return StyleStandard
	}

	return StylePath
}

// Create renders u with the given style into dst.
// It returns the full length of the rendered URL.
// If it is more than len(dst) the output is truncated and ErrBuffer is returned.
func Create(dst []byte, u URL, style Style) (int, Status) {
	w := sink{b: dst}

	switch style {
	case StyleStandard:
		u.createStandard(&w)
	case StylePath:
		u.createPath(&w)
	case StyleFile:
		u.createFile(&w)
	case StyleMailto:
		u.createMailto(&w)
	}

	return w.result()
}

func CreateStandardURL(dst []byte, u URL) (int, Status) { return Create(dst, u, StyleStandard) }
func CreatePathURL(dst []byte, u URL) (int, Status)     { return Create(dst, u, StylePath) }
func CreateFileURL(dst []byte, u URL) (int, Status)     { return Create(dst, u, StyleFile) }
func CreateMailtoURL(dst []byte, u URL) (int, Status)   { return Create(dst, u, StyleMailto) }

func (u URL) createStandard(w *sink) {
	if s, ok := u.scheme.Get(); ok {
		w.str(s)
		w.byte(':')
	}

	w.str("//")

	if user, ok := u.username.Get(); ok {
		w.escaped(user, userKeep)

		if pass, ok := u.password.Get(); ok {
			w.byte(':')
			w.escaped(pass, passwordKeep)
		}

		w.byte('@')
	}

	w.str(u.host.Value())

	if port, ok := u.port.Get(); ok {
		var buf [8]byte

		w.byte(':')
		w.str(string(strconv.AppendUint(buf[:0], uint64(port), 10)))
	}

	path := u.path.Value()
	if len(path) == 0 || path[0] != '/' {
		w.byte('/')
	}

	w.escaped(path, pathKeep)

	u.createTail(w, true)
}

func (u URL) createPath(w *sink) {
	if s, ok := u.scheme.Get(); ok {
		w.str(s)
		w.byte(':')
	}

	w.escaped(u.path.Value(), pathKeep)

	u.createTail(w, true)
}

func (u URL) createFile(w *sink) {
	w.str("file://")
	w.str(u.host.Value())

	path := u.path.Value()
	if len(path) == 0 || path[0] != '/' {
		w.byte('/')
	}

	d := drivePrefix(path)
	w.str(path[:d])
	w.escaped(path[d:], pathKeep)
}

func (u URL) createMailto(w *sink) {
	w.str("mailto:")
	w.escaped(u.path.Value(), pathKeep)

	u.createTail(w, false)
}

func (u URL) createTail(w *sink, fragment bool) {
	if q, ok := u.query.Get(); ok {
		w.byte('?')
		w.escaped(q, queryKeep)
	}

	if f, ok := u.fragment.Get(); ok && fragment {
		w.byte('#')
		w.escaped(f, queryKeep)
	}
}
