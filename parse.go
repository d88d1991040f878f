package urlkit

import (
	"strings"
)

// Parse splits text into URL components.
// It never fails: a malformed port or an unknown scheme gives a URL
// with IsValid false and as many components set as could be found.
// Input longer than MaxURLSize gives an empty invalid URL.
func Parse(text string) (u URL) {
	if len(text) > MaxURLSize {
		return u
	}

	u.text = text

	i, ok := schemeEnd(text)
	if !ok {
		u.splitPath(text)
		return u
	}

	u.scheme = Some(text[:i])
	info := lookupScheme(text[:i])
	rest := text[i+1:]

	switch {
	case info == nil:
		u.splitPath(rest)
		return u
	case info.Type == SchemeFile:
		rest = u.parseFileHost(rest)
	case info.Authority && strings.HasPrefix(rest, "//"):
		end := AuthorityEnd.SkipUntil([]byte(rest), 2)

		ok = u.parseAuthority(rest[2:end])
		rest = rest[end:]
	}

	u.splitPath(rest)

	if ok {
		u.info = info
	}

	return u
}

// schemeEnd returns the index of the colon ending the scheme.
// host:port without a known scheme is not mistaken for one.
func schemeEnd(text string) (int, bool) {
	if text == "" || !Letters.Is(text[0]) {
		return 0, false
	}

	i := SchemeChars.Skip([]byte(text), 0)
	if i == len(text) || text[i] != ':' {
		return 0, false
	}

	if lookupScheme(text[:i]) != nil {
		return i, true
	}

	_, n, j := Unsigned(text, i+1, 1<<16-1)
	if n.Is(Int) && (j == len(text) || text[j] == '/') {
		return 0, false
	}

	return i, true
}

func (u *URL) parseAuthority(auth string) bool {
	if at := strings.LastIndexByte(auth, '@'); at >= 0 {
		user := auth[:at]
		auth = auth[at+1:]

		if c := strings.IndexByte(user, ':'); c >= 0 {
			u.username = Some(user[:c])
			u.password = Some(user[c+1:])
		} else {
			u.username = Some(user)
		}
	}

	// [::1]:80 splits after the bracket
	bracket := 0
	if strings.HasPrefix(auth, "[") {
		bracket = strings.IndexByte(auth, ']') + 1
	}

	c := strings.LastIndexByte(auth, ':')
	if c < bracket {
		u.host = Some(auth)
		return true
	}

	u.host = Some(auth[:c])
	port := auth[c+1:]

	if port == "" {
		return true
	}

	v, n, i := Unsigned(port, 0, 1<<16-1)
	if !n.Ok() || i != len(port) || i > 5 {
		return false
	}

	u.port = Some(uint16(v))

	return true
}

// parseFileHost consumes //host of a file URL and returns the path part.
// file://C:/dir is a drive path, not a host.
func (u *URL) parseFileHost(rest string) string {
	if !strings.HasPrefix(rest, "//") {
		return rest
	}

	end := AuthorityEnd.SkipUntil([]byte(rest), 2)
	host := rest[2:end]

	if isDrive(host) {
		return rest[2:]
	}

	if host != "" {
		u.host = Some(host)
	}

	return rest[end:]
}

func (u *URL) splitPath(rest string) {
	end := strings.IndexAny(rest, "?#")
	if end < 0 {
		end = len(rest)
	}

	if end != 0 {
		u.path = Some(rest[:end])
	}

	rest = rest[end:]

	if strings.HasPrefix(rest, "?") {
		end = strings.IndexByte(rest, '#')
		if end < 0 {
			end = len(rest)
		}

		u.query = Some(rest[1:end])
		rest = rest[end:]
	}

	if strings.HasPrefix(rest, "#") {
		u.fragment = Some(rest[1:])
	}
}

// isDrive reports whether s is exactly a drive letter like C: or C|.
func isDrive(s string) bool {
	return len(s) == 2 && Letters.Is(s[0]) && (s[1] == ':' || s[1] == '|')
}

// drivePrefix returns the length of a leading drive letter, with an optional slash before it.
func drivePrefix(p string) int {
	i := 0
	if strings.HasPrefix(p, "/") {
		i = 1
	}

	if len(p) < i+2 || !isDrive(p[i:i+2]) {
		return 0
	}

	if len(p) > i+2 && p[i+2] != '/' && p[i+2] != '\\' {
		return 0
	}

	return i + 2
}
