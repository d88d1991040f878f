package urlkit

type (
	Charset uint64
	Wideset [2]Charset
)

var (
	Decimals = NewCharset("0123456789")
	Hexes    = Decimals.Wide().Merge("abcdefABCDEF")

	Lower   = NewWideset("").MergeRange('a', 'z')
	Upper   = NewWideset("").MergeRange('A', 'Z')
	Letters = Lower.Or(Upper)

	// Unreserved characters of RFC 3986 §2.3. Everything else gets escaped.
	Unreserved = Letters.Or(Decimals.Wide()).Merge("-_.~")

	SchemeChars = Letters.Or(Decimals.Wide()).Merge("+-.")

	// authority terminators
	AuthorityEnd = NewWideset("/?#")
)

func NewWideset(s string) (x Wideset) {
	return x.Merge(s)
}

func NewCharset(s string) (x Charset) {
	for _, c := range []byte(s) {
		x = x.Set(c)
	}

	return x
}

func (x Wideset) Skip(b []byte, i int) int {
	for i < len(b) && x.Is(b[i]) {
		i++
	}

	return i
}

func (x Wideset) SkipUntil(b []byte, i int) int {
	for i < len(b) && !x.Is(b[i]) {
		i++
	}

	return i
}

func (x Wideset) Is(b byte) bool {
	if b < 64 {
		return x[0].Is(b)
	}
	if b < 128 {
		return x[1].Is(b - 64)
	}

	return false
}

func (x Wideset) Merge(s string) Wideset {
	for _, c := range []byte(s) {
		x = x.Set(c)
	}

	return x
}

func (x Wideset) MergeRange(a, b byte) Wideset {
	for c := a; c <= b; c++ {
		x = x.Set(c)
	}

	return x
}

func (x Wideset) Set(b byte) Wideset {
	if b < 64 {
		x[0] = x[0].Set(b)
	} else if b < 128 {
		x[1] = x[1].Set(b - 64)
	} else {
		panic(b)
	}

	return x
}

func (x Wideset) Or(y Wideset) Wideset {
	x[0] |= y[0]
	x[1] |= y[1]

	return x
}

func (x Wideset) Not(y Wideset) Wideset {
	x[0] &^= y[0]
	x[1] &^= y[1]

	return x
}

func (x Charset) Is(b byte) bool {
	return b < 64 && x&(1<<b) == (1<<b)
}

func (x Charset) Set(b byte) Charset {
	if b >= 64 {
		panic(b)
	}

	return x | 1<<b
}

func (x Charset) Wide() Wideset { return Wideset{x, 0} }
