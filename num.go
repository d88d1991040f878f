package urlkit

type (
	Num int
)

const (
	Int Num = 1 << iota
	Overflow
)

// Unsigned scans decimal digits starting at st and accumulates their value.
// Overflow is reported once the value exceeds max; scanning still
// consumes every digit so the caller sees where the number ends.
func Unsigned(b string, st int, max uint64) (v uint64, n Num, i int) {
	i = st

	for i < len(b) && Decimals.Is(b[i]) {
		if !n.Is(Overflow) {
			v = v*10 + uint64(b[i]-'0')

			if v > max {
				n |= Overflow
			}
		}

		n |= Int
		i++
	}

	if n.Is(Overflow) {
		v = 0
	}

	return v, n, i
}

func (n Num) Is(x Num) bool {
	return n&x == x
}

func (n Num) Any(x Num) bool {
	return n&x != 0
}

func (n Num) Ok() bool {
	return n.Is(Int) && !n.Is(Overflow)
}
