package urlkit

import (
	"errors"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Query answers key lookups on a raw query string like a=1&b=2&c.
// Lookups scan the text each time; the first matching key wins.
// Keys and values are returned as written, without unescaping.
type Query struct {
	data string
}

type Numeric interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func NewQuery(data string) Query {
	return Query{data: data}
}

func (q Query) String() string { return q.data }

func (q Query) Exists(key string, caseSensitive bool) bool {
	_, found := q.lookup(key, caseSensitive)
	return found
}

// HasKey is Exists.
func (q Query) HasKey(key string, caseSensitive bool) bool {
	return q.Exists(key, caseSensitive)
}

// Get is the case sensitive Value.
func (q Query) Get(key string) Optional[string] {
	v, _ := q.lookup(key, true)
	return v
}

// Value returns the value of the first pair with the key.
// A pair without = has no value.
func (q Query) Value(key string, caseSensitive bool) Optional[string] {
	v, _ := q.lookup(key, caseSensitive)
	return v
}

// Boolean interprets the value as 0, 1, F, T, FALSE or TRUE in any case.
// Anything else, as well as a missing key, gives def.
func (q Query) Boolean(key string, def, caseSensitive bool) bool {
	v, _ := q.lookup(key, caseSensitive)

	s := v.Value()

	switch len(s) {
	case 1:
		switch lower(s[0]) {
		case '0', 'f':
			return false
		case '1', 't':
			return true
		}
	case 4:
		if Same(s, "true", false) {
			return true
		}
	case 5:
		if Same(s, "false", false) {
			return false
		}
	}

	return def
}

// Each calls f for every pair in order until f returns false.
func (q Query) Each(f func(key string, value Optional[string]) bool) {
	for rest, more := q.data, q.data != ""; more; {
		var pair string
		pair, rest, more = strings.Cut(rest, "&")

		k, v, ok := strings.Cut(pair, "=")

		if !f(k, csel(ok, Some(v), None[string]())) {
			return
		}
	}
}

func (q Query) lookup(key string, caseSensitive bool) (v Optional[string], found bool) {
	q.Each(func(k string, val Optional[string]) bool {
		if !Same(k, key, caseSensitive) {
			return true
		}

		v, found = val, true

		return false
	})

	return v, found
}

// Number converts the value of key to T.
// A missing key, a missing value or a value that does not convert gives def.
func Number[T Numeric](q Query, key string, def T, caseSensitive bool) T {
	v, ok := q.Value(key, caseSensitive).Get()
	if !ok {
		return def
	}

	x, err := convertNumber[T](v)
	if err != nil {
		return def
	}

	return x
}

// Enumerate maps the value of key to an enum through names.
// Names are matched ignoring case. Unknown names give def.
func Enumerate[T any](q Query, key string, def T, names map[string]T, caseSensitive bool) T {
	v, ok := q.Value(key, caseSensitive).Get()
	if !ok {
		return def
	}

	if x, ok := names[v]; ok {
		return x
	}

	for name, x := range names {
		if Same(name, v, false) {
			return x
		}
	}

	return def
}

var errRange = errors.New("value out of range")

// convertNumber parses s as T. Values outside the range of T are errors.
// Leading zeros are decimal, so 010 is ten.
func convertNumber[T Numeric](s string) (T, error) {
	var zero T

	s = trimZeros(s)

	switch any(zero).(type) {
	case float32, float64:
		f, err := cast.ToFloat64E(s)
		if err != nil {
			return zero, err
		}

		if _, ok := any(zero).(float32); ok && math.Abs(f) > math.MaxFloat32 && !math.IsInf(f, 0) {
			return zero, errRange
		}

		return T(f), nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := cast.ToUint64E(s)
		if err != nil {
			return zero, err
		}

		if u > uintMax(zero) {
			return zero, errRange
		}

		return T(u), nil
	}

	x, err := cast.ToInt64E(s)
	if err != nil {
		return zero, err
	}

	lo, hi := intRange(zero)
	if x < lo || x > hi {
		return zero, errRange
	}

	return T(x), nil
}

func uintMax(x any) uint64 {
	switch x.(type) {
	case uint8:
		return math.MaxUint8
	case uint16:
		return math.MaxUint16
	case uint32:
		return math.MaxUint32
	case uint:
		return math.MaxUint
	}

	return math.MaxUint64
}

func intRange(x any) (lo, hi int64) {
	switch x.(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case int16:
		return math.MinInt16, math.MaxInt16
	case int32:
		return math.MinInt32, math.MaxInt32
	case int:
		return math.MinInt, math.MaxInt
	}

	return math.MinInt64, math.MaxInt64
}

// trimZeros drops leading zeros of a decimal number, keeping the sign.
// Prefixed forms like 0x10 are left as they are.
func trimZeros(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	j := i
	for j+1 < len(s) && s[j] == '0' && Decimals.Is(s[j+1]) {
		j++
	}

	if j == i {
		return s
	}

	return s[:i] + s[j:]
}
