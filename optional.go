package urlkit

// Optional holds a value or nothing. The zero value is unset,
// which is not the same as Some of a zero value.
type Optional[T any] struct {
	v   T
	set bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{v: v, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSet() bool { return o.set }

// Value returns the held value or the zero value of T if unset.
func (o Optional[T]) Value() T { return o.v }

func (o Optional[T]) Get() (T, bool) { return o.v, o.set }

func (o Optional[T]) Or(def T) T {
	if o.set {
		return o.v
	}

	return def
}
