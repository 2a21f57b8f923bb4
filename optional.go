package seedling

import "reflect"

// Optional holds a collaborator that may be absent. Controllers keep their
// optional visuals in Optionals and go through Do instead of repeating nil
// checks at every call site.
type Optional[T any] struct {
	v  T
	ok bool
}

// Some wraps v as a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{v: v, ok: true}
}

// Maybe wraps v, treating nil (including a nil pointer stored in an
// interface) as absent.
func Maybe[T any](v T) Optional[T] {
	if isNil(v) {
		return Optional[T]{}
	}
	return Some(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the wrapped value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.v, o.ok
}

// Present reports whether a value is set.
func (o Optional[T]) Present() bool {
	return o.ok
}

// Do calls fn with the wrapped value when present. It reports whether fn ran.
func (o Optional[T]) Do(fn func(T)) bool {
	if !o.ok {
		return false
	}
	fn(o.v)
	return true
}
