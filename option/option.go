// Package option defines a generic optional value. An Option either holds
// a value (Some) or holds nothing (None). The zero value is None.
package option

import (
	"encoding/json"
	"fmt"
)

type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the held value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustUnwrap returns the held value and panics on None.
func (o Option[T]) MustUnwrap() T {
	if !o.ok {
		panic("option: unwrap of None")
	}
	return o.value
}

func (o Option[T]) UnwrapOr(or T) T {
	if o.ok {
		return o.value
	}
	return or
}

// Match calls onSome with the held value, or onNone when there is none.
// Either callback may be nil.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.ok {
		if onSome != nil {
			onSome(o.value)
		}
		return
	}
	if onNone != nil {
		onNone()
	}
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Map applies f to the held value, propagating None.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// AndThen chains a computation that may itself produce None.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}
