package lazy

import "sync"

// Value is computed on first access and cached thereafter, including any error
// produced by the initializer.
type Value[T any] struct {
	once  sync.Once
	init  func() (T, error)
	value T
	err   error
}

func Of[T any](init func() (T, error)) *Value[T] {
	return &Value[T]{init: init}
}

func (v *Value[T]) Get() (T, error) {
	v.once.Do(func() {
		v.value, v.err = v.init()
		v.init = nil
	})
	return v.value, v.err
}
