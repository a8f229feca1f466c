// Package options is a tiny generic functional-options building block,
// shared by every configurable type in this module (currently
// tagvalue.Config). T is the type being configured, not the option
// itself.
package options

// Option mutates a *T (or calls methods on it) and reports whether the
// mutation succeeded. Callers build one via New or NoError; apply stays
// unexported so Option can only be satisfied from within this package.
type Option[T any] interface {
	apply(T) error
}

// Func is the only Option[T] implementation: a closure wrapped to satisfy
// the interface.
type Func[T any] struct {
	applyFunc func(T) error
}

// New turns a function that can fail into an Option[T].
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError turns a function that cannot fail into an Option[T], so callers
// don't have to thread a nil error return through every simple setter.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// Apply runs opts against target in order and returns the first error, if
// any; later options are not run once one fails.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
