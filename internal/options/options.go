// Package options implements the functional option pattern shared by the
// request facade and the snapshot encoder.
package options

// Option configures a target of type T. T is normally a pointer to a config
// struct, so applying an option mutates the caller's config in place.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	if f == nil || f.fn == nil {
		return nil
	}

	return f.fn(target)
}

// New wraps a fallible setter.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError wraps a setter that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts in order and stops at the first error.
// Nil options, including a nil *Func, are skipped so callers can build
// option lists conditionally.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
