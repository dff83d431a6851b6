package asset

// Future is a one-shot result delivered on the host's main thread.
// It is not safe for concurrent use; the Loader resolves futures from Poll.
type Future[T any] struct {
	settled bool
	value   T
	err     error

	onValue  []func(T)
	onError  []func(error)
	onSettle []func(error)
}

// NewFuture creates an unresolved future
func NewFuture[T any]() *Future[T] {
	return &Future[T]{}
}

// Resolve settles the future with v. Settling twice is ignored.
func (f *Future[T]) Resolve(v T) {
	if f.settled {
		return
	}
	f.settled = true
	f.value = v
	for _, fn := range f.onValue {
		fn(v)
	}
	f.fire()
}

// Reject settles the future with err. Settling twice is ignored.
func (f *Future[T]) Reject(err error) {
	if f.settled {
		return
	}
	f.settled = true
	f.err = err
	for _, fn := range f.onError {
		fn(err)
	}
	f.fire()
}

func (f *Future[T]) fire() {
	for _, fn := range f.onSettle {
		fn(f.err)
	}
	f.onValue, f.onError, f.onSettle = nil, nil, nil
}

// Then registers fn to run with the value. If the future already resolved,
// fn runs immediately.
func (f *Future[T]) Then(fn func(T)) *Future[T] {
	switch {
	case !f.settled:
		f.onValue = append(f.onValue, fn)
	case f.err == nil:
		fn(f.value)
	}
	return f
}

// Catch registers fn to run if the future is rejected
func (f *Future[T]) Catch(fn func(error)) *Future[T] {
	switch {
	case !f.settled:
		f.onError = append(f.onError, fn)
	case f.err != nil:
		fn(f.err)
	}
	return f
}

// Done reports whether the future has settled, and with which error
func (f *Future[T]) Done() (bool, error) {
	return f.settled, f.err
}

func (f *Future[T]) settle(fn func(error)) {
	if f.settled {
		fn(f.err)
		return
	}
	f.onSettle = append(f.onSettle, fn)
}

// Waitable is anything Join can wait on
type Waitable interface {
	settle(fn func(error))
}

// Map derives a future whose value is fn applied to f's value. An error from
// fn rejects the derived future.
func Map[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	out := NewFuture[U]()
	f.Then(func(v T) {
		u, err := fn(v)
		if err != nil {
			out.Reject(err)
			return
		}
		out.Resolve(u)
	})
	f.Catch(out.Reject)
	return out
}

// Join returns a future that resolves exactly once, after every input has
// resolved. The first rejection rejects it instead.
func Join(futures ...Waitable) *Future[struct{}] {
	out := NewFuture[struct{}]()
	remaining := len(futures)
	if remaining == 0 {
		out.Resolve(struct{}{})
		return out
	}
	for _, f := range futures {
		f.settle(func(err error) {
			if err != nil {
				out.Reject(err)
				return
			}
			remaining--
			if remaining == 0 {
				out.Resolve(struct{}{})
			}
		})
	}
	return out
}
