package pure

import "sync/atomic"

// Lazy is a cached value stored inside the instance that owns it.
// Add a Lazy[T] field to a struct and read it from a getter; the zero value is ready to use.
//
//	type Report struct {
//		rows  []Row
//		total pure.Lazy[int]
//	}
//
//	func (r *Report) Total() int {
//		return r.total.Get(func() int { return sum(r.rows) })
//	}
//
// A Lazy must not be copied after first use.
type Lazy[V any] struct {
	val atomic.Pointer[V]
}

// Get returns the cached value, running compute on the first read after creation
// or Invalidate.
func (l *Lazy[V]) Get(compute func() V) V {
	if p := l.val.Load(); p != nil {
		return *p
	}
	v := compute()
	l.val.Store(&v)
	return v
}

// GetE is Get for computations that can fail. Failures are not cached.
func (l *Lazy[V]) GetE(compute func() (V, error)) (V, error) {
	if p := l.val.Load(); p != nil {
		return *p, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	l.val.Store(&v)
	return v, nil
}

func (l *Lazy[V]) Peek() (V, bool) {
	if p := l.val.Load(); p != nil {
		return *p, true
	}
	var zero V
	return zero, false
}

func (l *Lazy[V]) Invalidate() {
	l.val.Store(nil)
}
